// Package flowlayout implements the block and table formatting-context
// core of a layout engine: given a tree of flows carrying computed style,
// it computes intrinsic widths, final used geometry, and a culled display
// list, following CSS2.1's block and table layout algorithms.
//
// A caller builds a Flow tree (see FlowArena), attaches ComputedValues to
// each flow that owns a Box, and calls RunLayout. Layout runs as four
// ordered traversals — BubbleWidths, AssignWidths, AssignHeights,
// BuildDisplayList — exactly once each, with no suspension points.
package flowlayout

// FlowClass identifies which flow variant a Flow value is. Kept explicit
// on every flow (rather than relying purely on a Go type switch) because
// several algorithms — table column bubbling in particular — branch on a
// child's class before touching it structurally.
type FlowClass int

const (
	BlockFlowClass FlowClass = iota
	InlineFlowClass
	TableWrapperFlowClass
	TableFlowClass
	TableRowGroupFlowClass
	TableRowFlowClass
	TableCellFlowClass
	TableColGroupFlowClass
)

func (c FlowClass) String() string {
	switch c {
	case BlockFlowClass:
		return "Block"
	case InlineFlowClass:
		return "Inline"
	case TableWrapperFlowClass:
		return "TableWrapper"
	case TableFlowClass:
		return "Table"
	case TableRowGroupFlowClass:
		return "TableRowGroup"
	case TableRowFlowClass:
		return "TableRow"
	case TableCellFlowClass:
		return "TableCell"
	case TableColGroupFlowClass:
		return "TableColGroup"
	default:
		return "Unknown"
	}
}

// FlowState is the lifecycle state machine a flow
// moves forward through these states once per layout pass and never
// backward.
type FlowState int

const (
	StateCreated FlowState = iota
	StateWidthsBubbled
	StateWidthsAssigned
	StateHeightsAssigned
	StateDisplayListBuilt
)

// Flow bit flags on BaseFlow.
const (
	FlagHasInorderChildren uint32 = 1 << iota
	FlagIsInorder
	FlagMarksRoot
)

// BaseFlow holds the fields every flow variant embeds: tree linkage (via
// FlowID into a FlowArena), geometry, bubbled widths, the float context
// threaded in and out, and the flow's own class/state/flags.
//
// Parent/child/sibling linkage is by arena index (FlowID), not by owning
// pointer or back pointer — BaseFlow never holds a *Flow to its parent or
// children.
type BaseFlow struct {
	ID       FlowID
	Class    FlowClass
	State    FlowState
	Flags    uint32

	MinWidth  Au
	PrefWidth Au

	// Position is this flow's own content-relative position/size, mirrors
	// Box.Position's three-phase write pattern for flows without an
	// owned Box (e.g. TableRowFlow has a Box, but anonymous
	// flows may not).
	Position Rect

	FloatsIn  FloatContext
	FloatsOut FloatContext

	NumFloats int
}

func (f *BaseFlow) HasFlag(bit uint32) bool  { return f.Flags&bit != 0 }
func (f *BaseFlow) SetFlag(bit uint32)       { f.Flags |= bit }
func (f *BaseFlow) ClearFlag(bit uint32)     { f.Flags &^= bit }

// Flow is the contract every flow variant implements
type Flow interface {
	ID() FlowID
	Class() FlowClass
	Base() *BaseFlow
	Box() *Box // nil if this flow does not own one

	BubbleWidths(tree *FlowArena)
	AssignWidths(tree *FlowArena, ctx *LayoutContext)

	// AssignHeightInorder runs the in-order height sub-traversal; it is
	// only reached when floats are present in this subtree. AssignHeight
	// runs the ordinary post-order height pass.
	AssignHeightInorder(tree *FlowArena, ctx *LayoutContext)
	AssignHeight(tree *FlowArena, ctx *LayoutContext)

	// CollapseMargins threads the left-to-right vertical margin-collapse
	// walk described in collapsing/collapsible follow the
	// original's by-reference threading via pointers to local state the
	// caller owns.
	CollapseMargins(
		topMarginCollapsible bool,
		first *bool,
		marginTop *Au,
		topOffset *Au,
		collapsing *Au,
		collapsible *Au,
	)

	BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool

	DebugStr(tree *FlowArena) string
}
