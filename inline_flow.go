package flowlayout

// InlineFlow is a width/height-only collaborator: a leaf flow carrying
// inline content whose actual text shaping and line breaking are out of
// scope here. It still has to report intrinsic widths and a resolved
// height so a BlockFlow ancestor's bubble/assign passes see a consistent
// box, but it never recurses into its own children the way BlockFlow
// does — an inline run's children are text/run fragments InlineFlow
// itself owns and measures externally to this package.
type InlineFlow struct {
	base BaseFlow
	box  *Box
}

func NewInlineFlow(box *Box) *InlineFlow {
	return &InlineFlow{base: BaseFlow{Class: InlineFlowClass}, box: box}
}

func (f *InlineFlow) ID() FlowID       { return f.base.ID }
func (f *InlineFlow) Class() FlowClass { return InlineFlowClass }
func (f *InlineFlow) Base() *BaseFlow  { return &f.base }
func (f *InlineFlow) Box() *Box        { return f.box }

// BubbleWidths reports this inline run's own box intrinsic widths. With
// no text metrics available to this module, an inline run with no
// explicit width contributes zero — a caller that needs real text-driven
// intrinsic widths measures them externally and sets an explicit Width on
// the box before layout runs.
func (f *InlineFlow) BubbleWidths(tree *FlowArena) {
	var min, pref Au
	if f.box != nil {
		min, pref = f.box.MinimumAndPreferredWidths()
		min = min.Add(f.box.Margin.Horizontal())
		pref = pref.Add(f.box.Margin.Horizontal())
	}
	f.base.MinWidth = min
	f.base.PrefWidth = AuMax(min, pref)
	f.base.State = StateWidthsBubbled
}

// AssignWidths accepts the width its containing block gave it; inline
// runs never solve compute_horiz (CSS2.1's horizontal constraint table
// applies to block-level boxes, not inline ones).
func (f *InlineFlow) AssignWidths(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsBubbled, "AssignWidths")
	if f.box != nil {
		containingWidth := f.base.Position.Size.Width
		f.box.ComputeBordersIfNecessary(containingWidth)
		f.box.ComputePadding(containingWidth)
		f.box.Position.Size.Width = containingWidth
		f.box.Position.Origin.X = f.base.Position.Origin.X
	}
	f.base.State = StateWidthsAssigned
}

// AssignHeightInorder/AssignHeight resolve this run's own height from its
// box style, or zero when nothing was specified — the caller (an
// InlineFlow owner outside this module) is responsible for setting an
// explicit Height once real line boxes have been measured.
func (f *InlineFlow) AssignHeightInorder(tree *FlowArena, ctx *LayoutContext) {
	f.AssignHeight(tree, ctx)
}

func (f *InlineFlow) AssignHeight(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsAssigned, "AssignHeight")

	height := Au(0)
	if f.box != nil {
		if !f.box.Style.Box.Height.IsAuto() {
			height = f.box.Style.Box.Height.SpecifiedOrZero()
		}
		height = height.Add(f.box.NoncontentHeight()).Sub(f.box.Margin.Vertical())
		f.box.Position.Size.Height = height
		f.box.Position.Origin.Y = 0
	}
	f.base.Position.Size.Height = height
	f.base.FloatsOut = f.base.FloatsIn
	f.base.State = StateHeightsAssigned
}

// CollapseMargins: an inline-level box takes part only by reporting its
// own top margin, resolved from its style: marginTop and collapsing both
// become the larger of the incoming collapsing value and that margin. The
// caller's Y cursor is not moved.
func (f *InlineFlow) CollapseMargins(
	topMarginCollapsible bool,
	first *bool,
	marginTop *Au,
	topOffset *Au,
	collapsing *Au,
	collapsible *Au,
) {
	own := Au(0)
	if f.box != nil {
		own = FromStyle(f.box.Style.Margin.Top, f.base.Position.Size.Width).SpecifiedOrZero()
	}
	*marginTop = AuMax(*collapsing, own)
	*collapsing = *marginTop
	*first = false
}

func (f *InlineFlow) BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool {
	assertState(f.base.State, StateHeightsAssigned, "BuildDisplayList")

	abs := f.base.Position
	if f.box != nil {
		abs = f.box.Position
	}
	clipped := CullRect(abs, dirty)
	if !clipped && f.box != nil {
		list.Push(DisplayItem{Kind: DisplayItemBox, Bounds: abs, FlowID: f.base.ID})
	}

	f.base.State = StateDisplayListBuilt
	return clipped
}

func (f *InlineFlow) DebugStr(tree *FlowArena) string {
	return "InlineFlow"
}
