package flowlayout

// TableRowGroupFlow implements the table-row-group formatting context
// (CSS2.1 `<thead>`/`<tbody>`/`<tfoot>`): a thin vertical stack of
// TableRowFlows with no margins of its own, identical in height shape to
// BlockFlow.
type TableRowGroupFlow struct {
	base BaseFlow
	box  *Box
}

func NewTableRowGroupFlow(box *Box) *TableRowGroupFlow {
	return &TableRowGroupFlow{base: BaseFlow{Class: TableRowGroupFlowClass}, box: box}
}

func (f *TableRowGroupFlow) ID() FlowID       { return f.base.ID }
func (f *TableRowGroupFlow) Class() FlowClass { return TableRowGroupFlowClass }
func (f *TableRowGroupFlow) Base() *BaseFlow  { return &f.base }
func (f *TableRowGroupFlow) Box() *Box        { return f.box }

func (f *TableRowGroupFlow) geom() *blockGeom { return &blockGeom{Base: &f.base, Box: f.box} }

// BubbleWidths aggregates its TableRowFlow children the way BlockFlow
// aggregates block children: every row is given the same column widths,
// so the group's own min/pref width is the widest row's, not their sum.
func (f *TableRowGroupFlow) BubbleWidths(tree *FlowArena) {
	var childrenMin, childrenPref Au
	numFloats := 0

	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		assertStructural(child.Class() == TableRowFlowClass, "TableRowGroupFlow child %d is not a TableRowFlow", cid)
		child.BubbleWidths(tree)
		cb := child.Base()
		childrenMin = AuMax(childrenMin, cb.MinWidth)
		childrenPref = AuMax(childrenPref, cb.PrefWidth)
		numFloats += cb.NumFloats
	}

	f.base.MinWidth = childrenMin
	f.base.PrefWidth = AuMax(childrenMin, childrenPref)
	f.base.NumFloats = numFloats
	f.base.State = StateWidthsBubbled
}

// AssignWidths propagates the group's own assigned width and x-offset to
// every row unchanged; column widths were already pushed onto each row by
// the owning TableFlow before this call.
func (f *TableRowGroupFlow) AssignWidths(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsBubbled, "AssignWidths")

	width := f.base.Position.Size.Width
	x := f.base.Position.Origin.X
	if f.box != nil {
		f.box.Position.Size.Width = width
		f.box.Position.Origin.X = x
	}

	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		cb := child.Base()
		cb.Position.Size.Width = width
		cb.Position.Origin.X = x
		cb.FloatsIn = f.base.FloatsIn
		child.AssignWidths(tree, ctx)
	}

	f.base.State = StateWidthsAssigned
}

func (f *TableRowGroupFlow) AssignHeightInorder(tree *FlowArena, ctx *LayoutContext) {
	f.geom().assignHeightBlockBase(tree, ctx, true)
}

func (f *TableRowGroupFlow) AssignHeight(tree *FlowArena, ctx *LayoutContext) {
	f.geom().assignHeightBlockBase(tree, ctx, false)
}

// CollapseMargins: row groups carry no margins (CSS2.1 §17.6.1 extends to
// the row-group level); like TableRowFlow's, this resets the caller's
// marginTop and collapsing to zero and clears first.
func (f *TableRowGroupFlow) CollapseMargins(
	topMarginCollapsible bool,
	first *bool,
	marginTop *Au,
	topOffset *Au,
	collapsing *Au,
	collapsible *Au,
) {
	*marginTop = 0
	*collapsing = 0
	*first = false
}

func (f *TableRowGroupFlow) BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool {
	assertState(f.base.State, StateHeightsAssigned, "BuildDisplayList")

	abs, clipped := f.geom().buildDisplayList(tree, dirty, list)

	allClipped := clipped
	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		cb := child.Base()
		cb.Position = cb.Position.Translate(abs.Origin.Sub(f.base.Position.Origin))
		childClipped := child.BuildDisplayList(tree, builder, dirty, list)
		allClipped = allClipped && childClipped
	}

	f.base.State = StateDisplayListBuilt
	return allClipped
}

func (f *TableRowGroupFlow) DebugStr(tree *FlowArena) string {
	return "TableRowGroupFlow"
}
