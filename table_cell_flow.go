package flowlayout

// TableCellFlow implements the table-cell formatting context: structurally
// a block box that never has margins (CSS2.1 §17.6.1: "the effect of
// margin properties on table cells... is not defined"), whose own width
// is dictated by its TableRowFlow parent (ColWidths) rather than solved
// by the usual horizontal constraint resolution.
type TableCellFlow struct {
	base BaseFlow
	box  *Box
}

func NewTableCellFlow(box *Box) *TableCellFlow {
	return &TableCellFlow{base: BaseFlow{Class: TableCellFlowClass}, box: box}
}

func (f *TableCellFlow) ID() FlowID       { return f.base.ID }
func (f *TableCellFlow) Class() FlowClass { return TableCellFlowClass }
func (f *TableCellFlow) Base() *BaseFlow  { return &f.base }
func (f *TableCellFlow) Box() *Box        { return f.box }

func (f *TableCellFlow) geom() *blockGeom { return &blockGeom{Base: &f.base, Box: f.box} }

// BubbleWidths aggregates children the same way BlockFlow does (widest
// child constrains the cell), folding in the cell's own box intrinsic
// width, but never a margin contribution — cells have none.
func (f *TableCellFlow) BubbleWidths(tree *FlowArena) {
	var childrenMin, childrenPref Au
	numFloats := 0

	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		assertState(child.Base().State, StateCreated, "BubbleWidths")
		child.BubbleWidths(tree)
		cb := child.Base()
		childrenMin = AuMax(childrenMin, cb.MinWidth)
		childrenPref = AuMax(childrenPref, cb.PrefWidth)
		numFloats += cb.NumFloats
	}

	min, pref := childrenMin, childrenPref
	if f.box != nil {
		boxMin, boxPref := f.box.MinimumAndPreferredWidths()
		// A specified cell width is also the cell's minimum width
		// (CSS2.1 §17.5.2.2).
		if !f.box.Style.Box.Width.IsAuto() {
			boxMin = boxPref
		}
		min = AuMax(min, boxMin)
		pref = AuMax(pref, AuMax(boxPref, boxMin))
	}

	f.base.MinWidth = min
	f.base.PrefWidth = AuMax(min, pref)
	f.base.NumFloats = numFloats
	f.base.State = StateWidthsBubbled
}

// AssignWidths takes the cell's outer width as already fixed by its row
// (no compute_horiz solving — cell width is never auto-resolved once a
// column width has been distributed), resolves border/padding against it,
// and passes the remaining content width straight down to children.
func (f *TableCellFlow) AssignWidths(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsBubbled, "AssignWidths")

	cellWidth := f.base.Position.Size.Width
	x := f.base.Position.Origin.X
	contentWidth := cellWidth
	childX := x

	if f.box != nil {
		f.box.ComputeBordersIfNecessary(cellWidth)
		f.box.ComputePadding(cellWidth)
		noncontent := f.box.Border.Horizontal().Add(f.box.Padding.Horizontal())
		contentWidth = cellWidth.Sub(noncontent)
		if contentWidth < 0 {
			contentWidth = 0
		}
		f.box.Position.Origin.X = x
		f.box.Position.Size.Width = cellWidth
		childX = x.Add(f.box.Border.Left).Add(f.box.Padding.Left)
	}

	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		cb := child.Base()
		cb.Position.Size.Width = contentWidth
		cb.Position.Origin.X = childX
		cb.FloatsIn = f.base.FloatsIn
		child.AssignWidths(tree, ctx)
	}

	f.base.State = StateWidthsAssigned
}

// AssignHeightInorder/AssignHeight compute this cell's own natural
// content height, stacking children exactly as a block would. The
// owning TableRowFlow overwrites this with the row's resolved height
// afterward — this pass must still run first so the row has a real
// per-cell height to take the max of.
func (f *TableCellFlow) AssignHeightInorder(tree *FlowArena, ctx *LayoutContext) {
	f.geom().assignHeightBlockBase(tree, ctx, true)
}

func (f *TableCellFlow) AssignHeight(tree *FlowArena, ctx *LayoutContext) {
	f.geom().assignHeightBlockBase(tree, ctx, false)
}

// CollapseMargins: table cells have no margins (CSS2.1 §17.6.1), so a
// cell contributes none: like TableRowFlow's, it resets the caller's
// marginTop and collapsing to zero and clears first.
func (f *TableCellFlow) CollapseMargins(
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

func (f *TableCellFlow) BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool {
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

func (f *TableCellFlow) DebugStr(tree *FlowArena) string {
	return "TableCellFlow"
}
