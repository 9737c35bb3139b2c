package flowlayout

// TableRowFlow implements the table-row formatting context.
// Its children are exclusively TableCellFlows; column widths are supplied
// by the table-wrapper ancestor via ColWidths, never computed locally.
type TableRowFlow struct {
	base BaseFlow
	box  *Box

	ColWidths     []Au
	ColMinWidths  []Au
	ColPrefWidths []Au
}

func NewTableRowFlow(box *Box) *TableRowFlow {
	return &TableRowFlow{base: BaseFlow{Class: TableRowFlowClass}, box: box}
}

func (f *TableRowFlow) ID() FlowID       { return f.base.ID }
func (f *TableRowFlow) Class() FlowClass { return TableRowFlowClass }
func (f *TableRowFlow) Base() *BaseFlow  { return &f.base }
func (f *TableRowFlow) Box() *Box        { return f.box }

// BubbleWidths pushes each TableCellFlow child's specified-or-zero width,
// min width, and pref width into parallel column vectors, then computes
// the row's own min (sum of column mins) and pref (max of min-sum and
// pref-sum) widths.
func (f *TableRowFlow) BubbleWidths(tree *FlowArena) {
	children := tree.Children(f.base.ID)
	f.ColWidths = make([]Au, 0, len(children))
	f.ColMinWidths = make([]Au, 0, len(children))
	f.ColPrefWidths = make([]Au, 0, len(children))

	var minSum, prefSum Au

	for _, cid := range children {
		child := tree.Get(cid)
		cell, ok := child.(*TableCellFlow)
		assertStructural(ok, "TableRowFlow child %d is not a TableCellFlow", cid)
		child.BubbleWidths(tree)

		var specified Au
		if cell.box != nil {
			specified = cell.box.Style.Box.Width.SpecifiedOrZero()
		}
		cb := cell.Base()

		f.ColWidths = append(f.ColWidths, specified)
		f.ColMinWidths = append(f.ColMinWidths, cb.MinWidth)
		f.ColPrefWidths = append(f.ColPrefWidths, cb.PrefWidth)

		minSum = minSum.Add(cb.MinWidth)
		prefSum = prefSum.Add(cb.PrefWidth)
	}

	f.base.MinWidth = minSum
	f.base.PrefWidth = AuMax(minSum, prefSum)
	f.base.State = StateWidthsBubbled
}

// AssignWidths lays out cells left to right using the column widths set
// by the table-wrapper ancestor (ColWidths, overwritten in place by the
// ancestor before this call). The row's own box width is the full
// remaining width it was given.
func (f *TableRowFlow) AssignWidths(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsBubbled, "AssignWidths")

	rowWidth := f.base.Position.Size.Width
	if f.box != nil {
		f.box.Position.Size.Width = rowWidth
		f.box.Position.Origin.X = f.base.Position.Origin.X
	}

	x := f.base.Position.Origin.X
	children := tree.Children(f.base.ID)
	for i, cid := range children {
		child := tree.Get(cid)
		cb := child.Base()
		w := Au(0)
		if i < len(f.ColWidths) {
			w = f.ColWidths[i]
		}
		cb.Position.Origin.X = x
		cb.Position.Size.Width = w
		cb.FloatsIn = f.base.FloatsIn
		child.AssignWidths(tree, ctx)
		x = x.Add(w)
	}

	f.base.State = StateWidthsAssigned
}

// AssignHeightInorder and AssignHeight both delegate to the shared
// table-row height algorithm; a table row's own subtree rarely contains
// floats, but the in-order entry point is implemented in case a cell
// contains one.
func (f *TableRowFlow) AssignHeightInorder(tree *FlowArena, ctx *LayoutContext) {
	f.assignHeightTableBase(tree, ctx, true)
}

func (f *TableRowFlow) AssignHeight(tree *FlowArena, ctx *LayoutContext) {
	f.assignHeightTableBase(tree, ctx, false)
}

// assignHeightTableBase places every cell at the same y and sets the row
// height to the tallest cell, then bottom-extends every shorter cell to
// match (baseline alignment within a row is deferred entirely).
//
// The row's OWN base.position.size.height is written from max_y — the
// running maximum seen while walking children, computed before the final
// `height` value is resolved — while each child cell's box gets
// position.size.height set to the final, resolved `height`. In this
// function they end up equal since nothing touches max_y between the
// loop and the write-back, but they are two separate writes, not one,
// and a future change to either must keep that distinction in mind.
func (f *TableRowFlow) assignHeightTableBase(tree *FlowArena, ctx *LayoutContext, inorder bool) {
	assertState(f.base.State, StateWidthsAssigned, "AssignHeight")

	y := f.base.Position.Origin.Y
	var maxY Au

	children := tree.Children(f.base.ID)
	for _, cid := range children {
		child := tree.Get(cid)
		if inorder {
			child.AssignHeightInorder(tree, ctx)
		} else {
			child.AssignHeight(tree, ctx)
		}
		cb := child.Base()
		cb.Position.Origin.Y = y
		if cb.Position.Size.Height > maxY {
			maxY = cb.Position.Size.Height
		}
	}

	height := maxY

	f.base.Position.Size.Height = maxY

	for _, cid := range children {
		cb := tree.Get(cid).Base()
		cb.Position.Size.Height = height
		if cell, ok := tree.Get(cid).(*TableCellFlow); ok && cell.box != nil {
			cell.box.Position.Size.Height = height
		}
	}

	if f.box != nil {
		f.box.Position.Origin.Y = y
		f.box.Position.Size.Height = height
	}

	f.base.FloatsOut = f.base.FloatsIn
	f.base.State = StateHeightsAssigned
}

// CollapseMargins: table rows do not participate in CSS2.1 vertical
// margin collapsing (table cells have no margins per CSS2.1 §17.6.1), so
// this resets the caller's marginTop and collapsing to zero and clears
// first.
func (f *TableRowFlow) CollapseMargins(
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

func (f *TableRowFlow) BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool {
	assertState(f.base.State, StateHeightsAssigned, "BuildDisplayList")

	abs := f.base.Position
	if f.box != nil {
		abs = f.box.Position
	}
	clipped := CullRect(abs, dirty)
	if !clipped && f.box != nil {
		list.Push(DisplayItem{Kind: DisplayItemBox, Bounds: abs, FlowID: f.base.ID})
	}

	allClipped := clipped
	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		childClipped := child.BuildDisplayList(tree, builder, dirty, list)
		allClipped = allClipped && childClipped
	}

	f.base.State = StateDisplayListBuilt
	return allClipped
}

func (f *TableRowFlow) DebugStr(tree *FlowArena) string {
	return "TableRowFlow"
}
