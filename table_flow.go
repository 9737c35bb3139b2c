package flowlayout

// TableFlow implements the table formatting context proper: it owns the
// per-column min/pref width vectors (CellMinWidths/CellPrefWidths) that
// TableWrapperFlow's auto-layout bubbling consumes, and for
// table-layout:fixed it donates ColWidths straight from its first row's
// specified cell widths rather than measuring content (CSS2.1 §17.5.2.1's
// fixed algorithm: only the first row's widths matter). Direct children
// are TableRowGroupFlows and/or TableRowFlows.
type TableFlow struct {
	base BaseFlow
	box  *Box

	IsFixedLayout bool
	ColWidths     []Au

	CellMinWidths  []Au
	CellPrefWidths []Au
}

func NewTableFlow(box *Box) *TableFlow {
	fixed := box != nil && box.Style.Table.Layout == TableLayoutFixed
	return &TableFlow{base: BaseFlow{Class: TableFlowClass}, box: box, IsFixedLayout: fixed}
}

func (f *TableFlow) ID() FlowID       { return f.base.ID }
func (f *TableFlow) Class() FlowClass { return TableFlowClass }
func (f *TableFlow) Base() *BaseFlow  { return &f.base }
func (f *TableFlow) Box() *Box        { return f.box }

func (f *TableFlow) geom() *blockGeom { return &blockGeom{Base: &f.base, Box: f.box} }

// BubbleWidths walks row-group/row children, merging each row's per-column
// min/pref vectors into CellMinWidths/CellPrefWidths by column-wise max —
// a column must be wide enough for its widest cell in any row. For
// table-layout:fixed, the first row encountered also seeds ColWidths from
// its cells' specified widths, since the fixed algorithm never looks past
// the first row.
func (f *TableFlow) BubbleWidths(tree *FlowArena) {
	var childrenMin, childrenPref Au
	numFloats := 0
	seenFirstRow := false

	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		child.BubbleWidths(tree)
		cb := child.Base()
		childrenMin = AuMax(childrenMin, cb.MinWidth)
		childrenPref = AuMax(childrenPref, cb.PrefWidth)
		numFloats += cb.NumFloats

		f.accumulateColumnWidths(tree, child)

		if f.IsFixedLayout && !seenFirstRow {
			if widths := firstRowSpecifiedWidths(tree, child); widths != nil {
				f.ColWidths = append([]Au{}, widths...)
				seenFirstRow = true
			}
		}
	}

	min, pref := childrenMin, childrenPref
	if f.box != nil {
		boxMin, boxPref := f.box.MinimumAndPreferredWidths()
		min = AuMax(min, boxMin)
		pref = AuMax(pref, AuMax(boxPref, boxMin))
	}

	f.base.MinWidth = min
	f.base.PrefWidth = AuMax(min, pref)
	f.base.NumFloats = numFloats
	f.base.State = StateWidthsBubbled
}

func (f *TableFlow) accumulateColumnWidths(tree *FlowArena, child Flow) {
	switch c := child.(type) {
	case *TableRowFlow:
		f.mergeColumns(c.ColMinWidths, c.ColPrefWidths)
	case *TableRowGroupFlow:
		for _, rid := range tree.Children(c.Base().ID) {
			if row, ok := tree.Get(rid).(*TableRowFlow); ok {
				f.mergeColumns(row.ColMinWidths, row.ColPrefWidths)
			}
		}
	}
}

func (f *TableFlow) mergeColumns(min, pref []Au) {
	for len(f.CellMinWidths) < len(min) {
		f.CellMinWidths = append(f.CellMinWidths, 0)
	}
	for i, w := range min {
		f.CellMinWidths[i] = AuMax(f.CellMinWidths[i], w)
	}
	for len(f.CellPrefWidths) < len(pref) {
		f.CellPrefWidths = append(f.CellPrefWidths, 0)
	}
	for i, w := range pref {
		f.CellPrefWidths[i] = AuMax(f.CellPrefWidths[i], w)
	}
}

func firstRowSpecifiedWidths(tree *FlowArena, child Flow) []Au {
	switch c := child.(type) {
	case *TableRowFlow:
		return c.ColWidths
	case *TableRowGroupFlow:
		for _, rid := range tree.Children(c.Base().ID) {
			if row, ok := tree.Get(rid).(*TableRowFlow); ok {
				return row.ColWidths
			}
		}
	}
	return nil
}

// AssignWidths takes ColWidths as already distributed by the owning
// TableWrapperFlow and pushes them onto every row before that row lays
// itself out.
func (f *TableFlow) AssignWidths(tree *FlowArena, ctx *LayoutContext) {
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
		assignRowColumnWidths(tree, child, f.ColWidths)
		child.AssignWidths(tree, ctx)
	}

	f.base.State = StateWidthsAssigned
}

func assignRowColumnWidths(tree *FlowArena, child Flow, colWidths []Au) {
	switch c := child.(type) {
	case *TableRowFlow:
		c.ColWidths = colWidths
	case *TableRowGroupFlow:
		for _, rid := range tree.Children(c.Base().ID) {
			if row, ok := tree.Get(rid).(*TableRowFlow); ok {
				row.ColWidths = colWidths
			}
		}
	}
}

func (f *TableFlow) AssignHeightInorder(tree *FlowArena, ctx *LayoutContext) {
	f.geom().assignHeightBlockBase(tree, ctx, true)
}

func (f *TableFlow) AssignHeight(tree *FlowArena, ctx *LayoutContext) {
	f.geom().assignHeightBlockBase(tree, ctx, false)
}

// CollapseMargins: the table box itself may carry margins (they belong to
// TableWrapperFlow, not this inner table box, per CSS2.1 §17.4), so this
// inner table contributes none of its own: it resets the caller's
// marginTop and collapsing to zero and clears first.
func (f *TableFlow) CollapseMargins(
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

func (f *TableFlow) BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool {
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

func (f *TableFlow) DebugStr(tree *FlowArena) string {
	return "TableFlow"
}
