package flowlayout

// TableWrapperFlow implements table column width distribution. It wraps
// a TableFlow (and, optionally, TableColGroupFlow children) the way
// CSS2.1 wraps a table box in an anonymous wrapper to carry the table's
// own margins.
type TableWrapperFlow struct {
	base    BaseFlow
	box     *Box
	Floated *FloatedBlockInfo

	ColWidths     []Au
	IsFixedLayout bool
}

func NewTableWrapperFlow(box *Box) *TableWrapperFlow {
	fixed := box != nil && box.Style.Table.Layout == TableLayoutFixed
	return &TableWrapperFlow{base: BaseFlow{Class: TableWrapperFlowClass}, box: box, IsFixedLayout: fixed}
}

func (f *TableWrapperFlow) ID() FlowID       { return f.base.ID }
func (f *TableWrapperFlow) Class() FlowClass { return TableWrapperFlowClass }
func (f *TableWrapperFlow) Base() *BaseFlow  { return &f.base }
func (f *TableWrapperFlow) Box() *Box        { return f.box }
func (f *TableWrapperFlow) IsFloat() bool    { return f.Floated != nil }

func (f *TableWrapperFlow) geom() *blockGeom {
	return &blockGeom{Base: &f.base, Box: f.box, Floated: f.Floated}
}

// BubbleWidths gathers column width information from children before the
// generic min/pref accumulation:
//
//   - a TableColGroupFlow child's declared per-column widths are copied
//     into ColWidths directly (colgroup widths are authoritative, not a
//     hint);
//   - a TableFlow child using table-layout:fixed donates its own
//     per-column widths for any column still zero in ColWidths;
//   - otherwise (auto layout), the column count is
//     learned from whichever is larger, ColWidths' current length or the
//     TableFlow child's cell-min-width count, and ColWidths is padded
//     with zeros up to that count. This padding only ever grows
//     ColWidths to match more cells than declared; it never trims
//     ColWidths down when the colgroup declared more columns than the
//     table has.
func (f *TableWrapperFlow) BubbleWidths(tree *FlowArena) {
	var childrenMin, childrenPref Au
	numFloats := 0

	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		child.BubbleWidths(tree)
		cb := child.Base()

		switch c := child.(type) {
		case *TableColGroupFlow:
			f.ColWidths = append(f.ColWidths[:0:0], c.ExpandedColWidths()...)

		case *TableFlow:
			if c.IsFixedLayout {
				for i, w := range c.ColWidths {
					for len(f.ColWidths) <= i {
						f.ColWidths = append(f.ColWidths, 0)
					}
					if f.ColWidths[i] == 0 {
						f.ColWidths[i] = w
					}
				}
			} else {
				numChildCells := len(c.CellMinWidths)
				numColCells := len(f.ColWidths)
				if diff := numChildCells - numColCells; diff > 0 {
					for i := 0; i < diff; i++ {
						f.ColWidths = append(f.ColWidths, 0)
					}
				}
			}
			childrenMin = AuMax(childrenMin, cb.MinWidth)
			childrenPref = AuMax(childrenPref, cb.PrefWidth)

		default:
			childrenMin = AuMax(childrenMin, cb.MinWidth)
			childrenPref = AuMax(childrenPref, cb.PrefWidth)
		}

		numFloats += cb.NumFloats
	}

	min, pref := childrenMin, childrenPref
	if f.box != nil {
		boxMin, boxPref := f.box.MinimumAndPreferredWidths()
		min = AuMax(min, boxMin)
		pref = AuMax(pref, AuMax(boxPref, boxMin))
	}
	if f.IsFloat() {
		numFloats++
	}

	f.base.MinWidth = min
	f.base.PrefWidth = AuMax(min, pref)
	f.base.NumFloats = numFloats
	f.base.State = StateWidthsBubbled
}

// AssignWidths computes the wrapper's own used width exactly as BlockFlow
// does (computeBlockMargins, or computeFloatMargins for a floated table),
// then distributes the remaining content width across columns: partition
// columns into fixed (width != 0) and flex (width == 0);
// if there is at least one flex column, each gets
// (remaining_width - sum(fixed)) / count(flex) via integer division, with
// the remainder folded into the last flex column rather than dropped, so
// the full remaining width is always accounted for. The resulting column
// vector is hung on any TableFlow child before that child lays itself
// out.
func (f *TableWrapperFlow) AssignWidths(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsBubbled, "AssignWidths")

	containingWidth := f.base.Position.Size.Width
	usedWidth, x := f.geom().assignOwnWidths(containingWidth, ctx)
	f.base.Position.Size.Width = usedWidth

	distributed := distributeColumnWidths(f.ColWidths, usedWidth)

	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		cb := child.Base()
		cb.Position.Size.Width = usedWidth
		cb.Position.Origin.X = x
		cb.FloatsIn = f.base.FloatsIn
		if table, ok := child.(*TableFlow); ok {
			table.ColWidths = distributed
		}
		child.AssignWidths(tree, ctx)
	}

	f.base.State = StateWidthsAssigned
}

// distributeColumnWidths implements the fixed/flex column partition of
// fixed columns (width != 0) keep their width; flex columns
// (width == 0) split the remainder evenly, integer-divided, with the
// remainder added to the last flex column so the full remaining_width is
// always distributed (spec's "for byte-identical reproduction" note) —
// guarded against k == 0.
func distributeColumnWidths(colWidths []Au, remainingWidth Au) []Au {
	out := append([]Au{}, colWidths...)
	if len(out) == 0 {
		return out
	}

	var fixedSum Au
	flexIdx := make([]int, 0, len(out))
	for i, w := range out {
		if w != 0 {
			fixedSum = fixedSum.Add(w)
		} else {
			flexIdx = append(flexIdx, i)
		}
	}

	k := len(flexIdx)
	if k == 0 {
		return out
	}

	remaining := remainingWidth.Sub(fixedSum)
	if remaining < 0 {
		remaining = 0
	}
	each := remaining / Au(k)
	for _, i := range flexIdx {
		out[i] = each
	}
	// Remainder from integer division goes to the last flex column.
	usedByFlex := each * Au(k)
	out[flexIdx[k-1]] = out[flexIdx[k-1]].Add(remaining.Sub(usedByFlex))

	return out
}

// AssignHeightInorder/AssignHeight reuse BlockFlow's shared margin-collapse
// height algorithm: a TableWrapperFlow is, for vertical layout purposes,
// an ordinary block box carrying one table child.
func (f *TableWrapperFlow) AssignHeightInorder(tree *FlowArena, ctx *LayoutContext) {
	f.base.SetFlag(FlagIsInorder)
	f.geom().assignHeightBlockBase(tree, ctx, true)
}

func (f *TableWrapperFlow) AssignHeight(tree *FlowArena, ctx *LayoutContext) {
	f.geom().assignHeightBlockBase(tree, ctx, false)
}

func (f *TableWrapperFlow) CollapseMargins(
	topMarginCollapsible bool,
	first *bool,
	marginTop *Au,
	topOffset *Au,
	collapsing *Au,
	collapsible *Au,
) {
	f.geom().collapseMargins(topMarginCollapsible, first, marginTop, topOffset, collapsing, collapsible)
}

func (f *TableWrapperFlow) BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool {
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

func (f *TableWrapperFlow) DebugStr(tree *FlowArena) string {
	return "TableWrapperFlow"
}
