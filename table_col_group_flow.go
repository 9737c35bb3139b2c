package flowlayout

// TableColGroupFlow carries declared per-column widths from a CSS
// `<colgroup>`/`<col>` source
// rules. A col-group generates no box of its own (CSS2.1 §17.2.1: a
// table-column box participates in table layout but is never painted),
// so every traversal here is a structural no-op beyond state transitions.
//
// ColGroupSpan holds, parallel to ColWidths, how many physical table
// columns each declared width covers (supplemented feature
// a `<col span="3">` contributes the same width to three consecutive
// table columns rather than one.
type TableColGroupFlow struct {
	base BaseFlow
	box  *Box

	ColWidths    []Au
	ColGroupSpan []int
}

func NewTableColGroupFlow(box *Box, colWidths []Au, spans []int) *TableColGroupFlow {
	return &TableColGroupFlow{base: BaseFlow{Class: TableColGroupFlowClass}, box: box, ColWidths: colWidths, ColGroupSpan: spans}
}

func (f *TableColGroupFlow) ID() FlowID       { return f.base.ID }
func (f *TableColGroupFlow) Class() FlowClass { return TableColGroupFlowClass }
func (f *TableColGroupFlow) Base() *BaseFlow  { return &f.base }
func (f *TableColGroupFlow) Box() *Box        { return f.box }

// ExpandedColWidths repeats each declared column width across its
// ColGroupSpan count, producing one width per physical table column —
// the form TableWrapperFlow's column distribution  consumes.
// A span of zero or a missing span entry defaults to 1 (CSS2.1's default
// `span` value).
func (f *TableColGroupFlow) ExpandedColWidths() []Au {
	out := make([]Au, 0, len(f.ColWidths))
	for i, w := range f.ColWidths {
		span := 1
		if i < len(f.ColGroupSpan) && f.ColGroupSpan[i] > 0 {
			span = f.ColGroupSpan[i]
		}
		for s := 0; s < span; s++ {
			out = append(out, w)
		}
	}
	return out
}

func (f *TableColGroupFlow) BubbleWidths(tree *FlowArena) {
	for _, cid := range tree.Children(f.base.ID) {
		tree.Get(cid).BubbleWidths(tree)
	}
	f.base.MinWidth = 0
	f.base.PrefWidth = 0
	f.base.State = StateWidthsBubbled
}

func (f *TableColGroupFlow) AssignWidths(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsBubbled, "AssignWidths")
	f.base.Position.Size.Width = 0
	f.base.State = StateWidthsAssigned
}

func (f *TableColGroupFlow) AssignHeightInorder(tree *FlowArena, ctx *LayoutContext) {
	f.AssignHeight(tree, ctx)
}

func (f *TableColGroupFlow) AssignHeight(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsAssigned, "AssignHeight")
	f.base.Position.Size.Height = 0
	f.base.FloatsOut = f.base.FloatsIn
	f.base.State = StateHeightsAssigned
}

func (f *TableColGroupFlow) CollapseMargins(
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

func (f *TableColGroupFlow) BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool {
	assertState(f.base.State, StateHeightsAssigned, "BuildDisplayList")
	f.base.State = StateDisplayListBuilt
	return true
}

func (f *TableColGroupFlow) DebugStr(tree *FlowArena) string {
	return "TableColGroupFlow"
}
