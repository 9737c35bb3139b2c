package flowlayout

// FloatedBlockInfo carries the extra state a float-type block needs:
// the containing block width it was floated within, its
// placement relative to the float context, and the float type it was
// placed as. Both BlockFlow and TableWrapperFlow can be floated, so this
// is shared rather than duplicated per flow variant.
type FloatedBlockInfo struct {
	ContainingWidth Au
	RelPos          Point
	FType           FloatType
}

// blockGeom is the shared block-formatting-context algorithm used by both
// BlockFlow and TableWrapperFlow (TableWrapperFlow's height assignment
// is identical to BlockFlow's). It holds pointers into
// its owner's real BaseFlow/Box, never copies, so mutations made through
// it are visible to the owning flow without any copy-back step.
type blockGeom struct {
	Base    *BaseFlow
	Box     *Box
	IsRoot  bool
	IsFixed bool
	Floated *FloatedBlockInfo
}

func (g *blockGeom) IsFloat() bool { return g.Floated != nil }

// ---- assign_widths shared helpers --------------------------------------

// computeHoriz solves the CSS2.1 §10.3.3 table of auto/specified
// combinations for (width, margin-left, margin-right), given the
// available width and which of the three are auto.
func computeHoriz(width, marginLeft, marginRight MaybeAuto, available Au) (w, ml, mr Au) {
	switch {
	case !width.IsAuto() && !marginLeft.IsAuto() && !marginRight.IsAuto():
		// Over-constrained: per CSS2.1, the used value of margin-right is
		// recomputed to absorb the remainder (LTR writing mode.
		w = width.SpecifiedOrZero()
		ml = marginLeft.SpecifiedOrZero()
		mr = available.Sub(w).Sub(ml)

	case width.IsAuto() && !marginLeft.IsAuto() && !marginRight.IsAuto():
		ml = marginLeft.SpecifiedOrZero()
		mr = marginRight.SpecifiedOrZero()
		w = available.Sub(ml).Sub(mr)
		if w < 0 {
			w = 0
		}

	case !width.IsAuto() && marginLeft.IsAuto() && !marginRight.IsAuto():
		w = width.SpecifiedOrZero()
		mr = marginRight.SpecifiedOrZero()
		ml = available.Sub(w).Sub(mr)

	case !width.IsAuto() && !marginLeft.IsAuto() && marginRight.IsAuto():
		w = width.SpecifiedOrZero()
		ml = marginLeft.SpecifiedOrZero()
		mr = available.Sub(w).Sub(ml)

	case width.IsAuto() && marginLeft.IsAuto() && !marginRight.IsAuto():
		ml = 0
		mr = marginRight.SpecifiedOrZero()
		w = available.Sub(ml).Sub(mr)
		if w < 0 {
			w = 0
		}

	case width.IsAuto() && !marginLeft.IsAuto() && marginRight.IsAuto():
		ml = marginLeft.SpecifiedOrZero()
		mr = 0
		w = available.Sub(ml).Sub(mr)
		if w < 0 {
			w = 0
		}

	case !width.IsAuto() && marginLeft.IsAuto() && marginRight.IsAuto():
		// Three auto-margin blocks split evenly case (spec S3): remaining
		// space splits evenly between left and right margins.
		w = width.SpecifiedOrZero()
		remaining := available.Sub(w)
		ml = remaining / 2
		mr = remaining - ml

	default: // width, marginLeft, marginRight all auto
		ml = 0
		mr = 0
		w = available
	}
	return w, ml, mr
}

// computeBlockMargins applies the max-width then min-width clamp by
// re-invoking computeHoriz with the clamped width fixed.
func computeBlockMargins(style ComputedValues, available Au) (w, ml, mr Au) {
	width := style.Box.Width
	marginLeft := style.Margin.Left
	marginRight := style.Margin.Right

	w, ml, mr = computeHoriz(width, marginLeft, marginRight, available)

	if !style.Box.MaxWidth.IsAuto() {
		maxW := style.Box.MaxWidth.SpecifiedOrZero()
		if w > maxW {
			w, ml, mr = computeHoriz(SpecifiedAu(maxW), marginLeft, marginRight, available)
		}
	}
	if !style.Box.MinWidth.IsAuto() {
		minW := style.Box.MinWidth.SpecifiedOrZero()
		if w < minW {
			w, ml, mr = computeHoriz(SpecifiedAu(minW), marginLeft, marginRight, available)
		}
	}
	return w, ml, mr
}

// computeFloatMargins computes the shrink-to-fit width for a floated
// block: min(pref, max(min, remaining)).
func computeFloatMargins(min, pref, remaining Au) Au {
	return AuMin(pref, AuMax(min, remaining))
}

// assignOwnWidths resolves this box's own used width/margins/x-offset
// against containingWidth, writing them onto g.Box. Returns the used
// width and the resolved x origin, for the caller to propagate to
// children.
func (g *blockGeom) assignOwnWidths(containingWidth Au, ctx *LayoutContext) (usedWidth, x Au) {
	if g.Box == nil {
		return containingWidth, 0
	}

	g.Box.ComputeBordersIfNecessary(containingWidth)
	g.Box.ComputePadding(containingWidth)
	noncontent := g.Box.Border.Horizontal().Add(g.Box.Padding.Horizontal())
	available := containingWidth.Sub(noncontent)

	var w, ml, mr Au
	if g.IsFloat() {
		min, pref := g.Box.MinimumAndPreferredWidths()
		min = min.Sub(g.Box.Margin.Horizontal())
		pref = pref.Sub(g.Box.Margin.Horizontal())
		w = computeFloatMargins(min, pref, available)
		ml = g.Box.Style.Margin.Left.SpecifiedOrZero()
		mr = g.Box.Style.Margin.Right.SpecifiedOrZero()
	} else {
		w, ml, mr = computeBlockMargins(g.Box.Style, available)
	}

	g.Box.Margin.Left = ml
	g.Box.Margin.Right = mr
	x = g.Box.Border.Left.Add(g.Box.Padding.Left).Add(ml)
	usedWidth = w

	g.Box.Position.Origin.X = x
	g.Box.Position.Size.Width = usedWidth

	if g.IsFixed {
		newX, newW := g.Box.GetXCoordAndNewWidthIfFixed(ctx.ScreenSize.Width, g.Box.Position.Origin.X, g.Box.Position.Size.Width)
		g.Box.Position.Origin.X = newX
		g.Box.Position.Size.Width = newW
		usedWidth = newW
	}

	return usedWidth, x
}

// ---- assign_heights shared algorithm ------------------------------------

func childIsFloat(child Flow) bool {
	switch c := child.(type) {
	case *BlockFlow:
		return c.IsFloat()
	case *TableWrapperFlow:
		return c.IsFloat()
	}
	return false
}

// assignHeightBlockBase is the combined algorithm: initialize offsets,
// run children (in-order only when
// floats are present), precompute margin-collapse eligibility, walk
// children collapsing adjacent margins, resolve this block's own height,
// write back position/margins, and set floats_out. Shared between
// BlockFlow and TableWrapperFlow.
func (g *blockGeom) assignHeightBlockBase(tree *FlowArena, ctx *LayoutContext, inorder bool) {
	// A flow whose heights are already assigned may run the height pass
	// again, so it can be repeated on an unchanged tree.
	if g.Base.State != StateHeightsAssigned {
		assertState(g.Base.State, StateWidthsAssigned, "AssignHeight")
	}

	topOffset, bottomOffset, left := g.initializeOffsets()

	// clear: pushed down here, immediately after the block's own top
	// margin is known but before topOffset is finalized, so a cleared
	// block never collapses its top margin through a float it stepped
	// past.
	if g.Box != nil {
		clearance := g.Box.ClearOffset(g.Base.FloatsIn)
		g.Box.Clearance = clearance
		topOffset = topOffset.Add(clearance)
	}

	children := tree.Children(g.Base.ID)
	if inorder {
		g.handleChildrenFloatsIfInorder(tree, children, left, topOffset)
	}

	topCollapsible, bottomCollapsible := g.precomputeMarginCollapseEligibility()

	curY := topOffset
	marginTop := g.marginTopOrZero()
	collapsing := Au(0)
	collapsible := Au(0)
	if topCollapsible {
		collapsible = marginTop
	}
	first := true

	for _, cid := range children {
		child := tree.Get(cid)
		cb := child.Base()

		if inorder && cb.HasFlag(FlagIsInorder) {
			child.AssignHeightInorder(tree, ctx)
		} else {
			child.AssignHeight(tree, ctx)
		}

		child.CollapseMargins(topCollapsible, &first, &marginTop, &curY, &collapsing, &collapsible)

		if childIsFloat(child) {
			collapsing = 0
			collapsible = 0
		}

		cb.Position.Origin.Y = curY
		curY = curY.Add(cb.Position.Size.Height)
	}

	// Bottom margin collapse: the parent's own bottom margin may collapse
	// with the last in-flow child's bottom margin (carried forward in
	// collapsible) when nothing prevents it.
	marginBottom := g.marginBottomOrZero()
	if bottomCollapsible {
		marginBottom = AuMax(marginBottom, collapsible)
	}

	contentHeight := curY.Sub(topOffset)

	height := g.resolveHeight(contentHeight, ctx)

	g.computeHeightPosition(topOffset, bottomOffset, height, marginTop, marginBottom, ctx)

	g.setFloatsOut(tree, children, inorder, left, height.Sub(contentHeight).Add(bottomOffset))

	g.Base.State = StateHeightsAssigned
}

func (g *blockGeom) marginTopOrZero() Au {
	if g.Box == nil {
		return 0
	}
	return g.Box.Margin.Top
}

func (g *blockGeom) marginBottomOrZero() Au {
	if g.Box == nil {
		return 0
	}
	return g.Box.Margin.Bottom
}

// initializeOffsets resolves this block's own margin/border/padding into
// the top/bottom/left starting offsets for its children.
func (g *blockGeom) initializeOffsets() (top, bottom, left Au) {
	if g.Box == nil {
		return 0, 0, 0
	}
	containingWidth := g.Base.Position.Size.Width
	g.Box.Margin.Top = FromStyle(g.Box.Style.Margin.Top, containingWidth).SpecifiedOrZero()
	g.Box.Margin.Bottom = FromStyle(g.Box.Style.Margin.Bottom, containingWidth).SpecifiedOrZero()
	top = g.Box.Border.Top.Add(g.Box.Padding.Top)
	bottom = g.Box.Border.Bottom.Add(g.Box.Padding.Bottom)
	left = g.Box.Border.Left.Add(g.Box.Padding.Left)
	return top, bottom, left
}

// precomputeMarginCollapseEligibility decides, before walking children,
// whether this block's own top/bottom margins are eligible to collapse
// through to its first/last child — eligible only when there is no
// border/padding separating them and (for top) no clearance applies, per
// CSS2.1 §8.3.1.
func (g *blockGeom) precomputeMarginCollapseEligibility() (topCollapsible, bottomCollapsible bool) {
	if g.Box == nil {
		return false, false
	}
	topCollapsible = !g.IsRoot && g.Box.Border.Top == 0 && g.Box.Padding.Top == 0 && g.Box.Clearance == 0
	bottomCollapsible = !g.IsRoot && g.Box.Border.Bottom == 0 && g.Box.Padding.Bottom == 0
	return topCollapsible, bottomCollapsible
}

// handleChildrenFloatsIfInorder decides, per child, whether its own
// subtree contains a float (NumFloats > 0, bubbled during BubbleWidths)
// and so must itself run the in-order traversal, marking it with
// FlagIsInorder. The incoming float context is translated once, into
// this block's own content-box-relative coordinate space
// (-left, -topOffset), before being handed to every in-order child;
// children with no floats anywhere beneath them receive the Invalid
// sentinel rather than a stale or shared context, since they never
// consult floats_in.
func (g *blockGeom) handleChildrenFloatsIfInorder(tree *FlowArena, children []FlowID, left, topOffset Au) {
	floats := g.Base.FloatsIn.Translate(Point{X: -left, Y: -topOffset})
	for _, cid := range children {
		cb := tree.Get(cid).Base()
		if cb.NumFloats > 0 {
			cb.SetFlag(FlagIsInorder)
			cb.FloatsIn = floats
		} else {
			cb.FloatsIn = InvalidFloatContext()
		}
	}
}

// resolveHeight resolves this block's final content height: the root
// flow's height is at least the screen height , an explicit
// `height` style overrides the content-derived height, otherwise the
// content height computed from children stands.
func (g *blockGeom) resolveHeight(contentHeight Au, ctx *LayoutContext) Au {
	height := contentHeight
	if g.IsRoot {
		height = AuMax(height, ctx.ScreenSize.Height)
	}
	if g.Box != nil && !g.Box.Style.Box.Height.IsAuto() {
		height = FromStyle(g.Box.Style.Box.Height, height).SpecifiedOrZero()
	}
	if g.Box != nil {
		if !g.Box.Style.Box.MaxHeight.IsAuto() {
			height = AuMin(height, g.Box.Style.Box.MaxHeight.SpecifiedOrZero())
		}
		if !g.Box.Style.Box.MinHeight.IsAuto() {
			height = AuMax(height, g.Box.Style.Box.MinHeight.SpecifiedOrZero())
		}
	}
	return height
}

// computeHeightPosition writes the resolved height/margins back onto this
// flow's own geometry and, for a fixed-position flow, passes its box
// through GetYCoordAndNewHeightIfFixed. It returns nothing.
func (g *blockGeom) computeHeightPosition(topOffset, bottomOffset, height, marginTop, marginBottom Au, ctx *LayoutContext) {
	g.Base.Position.Size.Height = height.Add(topOffset).Add(bottomOffset)

	if g.Box != nil {
		g.Box.Margin.Top = marginTop
		g.Box.Margin.Bottom = marginBottom
		g.Box.Position.Size.Height = height
		g.Box.Position.Origin.Y = topOffset

		if g.IsFixed {
			newY, newH := g.Box.GetYCoordAndNewHeightIfFixed(ctx.ScreenSize.Height, g.Box.Position.Origin.Y, g.Box.Position.Size.Height)
			g.Box.Position.Origin.Y = newY
			g.Box.Position.Size.Height = newH
		}
	}
}

// setFloatsOut computes this flow's outgoing float context: for a
// non-float flow with no floated descendants, floats_out equals floats_in
// exactly; otherwise it is whichever child's floats_out is furthest
// along, translated back out of this block's own content-box-relative
// frame by (left, -(height-contentHeight+bottomOffset)) — the inverse of
// the translate handleChildrenFloatsIfInorder applied going in, adjusted
// for any slack between this block's resolved height and the height its
// children actually consumed — or this flow's own placement if it is
// itself a float.
func (g *blockGeom) setFloatsOut(tree *FlowArena, children []FlowID, inorder bool, left, slack Au) {
	if !inorder {
		g.Base.FloatsOut = g.Base.FloatsIn
		return
	}
	out := g.Base.FloatsIn
	fromChild := false
	for _, cid := range children {
		cb := tree.Get(cid).Base()
		if cb.HasFlag(FlagIsInorder) {
			out = cb.FloatsOut
			fromChild = true
		}
	}
	if fromChild {
		out = out.Translate(Point{X: left, Y: -slack})
	}
	if g.IsFloat() && g.Box != nil {
		info := &PlacementInfo{
			Width:    g.Base.Position.Size.Width,
			Height:   g.Base.Position.Size.Height,
			Ceiling:  0,
			MaxWidth: g.floatedContainingWidth(),
			FType:    g.Floated.FType,
		}
		out = out.AddFloat(info)
		g.Floated.RelPos = out.LastFloatPos()
	}
	g.Base.FloatsOut = out
}

func (g *blockGeom) floatedContainingWidth() Au {
	if g.Floated != nil && g.Floated.ContainingWidth != 0 {
		return g.Floated.ContainingWidth
	}
	return g.Base.Position.Size.Width
}

// ---- collapse_margins ----------------------------------------------------

// collapseMargins implements the adjacency rule of CSS2.1 §8.3.1 for a
// block's own margins meeting an adjacent sibling's: adjacent margins
// collapse to their max, not their sum, so curY only ever advances by
// the larger of the previous sibling's bottom margin (collapsible,
// carried forward by the caller) and this child's own top margin. A
// floated flow does not contribute a margin to collapse at all (its
// caller resets collapsing/collapsible to zero once this call returns).
//
// When this is the first in-flow child and the parent's own top margin
// is collapsible, the gap is absorbed into the parent instead of placed
// here: marginTop (the parent's own, threaded through by the caller)
// becomes the larger of the parent's stated margin and this child's,
// curY does not move, and this child lands flush with the parent's
// content top (CSS2.1 §8.3.1 parent/first-child collapse).
func (g *blockGeom) collapseMargins(
	topMarginCollapsible bool,
	first *bool,
	marginTop *Au,
	curY *Au,
	collapsing *Au,
	collapsible *Au,
) {
	if g.IsFloat() {
		*collapsing = 0
		return
	}

	own := Au(0)
	ownBottom := Au(0)
	if g.Box != nil {
		own = g.Box.Margin.Top
		ownBottom = g.Box.Margin.Bottom
	}

	gap := AuMax(own, *collapsible)

	if *first && topMarginCollapsible {
		*marginTop = gap
		*collapsing = 0
	} else {
		*collapsing = gap
	}

	*curY = curY.Add(*collapsing)
	*collapsible = ownBottom
	*first = false
}

// ---- build_display_list ---------------------------------------------------

func (g *blockGeom) absoluteBounds() Rect {
	abs := g.Base.Position
	if g.Box != nil {
		abs = g.Box.Position
		if g.IsFloat() && g.Floated != nil {
			abs = abs.Translate(g.Floated.RelPos)
		}
	}
	return abs
}

func (g *blockGeom) buildDisplayList(tree *FlowArena, dirty Rect, list *DisplayList) (abs Rect, clipped bool) {
	abs = g.absoluteBounds()
	clipped = CullRect(abs, dirty)
	if !clipped && g.Box != nil {
		list.Push(DisplayItem{Kind: DisplayItemBox, Bounds: abs, FlowID: g.Base.ID})
	}
	return abs, clipped
}

// ==========================================================================
// BlockFlow
// ==========================================================================

// BlockFlow implements the CSS2.1 block formatting context.
type BlockFlow struct {
	base    BaseFlow
	box     *Box
	IsRoot  bool
	IsFixed bool
	Floated *FloatedBlockInfo
}

func NewBlockFlow(box *Box) *BlockFlow {
	return &BlockFlow{base: BaseFlow{Class: BlockFlowClass}, box: box}
}

func NewRootBlockFlow(box *Box) *BlockFlow {
	f := NewBlockFlow(box)
	f.IsRoot = true
	f.base.SetFlag(FlagMarksRoot)
	return f
}

func NewFloatBlockFlow(box *Box, fType FloatType) *BlockFlow {
	f := NewBlockFlow(box)
	f.Floated = &FloatedBlockInfo{FType: fType}
	return f
}

func (f *BlockFlow) ID() FlowID       { return f.base.ID }
func (f *BlockFlow) Class() FlowClass { return BlockFlowClass }
func (f *BlockFlow) Base() *BaseFlow  { return &f.base }
func (f *BlockFlow) Box() *Box        { return f.box }
func (f *BlockFlow) IsFloat() bool    { return f.Floated != nil }

func (f *BlockFlow) geom() *blockGeom {
	return &blockGeom{Base: &f.base, Box: f.box, IsRoot: f.IsRoot, IsFixed: f.IsFixed, Floated: f.Floated}
}

// BubbleWidths aggregates this block's own intrinsic widths and its
// children's: min width is the max of children's min widths (block
// children stack vertically, so
// the widest child's minimum constrains the parent), pref width likewise,
// then the block's own box intrinsic width (border+padding, or specified
// width if set) is folded in, and num_floats is accumulated for the
// parent's own float bookkeeping.
func (f *BlockFlow) BubbleWidths(tree *FlowArena) {
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
		min = AuMax(min, boxMin)
		pref = AuMax(pref, AuMax(boxPref, boxMin))
		min = min.Add(f.box.Margin.Horizontal())
		pref = pref.Add(f.box.Margin.Horizontal())
	}

	if f.IsFloat() {
		numFloats++
	}

	f.base.MinWidth = min
	f.base.PrefWidth = AuMax(min, pref)
	f.base.NumFloats = numFloats
	f.base.State = StateWidthsBubbled
}

// AssignWidths resolves this block's own used width/margins/x-offset, then
// propagates available width and x-offset down to its children.
func (f *BlockFlow) AssignWidths(tree *FlowArena, ctx *LayoutContext) {
	assertState(f.base.State, StateWidthsBubbled, "AssignWidths")

	var containingWidth Au
	if f.IsRoot {
		containingWidth = ctx.ScreenSize.Width
	} else {
		containingWidth = f.base.Position.Size.Width
	}

	usedWidth, x := f.geom().assignOwnWidths(containingWidth, ctx)
	f.base.Position.Size.Width = usedWidth

	childFloatsIn := f.base.FloatsIn
	if !f.base.HasFlag(FlagIsInorder) {
		childFloatsIn = NewFloatContext(f.base.NumFloats)
	}

	for _, cid := range tree.Children(f.base.ID) {
		child := tree.Get(cid)
		cb := child.Base()
		cb.Position.Size.Width = usedWidth
		cb.Position.Origin.X = x
		cb.FloatsIn = childFloatsIn
		propagateTextStyle(f, child)
		child.AssignWidths(tree, ctx)
	}

	f.base.State = StateWidthsAssigned
}

// propagateTextStyle threads text_align/text_decoration down to children
// without interpreting them. Actual text layout is InlineFlow's concern;
// this core only forwards the values.
func propagateTextStyle(parent *BlockFlow, child Flow) {
	if parent.box == nil {
		return
	}
	if cb := child.Box(); cb != nil {
		cb.Style.Text = parent.box.Style.Text
	}
}

// AssignHeightInorder is reached only when this subtree contains floats,
// translating the incoming float context by this flow's own offset
// before recursing.
func (f *BlockFlow) AssignHeightInorder(tree *FlowArena, ctx *LayoutContext) {
	f.base.SetFlag(FlagIsInorder)
	f.geom().assignHeightBlockBase(tree, ctx, true)
}

// AssignHeight is the ordinary post-order height pass used when no floats
// are present in this subtree; the root flow upgrades itself to the
// in-order traversal when floats exist anywhere in the tree.
func (f *BlockFlow) AssignHeight(tree *FlowArena, ctx *LayoutContext) {
	if f.IsRoot && f.base.NumFloats > 0 {
		f.AssignHeightInorder(tree, ctx)
		return
	}
	f.geom().assignHeightBlockBase(tree, ctx, false)
}

// CollapseMargins implements the adjacency rule of CSS2.1 §8.3.1; see
// blockGeom.collapseMargins for the shared algorithm. topOffset is the
// caller's running Y cursor — collapseMargins advances it in place by
// whatever gap (if any) survives the collapse, so the caller places this
// child at the already-corrected position.
func (f *BlockFlow) CollapseMargins(
	topMarginCollapsible bool,
	first *bool,
	marginTop *Au,
	topOffset *Au,
	collapsing *Au,
	collapsible *Au,
) {
	f.geom().collapseMargins(topMarginCollapsible, first, marginTop, topOffset, collapsing, collapsible)
}

// BuildDisplayList emits this block's own box (if any) then recurses into
// children, culling against dirty. Returns true when this flow (and
// everything painted through it) is fully clipped by dirty.
func (f *BlockFlow) BuildDisplayList(tree *FlowArena, builder *DisplayListBuilder, dirty Rect, list *DisplayList) bool {
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

func (f *BlockFlow) DebugStr(tree *FlowArena) string {
	switch {
	case f.IsRoot:
		return "BlockFlow(root)"
	case f.IsFloat():
		return "BlockFlow(float)"
	default:
		return "BlockFlow"
	}
}
