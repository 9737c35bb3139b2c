package flowlayout

// Box is the CSS border-box belonging to a flow: style plus the mutable
// geometry a layout pass writes into. Borders and padding are fixed
// during assign_widths and never mutated after; margins may be
// rewritten during height assignment; position is rewritten three times —
// (x, width) in assign_widths, (y, height) in assign_heights, then again
// to absolute coordinates in build_display_list.
//
// Box is owned exclusively by the flow that holds it (lifecycle
// notes): no two flows ever share a *Box, and nothing outside the Box's
// own methods reaches into its cells.
type Box struct {
	Style ComputedValues

	Margin  SideOffsets
	Border  SideOffsets
	Padding SideOffsets

	// Position is the box's border-box rectangle. Its meaning changes
	// across traversals per the invariant above: relative-to-containing-
	// block during assign_widths/assign_heights, absolute after
	// build_display_list has run.
	Position Rect

	Clearance Au
}

func NewBox(style ComputedValues) *Box {
	return &Box{Style: style}
}

// ComputePadding resolves padding percentages against the containing
// block's content width (the CSS2.1 rule: all four padding percentages,
// including top/bottom, resolve against width).
func (b *Box) ComputePadding(containingWidth Au) {
	b.Padding = SideOffsets{
		Top:    b.Style.Padding.Top.Resolve(containingWidth),
		Right:  b.Style.Padding.Right.Resolve(containingWidth),
		Bottom: b.Style.Padding.Bottom.Resolve(containingWidth),
		Left:   b.Style.Padding.Left.Resolve(containingWidth),
	}
}

// ComputeBordersIfNecessary resolves border widths. Borders never carry a
// percentage in CSS2.1, but the containing width is accepted for
// symmetry with ComputePadding and future extension.
func (b *Box) ComputeBordersIfNecessary(containingWidth Au) {
	b.Border = SideOffsets{
		Top:    b.Style.Border.Top.Resolve(containingWidth),
		Right:  b.Style.Border.Right.Resolve(containingWidth),
		Bottom: b.Style.Border.Bottom.Resolve(containingWidth),
		Left:   b.Style.Border.Left.Resolve(containingWidth),
	}
}

// NoncontentWidth is the sum of horizontal border, padding, and margin —
// the amount subtracted from a containing width to get available content
// width.
func (b *Box) NoncontentWidth() Au {
	return b.Border.Horizontal().Add(b.Padding.Horizontal()).Add(b.Margin.Horizontal())
}

// NoncontentHeight is the vertical analogue of NoncontentWidth.
func (b *Box) NoncontentHeight() Au {
	return b.Border.Vertical().Add(b.Padding.Vertical()).Add(b.Margin.Vertical())
}

// MinimumAndPreferredWidths resolves this box's own min-width and width
// style (max-width is not consulted) into the (min, pref) pair
// BubbleWidths contributes, folding in border+padding (but not margin —
// margins are added by the caller).
func (b *Box) MinimumAndPreferredWidths() (min, pref Au) {
	noncontent := b.Border.Horizontal().Add(b.Padding.Horizontal())
	specifiedWidth := b.Style.Box.Width.SpecifiedOrZero()

	min = noncontent
	pref = noncontent
	if !b.Style.Box.Width.IsAuto() {
		pref = AuMax(pref, specifiedWidth.Add(noncontent))
	}
	if !b.Style.Box.MinWidth.IsAuto() {
		min = AuMax(min, b.Style.Box.MinWidth.SpecifiedOrZero().Add(noncontent))
	}
	return min, AuMax(min, pref)
}

// Offset returns the box's top-left corner relative to its containing
// block.
func (b *Box) Offset() Point {
	return b.Position.Origin
}

// ClearOffset returns the Au offset a box must be pushed down by to satisfy its
// own `clear` property, given the float context's clearance calculation.
func (b *Box) ClearOffset(fc FloatContext) Au {
	if b.Style.Box.Clear == ClearNone {
		return 0
	}
	return fc.Clearance(clearSideToFloatType(b.Style.Box.Clear))
}

func clearSideToFloatType(c ClearSide) FloatType {
	switch c {
	case ClearLeft:
		return FloatLeft
	case ClearRight:
		return FloatRight
	default:
		return FloatBoth
	}
}

// GetXCoordAndNewWidthIfFixed handles a `position: fixed` box: it replaces
// width with the box's specified width, if any. x is returned unchanged
// and screenWidth is not consulted, so the box is not re-anchored to the
// screen.
func (b *Box) GetXCoordAndNewWidthIfFixed(screenWidth Au, x, width Au) (Au, Au) {
	if b.Style.Box.Position != PositionFixed {
		return x, width
	}
	if !b.Style.Box.Width.IsAuto() {
		width = b.Style.Box.Width.SpecifiedOrZero()
	}
	return x, width
}

// GetYCoordAndNewHeightIfFixed is the vertical analogue of
// GetXCoordAndNewWidthIfFixed: a specified height replaces height, y is
// returned unchanged and screenHeight is not consulted.
func (b *Box) GetYCoordAndNewHeightIfFixed(screenHeight Au, y, height Au) (Au, Au) {
	if b.Style.Box.Position != PositionFixed {
		return y, height
	}
	if !b.Style.Box.Height.IsAuto() {
		height = b.Style.Box.Height.SpecifiedOrZero()
	}
	return y, height
}

// Teardown releases any resources the box holds. No-op today — kept as a
// named operation because names it as part of the Box contract
// InlineFlow and friends are expected to call symmetrically.
func (b *Box) Teardown() {}
