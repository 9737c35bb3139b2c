package flowlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func autoBoxStyle() BoxStyle {
	return BoxStyle{
		Width:     Auto(),
		Height:    Auto(),
		MinWidth:  Auto(),
		MaxWidth:  Auto(),
		MinHeight: Auto(),
		MaxHeight: Auto(),
	}
}

func autoMarginStyle() MarginStyle {
	return MarginStyle{Top: Auto(), Right: Auto(), Bottom: Auto(), Left: Auto()}
}

// ---- computeHoriz: CSS2.1 Sec10.3.3 table ----------------------------------

func TestComputeHorizAllSpecifiedOverConstrained(t *testing.T) {
	// S4: width:100, margin-left:50, margin-right:50, available:300 ->
	// right margin recomputed to 150.
	w, ml, mr := computeHoriz(
		SpecifiedAu(FromPx(100)),
		SpecifiedAu(FromPx(50)),
		SpecifiedAu(FromPx(50)),
		FromPx(300),
	)
	assert.Equal(t, FromPx(100), w)
	assert.Equal(t, FromPx(50), ml)
	assert.Equal(t, FromPx(150), mr)
}

func TestComputeHorizWidthAuto(t *testing.T) {
	w, ml, mr := computeHoriz(Auto(), SpecifiedAu(FromPx(10)), SpecifiedAu(FromPx(20)), FromPx(300))
	assert.Equal(t, FromPx(270), w)
	assert.Equal(t, FromPx(10), ml)
	assert.Equal(t, FromPx(20), mr)
}

func TestComputeHorizMarginLeftAuto(t *testing.T) {
	w, ml, mr := computeHoriz(SpecifiedAu(FromPx(200)), Auto(), SpecifiedAu(FromPx(20)), FromPx(300))
	assert.Equal(t, FromPx(200), w)
	assert.Equal(t, FromPx(80), ml)
	assert.Equal(t, FromPx(20), mr)
}

func TestComputeHorizMarginRightAuto(t *testing.T) {
	w, ml, mr := computeHoriz(SpecifiedAu(FromPx(200)), SpecifiedAu(FromPx(20)), Auto(), FromPx(300))
	assert.Equal(t, FromPx(200), w)
	assert.Equal(t, FromPx(20), ml)
	assert.Equal(t, FromPx(80), mr)
}

func TestComputeHorizWidthAndMarginLeftAutoTakesAllAvailable(t *testing.T) {
	w, ml, mr := computeHoriz(Auto(), Auto(), SpecifiedAu(FromPx(0)), FromPx(300))
	assert.Equal(t, FromPx(300), w)
	assert.Equal(t, Au(0), ml)
	assert.Equal(t, Au(0), mr)
}

func TestComputeHorizThreeAutoMarginsSplitEvenly(t *testing.T) {
	// S3: three auto-margin blocks inside a 600-wide container with
	// width:200 -> margin-left == margin-right == 200.
	w, ml, mr := computeHoriz(SpecifiedAu(FromPx(200)), Auto(), Auto(), FromPx(600))
	assert.Equal(t, FromPx(200), w)
	assert.Equal(t, FromPx(200), ml)
	assert.Equal(t, FromPx(200), mr)
}

func TestComputeHorizAllAuto(t *testing.T) {
	w, ml, mr := computeHoriz(Auto(), Auto(), Auto(), FromPx(300))
	assert.Equal(t, FromPx(300), w)
	assert.Equal(t, Au(0), ml)
	assert.Equal(t, Au(0), mr)
}

// Width conservation (invariant 1): for a non-floated block with specified
// width and two finite margins, left + width + right == available.
func TestWidthConservation(t *testing.T) {
	cases := []struct {
		width, ml, mr, available Au
	}{
		{FromPx(100), FromPx(50), FromPx(50), FromPx(300)},
		{FromPx(200), FromPx(20), FromPx(20), FromPx(300)},
		{FromPx(0), FromPx(0), FromPx(0), FromPx(0)},
	}
	for _, c := range cases {
		w, ml, mr := computeHoriz(SpecifiedAu(c.width), SpecifiedAu(c.ml), SpecifiedAu(c.mr), c.available)
		assert.Equal(t, c.available, ml.Add(w).Add(mr))
	}
}

// Max/min clamp (invariant 3): if max-width < min-width, the final width
// equals min-width.
func TestMaxMinClamp(t *testing.T) {
	style := ComputedValues{
		Box:    autoBoxStyle(),
		Margin: autoMarginStyle(),
	}
	style.Box.Width = Auto()
	style.Box.MaxWidth = SpecifiedAu(FromPx(50))
	style.Box.MinWidth = SpecifiedAu(FromPx(150))

	w, _, _ := computeBlockMargins(style, FromPx(300))
	assert.Equal(t, FromPx(150), w)
}

// Shrink-to-fit (S6, spec glossary): min(pref, max(min, remaining)).
func TestComputeFloatMarginsShrinkToFit(t *testing.T) {
	got := computeFloatMargins(FromPx(50), FromPx(120), FromPx(80))
	assert.Equal(t, FromPx(80), got)
}

func TestComputeFloatMarginsClampsToMin(t *testing.T) {
	got := computeFloatMargins(FromPx(50), FromPx(120), FromPx(10))
	assert.Equal(t, FromPx(50), got)
}

func TestComputeFloatMarginsClampsToPref(t *testing.T) {
	got := computeFloatMargins(FromPx(50), FromPx(120), FromPx(500))
	assert.Equal(t, FromPx(120), got)
}

// ---- tree-level scenarios ---------------------------------------------------

func newTestLayoutContext() *LayoutContext {
	return NewLayoutContext(FromPx(800), FromPx(600))
}

func blockStyleWithWidth(w Au) ComputedValues {
	cv := ComputedValues{Box: autoBoxStyle(), Margin: autoMarginStyle()}
	cv.Box.Width = SpecifiedAu(w)
	return cv
}

// S1: two stacked blocks, margin-bottom:20 on the first, margin-top:30 on
// the second, no borders/padding: the gap between them is 30 (max, not
// sum).
func TestScenarioMarginCollapseMaxNotSum(t *testing.T) {
	tree := NewFlowArena()

	rootBox := NewBox(blockStyleWithWidth(FromPx(300)))
	root := NewRootBlockFlow(rootBox)
	rootID := tree.Add(root)

	aStyle := blockStyleWithWidth(FromPx(300))
	aStyle.Margin.Bottom = SpecifiedAu(FromPx(20))
	aStyle.Box.Height = SpecifiedAu(FromPx(50))
	aBox := NewBox(aStyle)
	a := NewBlockFlow(aBox)
	aID := tree.Add(a)
	tree.AddChild(rootID, aID)

	bStyle := blockStyleWithWidth(FromPx(300))
	bStyle.Margin.Top = SpecifiedAu(FromPx(30))
	bStyle.Box.Height = SpecifiedAu(FromPx(40))
	bBox := NewBox(bStyle)
	b := NewBlockFlow(bBox)
	bID := tree.Add(b)
	tree.AddChild(rootID, bID)

	ctx := newTestLayoutContext()
	RunLayout(root, tree, ctx, NewRect(0, 0, FromPx(800), FromPx(600)))

	aPos := a.Base().Position
	bPos := b.Base().Position
	gap := bPos.Origin.Y.Sub(aPos.Origin.Y.Add(aPos.Size.Height))
	assert.Equal(t, FromPx(30), gap)
}

// S2: parent with padding-top:0, first child margin-top:40, parent
// margin-top:10: parent's margin becomes 40; child's y is 0 relative to
// parent content.
func TestScenarioParentFirstChildMarginCollapse(t *testing.T) {
	tree := NewFlowArena()

	parentStyle := blockStyleWithWidth(FromPx(300))
	parentStyle.Margin.Top = SpecifiedAu(FromPx(10))
	parentBox := NewBox(parentStyle)
	parent := NewBlockFlow(parentBox)
	parentID := tree.Add(parent)

	root := NewRootBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	rootID := tree.Add(root)
	tree.AddChild(rootID, parentID)

	childStyle := blockStyleWithWidth(FromPx(300))
	childStyle.Margin.Top = SpecifiedAu(FromPx(40))
	childStyle.Box.Height = SpecifiedAu(FromPx(20))
	childBox := NewBox(childStyle)
	child := NewBlockFlow(childBox)
	childID := tree.Add(child)
	tree.AddChild(parentID, childID)

	ctx := newTestLayoutContext()
	RunLayout(root, tree, ctx, NewRect(0, 0, FromPx(800), FromPx(600)))

	assert.Equal(t, FromPx(40), parentBox.Margin.Top)
	assert.Equal(t, Au(0), childBox.Position.Origin.Y)
}

// Min/pref monotonicity (invariant 2): min_width <= pref_width for every
// flow after bubble_widths.
func TestMinPrefMonotonicity(t *testing.T) {
	tree := NewFlowArena()
	root := NewRootBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	rootID := tree.Add(root)

	childStyle := ComputedValues{Box: autoBoxStyle(), Margin: autoMarginStyle()}
	childStyle.Box.MinWidth = SpecifiedAu(FromPx(120))
	child := NewBlockFlow(NewBox(childStyle))
	childID := tree.Add(child)
	tree.AddChild(rootID, childID)

	root.BubbleWidths(tree)

	require.LessOrEqual(t, int64(root.Base().MinWidth), int64(root.Base().PrefWidth))
	require.LessOrEqual(t, int64(child.Base().MinWidth), int64(child.Base().PrefWidth))
}

// Margin-collapse idempotence (invariant 4): running assign_heights twice
// on the same unchanged tree yields identical positions and heights.
func TestMarginCollapseIdempotence(t *testing.T) {
	tree := NewFlowArena()
	root := NewRootBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	rootID := tree.Add(root)

	childStyle := blockStyleWithWidth(FromPx(300))
	childStyle.Margin.Top = SpecifiedAu(FromPx(15))
	childStyle.Box.Height = SpecifiedAu(FromPx(25))
	childBox := NewBox(childStyle)
	child := NewBlockFlow(childBox)
	childID := tree.Add(child)
	tree.AddChild(rootID, childID)

	ctx := newTestLayoutContext()
	root.BubbleWidths(tree)
	root.AssignWidths(tree, ctx)
	root.AssignHeight(tree, ctx)

	firstRootHeight := root.Base().Position.Size.Height
	firstChildY := childBox.Position.Origin.Y
	firstChildHeight := childBox.Position.Size.Height

	root.AssignHeight(tree, ctx)

	assert.Equal(t, firstRootHeight, root.Base().Position.Size.Height)
	assert.Equal(t, firstChildY, childBox.Position.Origin.Y)
	assert.Equal(t, firstChildHeight, childBox.Position.Size.Height)
}

// Display-list culling (invariant 6): build_display_list(dirty=empty)
// emits no items and returns true for every node.
func TestDisplayListCullingEmptyDirtyRect(t *testing.T) {
	tree := NewFlowArena()
	root := NewRootBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	rootID := tree.Add(root)

	child := NewBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	childID := tree.Add(child)
	tree.AddChild(rootID, childID)

	ctx := newTestLayoutContext()
	root.BubbleWidths(tree)
	root.AssignWidths(tree, ctx)
	root.AssignHeight(tree, ctx)

	list := &DisplayList{}
	builder := &DisplayListBuilder{Tree: tree}
	empty := Rect{}
	clipped := root.BuildDisplayList(tree, builder, empty, list)

	assert.True(t, clipped)
	assert.Empty(t, list.Items)
}

func TestDisplayListCullingDisjointRect(t *testing.T) {
	tree := NewFlowArena()
	root := NewRootBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	rootID := tree.Add(root)
	_ = rootID

	ctx := newTestLayoutContext()
	root.BubbleWidths(tree)
	root.AssignWidths(tree, ctx)
	root.AssignHeight(tree, ctx)

	list := &DisplayList{}
	builder := &DisplayListBuilder{Tree: tree}
	far := NewRect(FromPx(10000), FromPx(10000), FromPx(10), FromPx(10))
	clipped := root.BuildDisplayList(tree, builder, far, list)

	assert.True(t, clipped)
	assert.Empty(t, list.Items)
}

// S6: a floated block of intrinsic (min=50, pref=120) in remaining=80:
// shrink-to-fit width = max(50, min(120, 80)) = 80.
func TestScenarioFloatShrinkToFit(t *testing.T) {
	tree := NewFlowArena()

	rootStyle := blockStyleWithWidth(FromPx(80))
	root := NewRootBlockFlow(NewBox(rootStyle))
	rootID := tree.Add(root)

	floatStyle := ComputedValues{Box: autoBoxStyle(), Margin: autoMarginStyle()}
	floatStyle.Box.Width = SpecifiedAu(FromPx(120))
	floatStyle.Box.MinWidth = SpecifiedAu(FromPx(50))
	floatBox := NewBox(floatStyle)
	floated := NewFloatBlockFlow(floatBox, FloatLeft)
	floatedID := tree.Add(floated)
	tree.AddChild(rootID, floatedID)

	ctx := newTestLayoutContext()
	root.BubbleWidths(tree)
	root.AssignWidths(tree, ctx)

	assert.Equal(t, FromPx(80), floatBox.Position.Size.Width)
}

func TestBlockFlowDebugStrVariants(t *testing.T) {
	plain := NewBlockFlow(nil)
	assert.Equal(t, "BlockFlow", plain.DebugStr(nil))

	root := NewRootBlockFlow(nil)
	assert.Equal(t, "BlockFlow(root)", root.DebugStr(nil))

	floated := NewFloatBlockFlow(nil, FloatLeft)
	assert.Equal(t, "BlockFlow(float)", floated.DebugStr(nil))
}
