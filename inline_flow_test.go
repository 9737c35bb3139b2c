package flowlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineFlowBubbleWidthsNoBoxIsZero(t *testing.T) {
	f := NewInlineFlow(nil)
	tree := NewFlowArena()
	tree.Add(f)

	f.BubbleWidths(tree)

	assert.Equal(t, Au(0), f.Base().MinWidth)
	assert.Equal(t, Au(0), f.Base().PrefWidth)
}

func TestInlineFlowAssignWidthsTakesContainingWidth(t *testing.T) {
	style := ComputedValues{Box: autoBoxStyle()}
	f := NewInlineFlow(NewBox(style))
	tree := NewFlowArena()
	tree.Add(f)

	f.Base().Position.Size.Width = FromPx(200)
	f.BubbleWidths(tree)
	f.AssignWidths(tree, newTestLayoutContext())

	assert.Equal(t, FromPx(200), f.Box().Position.Size.Width)
}

func TestInlineFlowAssignHeightExplicit(t *testing.T) {
	style := ComputedValues{Box: autoBoxStyle()}
	style.Box.Height = SpecifiedAu(FromPx(30))
	f := NewInlineFlow(NewBox(style))
	tree := NewFlowArena()
	tree.Add(f)

	f.BubbleWidths(tree)
	f.AssignWidths(tree, newTestLayoutContext())
	f.AssignHeight(tree, newTestLayoutContext())

	assert.Equal(t, FromPx(30), f.Box().Position.Size.Height)
}

func TestInlineFlowCollapseMarginsContributesOwnMargin(t *testing.T) {
	style := ComputedValues{Box: autoBoxStyle(), Margin: autoMarginStyle()}
	style.Margin.Top = SpecifiedAu(FromPx(12))
	f := NewInlineFlow(NewBox(style))

	first := true
	marginTop := Au(0)
	topOffset := Au(0)
	collapsing := Au(0)
	collapsible := Au(0)
	f.CollapseMargins(true, &first, &marginTop, &topOffset, &collapsing, &collapsible)

	assert.Equal(t, FromPx(12), marginTop)
	assert.False(t, first)
}

func TestInlineFlowBuildDisplayListCulled(t *testing.T) {
	f := NewInlineFlow(NewBox(ComputedValues{Box: autoBoxStyle()}))
	tree := NewFlowArena()
	tree.Add(f)
	f.BubbleWidths(tree)
	f.AssignWidths(tree, newTestLayoutContext())
	f.AssignHeight(tree, newTestLayoutContext())

	list := &DisplayList{}
	clipped := f.BuildDisplayList(tree, &DisplayListBuilder{Tree: tree}, Rect{}, list)

	assert.True(t, clipped)
	assert.Empty(t, list.Items)
}
