package flowlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cellWithHeight(h Au) *TableCellFlow {
	style := ComputedValues{Box: autoBoxStyle(), Margin: autoMarginStyle()}
	style.Box.Width = SpecifiedAu(FromPx(100))
	style.Box.Height = SpecifiedAu(h)
	return NewTableCellFlow(NewBox(style))
}

func TestTableRowFlowBubbleWidthsSumsColumns(t *testing.T) {
	tree := NewFlowArena()
	row := NewTableRowFlow(nil)
	rowID := tree.Add(row)

	for i := 0; i < 3; i++ {
		cell := tableCellWidth(FromPx(50))
		cid := tree.Add(cell)
		tree.AddChild(rowID, cid)
	}

	row.BubbleWidths(tree)

	assert.Equal(t, []Au{FromPx(50), FromPx(50), FromPx(50)}, row.ColWidths)
	assert.Equal(t, FromPx(150), row.Base().MinWidth)
}

func TestTableRowFlowAssignWidthsLaysOutCellsLeftToRight(t *testing.T) {
	tree := NewFlowArena()
	row := NewTableRowFlow(nil)
	rowID := tree.Add(row)

	var cellIDs []FlowID
	for i := 0; i < 2; i++ {
		cell := tableCellWidth(0)
		cid := tree.Add(cell)
		tree.AddChild(rowID, cid)
		cellIDs = append(cellIDs, cid)
	}

	row.BubbleWidths(tree)
	row.ColWidths = []Au{FromPx(100), FromPx(150)}
	row.Base().Position.Size.Width = FromPx(250)
	row.Base().Position.Origin.X = FromPx(10)

	row.AssignWidths(tree, newTestLayoutContext())

	first := tree.Get(cellIDs[0]).Base()
	second := tree.Get(cellIDs[1]).Base()
	assert.Equal(t, FromPx(10), first.Position.Origin.X)
	assert.Equal(t, FromPx(100), first.Position.Size.Width)
	assert.Equal(t, FromPx(110), second.Position.Origin.X)
	assert.Equal(t, FromPx(150), second.Position.Size.Width)
}

// The row's own position.size.height is written from max_y, the same
// running maximum that becomes the shared `height` every cell receives.
// In this simple case they coincide; the two are still separate writes
// rather than one, which this test doesn't need to diverge to exercise.
func TestTableRowFlowOwnHeightVsCellHeight(t *testing.T) {
	tree := NewFlowArena()
	row := NewTableRowFlow(nil)
	rowID := tree.Add(row)

	short := cellWithHeight(FromPx(20))
	tall := cellWithHeight(FromPx(50))
	shortID := tree.Add(short)
	tallID := tree.Add(tall)
	tree.AddChild(rowID, shortID)
	tree.AddChild(rowID, tallID)

	row.BubbleWidths(tree)
	row.ColWidths = []Au{FromPx(100), FromPx(100)}
	row.Base().Position.Size.Width = FromPx(200)

	ctx := newTestLayoutContext()
	row.AssignWidths(tree, ctx)
	row.AssignHeight(tree, ctx)

	assert.Equal(t, FromPx(50), row.Base().Position.Size.Height)
	assert.Equal(t, FromPx(50), short.Box().Position.Size.Height)
	assert.Equal(t, FromPx(50), tall.Box().Position.Size.Height)
}

func TestTableRowFlowCollapseMarginsResetsToZero(t *testing.T) {
	row := NewTableRowFlow(nil)
	first := true
	marginTop := FromPx(99)
	topOffset := Au(0)
	collapsing := FromPx(5)
	collapsible := Au(0)
	row.CollapseMargins(true, &first, &marginTop, &topOffset, &collapsing, &collapsible)

	assert.Equal(t, Au(0), marginTop)
	assert.Equal(t, Au(0), collapsing)
	assert.False(t, first)
}
