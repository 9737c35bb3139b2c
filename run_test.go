package flowlayout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLayoutProducesDisplayList(t *testing.T) {
	tree := NewFlowArena()
	root := NewRootBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	rootID := tree.Add(root)

	child := NewBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	childID := tree.Add(child)
	tree.AddChild(rootID, childID)

	ctx := newTestLayoutContext()
	list := RunLayout(root, tree, ctx, NewRect(0, 0, FromPx(800), FromPx(600)))

	require.NotNil(t, list)
	assert.NotEmpty(t, list.Items)
}

func TestRunLayoutUpgradesToInorderWhenFloatsPresent(t *testing.T) {
	tree := NewFlowArena()
	root := NewRootBlockFlow(NewBox(blockStyleWithWidth(FromPx(300))))
	rootID := tree.Add(root)

	floated := NewFloatBlockFlow(NewBox(blockStyleWithWidth(FromPx(50))), FloatLeft)
	floatedID := tree.Add(floated)
	tree.AddChild(rootID, floatedID)

	ctx := newTestLayoutContext()
	RunLayout(root, tree, ctx, NewRect(0, 0, FromPx(800), FromPx(600)))

	assert.True(t, root.Base().HasFlag(FlagIsInorder))
}

func TestDebugTreeIndentsByDepth(t *testing.T) {
	tree := NewFlowArena()
	root := NewRootBlockFlow(nil)
	rootID := tree.Add(root)

	child := NewBlockFlow(nil)
	childID := tree.Add(child)
	tree.AddChild(rootID, childID)

	grandchild := NewInlineFlow(nil)
	grandchildID := tree.Add(grandchild)
	tree.AddChild(childID, grandchildID)

	out := DebugTree(root, tree)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "BlockFlow(root)", lines[0])
	assert.Equal(t, "  BlockFlow", lines[1])
	assert.Equal(t, "    InlineFlow", lines[2])
}
