package flowlayout

// RunLayout drives the four ordered traversals over root exactly once
// each: BubbleWidths (post-order, via the tree itself since each flow
// recurses into its own children), AssignWidths (pre-order),
// AssignHeights (post-order, upgrading to the in-order float traversal
// when root's subtree contains any float), and BuildDisplayList
// (pre-order, culled against dirty). One function owns traversal order
// so individual flow methods never have to guess which pass comes next.
func RunLayout(root Flow, tree *FlowArena, ctx *LayoutContext, dirty Rect) *DisplayList {
	root.BubbleWidths(tree)
	root.AssignWidths(tree, ctx)

	if root.Base().NumFloats > 0 {
		root.AssignHeightInorder(tree, ctx)
	} else {
		root.AssignHeight(tree, ctx)
	}

	list := &DisplayList{}
	builder := &DisplayListBuilder{Tree: tree}
	root.BuildDisplayList(tree, builder, dirty, list)
	return list
}

// DebugTree renders root's subtree as an indented multi-line string using
// each flow's DebugStr, two spaces of indentation per depth. DebugStr
// itself stays one line per flow; this is the tree-wide convenience for
// debug and test failure output. The dump package does not use it.
func DebugTree(root Flow, tree *FlowArena) string {
	var out []byte
	var walk func(f Flow, depth int)
	walk = func(f Flow, depth int) {
		for i := 0; i < depth; i++ {
			out = append(out, ' ', ' ')
		}
		out = append(out, f.DebugStr(tree)...)
		out = append(out, '\n')
		for _, cid := range tree.Children(f.Base().ID) {
			walk(tree.Get(cid), depth+1)
		}
	}
	walk(root, 0)
	return string(out)
}
