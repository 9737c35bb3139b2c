package flowlayout

// FlowID indexes a Flow within a FlowArena. NoFlow (-1) never denotes a
// live flow.
type FlowID int

const NoFlow FlowID = -1

// FlowArena owns every Flow in a layout pass and the parent/child/sibling
// index relationships between them, favoring arena indices over owning
// or back pointers.
type FlowArena struct {
	flows    []Flow
	parent   []FlowID
	children [][]FlowID
}

func NewFlowArena() *FlowArena {
	return &FlowArena{}
}

// Add inserts f into the arena and returns its FlowID. f.Base().ID is set
// to the returned id.
func (t *FlowArena) Add(f Flow) FlowID {
	id := FlowID(len(t.flows))
	t.flows = append(t.flows, f)
	t.parent = append(t.parent, NoFlow)
	t.children = append(t.children, nil)
	f.Base().ID = id
	return id
}

// AddChild attaches child under parent, appending to parent's child list.
func (t *FlowArena) AddChild(parent, child FlowID) {
	t.parent[child] = parent
	t.children[parent] = append(t.children[parent], child)
}

func (t *FlowArena) Get(id FlowID) Flow {
	if id == NoFlow {
		return nil
	}
	return t.flows[id]
}

func (t *FlowArena) Parent(id FlowID) FlowID {
	return t.parent[id]
}

func (t *FlowArena) Children(id FlowID) []FlowID {
	return t.children[id]
}

// Walk calls pre before descending into a node's children and post after,
// in depth-first order. Either callback may be nil. The layout passes do
// not use it: each flow recurses into its own children.
func (t *FlowArena) Walk(root FlowID, pre, post func(FlowID)) {
	if pre != nil {
		pre(root)
	}
	for _, c := range t.children[root] {
		t.Walk(c, pre, post)
	}
	if post != nil {
		post(root)
	}
}
