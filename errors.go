package flowlayout

import "fmt"

// assertStructural panics when a flow's tree shape violates one of the
// per-variant child-kind invariants (e.g. a
// TableRowFlow's children must all be TableCellFlows). This is the
// "structural assertion" error kind: a total core panics on
// programmer error rather than returning one.
func assertStructural(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("flowlayout: structural invariant violated: "+format, args...))
	}
}

// assertState panics when a flow is asked to run a traversal out of the
// lifecycle order defines (Created -> WidthsBubbled ->
// WidthsAssigned -> HeightsAssigned -> DisplayListBuilt).
func assertState(got, want FlowState, traversal string) {
	if got != want {
		panic(fmt.Sprintf("flowlayout: %s called in state %v, expected %v", traversal, got, want))
	}
}
