// Package propcheck expresses the layout core's quantified invariants
// (width conservation, min/pref monotonicity, margin-collapse
// idempotence, and friends) as CEL expressions evaluated against a
// laid-out flow tree, rather than hand-rolling a tree walk per property.
//
// The environment exposes box-geometry and margin/padding/border
// accessors plus tree navigation (parent/children/child); there is no
// flex/grid axis in this domain, so no flex/grid-specific accessors
// exist here.
package propcheck

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/SCKelemen/flowlayout"
)

// Ref is a CEL-addressable reference to one flow in a laid-out tree: it
// wraps a Flow plus the arena it lives in so navigation functions
// (parent/children/child) can walk the tree from CEL expressions without
// any FlowID bookkeeping in the expression itself.
type Ref struct {
	flow flowlayout.Flow
	tree *flowlayout.FlowArena
}

func (r *Ref) ConvertToNative(typeDesc reflect.Type) (interface{}, error) { return r, nil }
func (r *Ref) ConvertToType(typeValue ref.Type) ref.Val                  { return r }
func (r *Ref) Type() ref.Type                                            { return types.NewTypeValue("Flow") }
func (r *Ref) Value() interface{}                                       { return r }

func (r *Ref) Equal(other ref.Val) ref.Val {
	if o, ok := other.(*Ref); ok {
		return types.Bool(r.flow.ID() == o.flow.ID())
	}
	return types.Bool(false)
}

func (r *Ref) Parent() *Ref {
	pid := r.tree.Parent(r.flow.ID())
	if pid == flowlayout.NoFlow {
		return nil
	}
	return &Ref{flow: r.tree.Get(pid), tree: r.tree}
}

func (r *Ref) Children() []*Ref {
	ids := r.tree.Children(r.flow.ID())
	out := make([]*Ref, len(ids))
	for i, id := range ids {
		out[i] = &Ref{flow: r.tree.Get(id), tree: r.tree}
	}
	return out
}

func (r *Ref) Child(index int) *Ref {
	ids := r.tree.Children(r.flow.ID())
	if index < 0 || index >= len(ids) {
		return nil
	}
	return &Ref{flow: r.tree.Get(ids[index]), tree: r.tree}
}

func (r *Ref) ChildCount() int {
	return len(r.tree.Children(r.flow.ID()))
}

// Geometry accessors, in pixels.

func (r *Ref) bounds() flowlayout.Rect {
	if box := r.flow.Box(); box != nil {
		return box.Position
	}
	return r.flow.Base().Position
}

func (r *Ref) X() float64      { return r.bounds().Origin.X.ToPx() }
func (r *Ref) Y() float64      { return r.bounds().Origin.Y.ToPx() }
func (r *Ref) Width() float64  { return r.bounds().Size.Width.ToPx() }
func (r *Ref) Height() float64 { return r.bounds().Size.Height.ToPx() }
func (r *Ref) Top() float64    { return r.Y() }
func (r *Ref) Left() float64   { return r.X() }
func (r *Ref) Bottom() float64 { return r.Y() + r.Height() }
func (r *Ref) Right() float64  { return r.X() + r.Width() }

func (r *Ref) MinWidth() float64  { return r.flow.Base().MinWidth.ToPx() }
func (r *Ref) PrefWidth() float64 { return r.flow.Base().PrefWidth.ToPx() }

// Margin/padding/border accessors. Zero for a flow with no Box.

func (r *Ref) MarginTop() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Margin.Top.ToPx()
	}
	return 0
}

func (r *Ref) MarginRight() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Margin.Right.ToPx()
	}
	return 0
}

func (r *Ref) MarginBottom() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Margin.Bottom.ToPx()
	}
	return 0
}

func (r *Ref) MarginLeft() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Margin.Left.ToPx()
	}
	return 0
}

func (r *Ref) PaddingTop() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Padding.Top.ToPx()
	}
	return 0
}

func (r *Ref) PaddingRight() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Padding.Right.ToPx()
	}
	return 0
}

func (r *Ref) PaddingBottom() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Padding.Bottom.ToPx()
	}
	return 0
}

func (r *Ref) PaddingLeft() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Padding.Left.ToPx()
	}
	return 0
}

func (r *Ref) BorderTop() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Border.Top.ToPx()
	}
	return 0
}

func (r *Ref) BorderRight() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Border.Right.ToPx()
	}
	return 0
}

func (r *Ref) BorderBottom() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Border.Bottom.ToPx()
	}
	return 0
}

func (r *Ref) BorderLeft() float64 {
	if b := r.flow.Box(); b != nil {
		return b.Border.Left.ToPx()
	}
	return 0
}

func (r *Ref) Class() string { return r.flow.Class().String() }

func unaryRefFunc(name string, fn func(*Ref) float64) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_flow",
			[]*cel.Type{cel.DynType},
			cel.DoubleType,
			cel.UnaryBinding(func(elem ref.Val) ref.Val {
				r, ok := elem.(*Ref)
				if !ok {
					return types.NewErr("expected Flow")
				}
				return types.Double(fn(r))
			})))
}

// Env builds a CEL environment over root's laid-out subtree, exposing
// tree navigation (parent, children, child, childCount) and geometry/
// margin/padding/border accessors as CEL functions, plus the root Ref
// itself bound to the "root" variable.
func Env(root flowlayout.Flow, tree *flowlayout.FlowArena) (*cel.Env, *Ref, error) {
	rootRef := &Ref{flow: root, tree: tree}

	opts := []cel.EnvOption{
		cel.Variable("root", cel.DynType),

		cel.Function("parent",
			cel.Overload("parent_flow",
				[]*cel.Type{cel.DynType},
				cel.DynType,
				cel.UnaryBinding(func(elem ref.Val) ref.Val {
					r, ok := elem.(*Ref)
					if !ok {
						return types.NewErr("expected Flow")
					}
					if p := r.Parent(); p != nil {
						return p
					}
					return types.NullValue
				}))),

		cel.Function("children",
			cel.Overload("children_flow",
				[]*cel.Type{cel.DynType},
				cel.ListType(cel.DynType),
				cel.UnaryBinding(func(elem ref.Val) ref.Val {
					r, ok := elem.(*Ref)
					if !ok {
						return types.NewErr("expected Flow")
					}
					children := r.Children()
					vals := make([]ref.Val, len(children))
					for i, c := range children {
						vals[i] = c
					}
					return types.NewDynamicList(types.DefaultTypeAdapter, vals)
				}))),

		cel.Function("child",
			cel.Overload("child_flow_int",
				[]*cel.Type{cel.DynType, cel.IntType},
				cel.DynType,
				cel.BinaryBinding(func(elem, idx ref.Val) ref.Val {
					r, ok := elem.(*Ref)
					if !ok {
						return types.NewErr("expected Flow")
					}
					i, ok := idx.Value().(int64)
					if !ok {
						return types.NewErr("expected int index")
					}
					if c := r.Child(int(i)); c != nil {
						return c
					}
					return types.NullValue
				}))),

		cel.Function("childCount",
			cel.Overload("childCount_flow",
				[]*cel.Type{cel.DynType},
				cel.IntType,
				cel.UnaryBinding(func(elem ref.Val) ref.Val {
					r, ok := elem.(*Ref)
					if !ok {
						return types.NewErr("expected Flow")
					}
					return types.Int(r.ChildCount())
				}))),

		unaryRefFunc("x", (*Ref).X),
		unaryRefFunc("y", (*Ref).Y),
		unaryRefFunc("width", (*Ref).Width),
		unaryRefFunc("height", (*Ref).Height),
		unaryRefFunc("top", (*Ref).Top),
		unaryRefFunc("left", (*Ref).Left),
		unaryRefFunc("bottom", (*Ref).Bottom),
		unaryRefFunc("right", (*Ref).Right),
		unaryRefFunc("minWidth", (*Ref).MinWidth),
		unaryRefFunc("prefWidth", (*Ref).PrefWidth),
		unaryRefFunc("marginTop", (*Ref).MarginTop),
		unaryRefFunc("marginRight", (*Ref).MarginRight),
		unaryRefFunc("marginBottom", (*Ref).MarginBottom),
		unaryRefFunc("marginLeft", (*Ref).MarginLeft),
		unaryRefFunc("paddingTop", (*Ref).PaddingTop),
		unaryRefFunc("paddingRight", (*Ref).PaddingRight),
		unaryRefFunc("paddingBottom", (*Ref).PaddingBottom),
		unaryRefFunc("paddingLeft", (*Ref).PaddingLeft),
		unaryRefFunc("borderTop", (*Ref).BorderTop),
		unaryRefFunc("borderRight", (*Ref).BorderRight),
		unaryRefFunc("borderBottom", (*Ref).BorderBottom),
		unaryRefFunc("borderLeft", (*Ref).BorderLeft),

		cel.Function("between",
			cel.Overload("between_double_double_double",
				[]*cel.Type{cel.DoubleType, cel.DoubleType, cel.DoubleType},
				cel.BoolType,
				cel.FunctionBinding(func(args ...ref.Val) ref.Val {
					value := args[0].Value().(float64)
					min := args[1].Value().(float64)
					max := args[2].Value().(float64)
					return types.Bool(value >= min && value <= max)
				}))),
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, nil, err
	}
	return env, rootRef, nil
}

// Eval compiles and evaluates expr against root's tree, returning the
// result as a CEL ref.Val. A convenience wrapper so property tests don't
// each repeat the Parse/Check/Program dance.
func Eval(root flowlayout.Flow, tree *flowlayout.FlowArena, expr string) (ref.Val, error) {
	env, rootRef, err := Env(root, tree)
	if err != nil {
		return nil, err
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("propcheck: compile %q: %w", expr, iss.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("propcheck: program %q: %w", expr, err)
	}

	out, _, err := prg.Eval(map[string]interface{}{"root": rootRef})
	if err != nil {
		return nil, fmt.Errorf("propcheck: eval %q: %w", expr, err)
	}
	return out, nil
}
