// Package dump serializes a laid-out flowlayout tree to YAML for golden-
// file-style test fixtures and debug output. Only the write direction is
// kept: the layout core never deserializes a flow tree, so there is no
// FromYAML here.
package dump

import (
	"gopkg.in/yaml.v3"

	"github.com/SCKelemen/flowlayout"
)

// FlowJSON is the serializable projection of one flowlayout.Flow: its
// class, bubbled widths, final box geometry, and children, in paint
// order.
type FlowJSON struct {
	Class     string      `yaml:"class"`
	MinWidth  float64     `yaml:"minWidth"`
	PrefWidth float64     `yaml:"prefWidth"`
	Rect      RectJSON    `yaml:"rect"`
	Margin    SpacingJSON `yaml:"margin,omitempty"`
	Children  []*FlowJSON `yaml:"children,omitempty"`
}

// RectJSON is the serializable projection of a flowlayout.Rect, in
// pixels rather than app-units so fixtures read naturally.
type RectJSON struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpacingJSON is the serializable projection of a flowlayout.SideOffsets.
type SpacingJSON struct {
	Top    float64 `yaml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
	Left   float64 `yaml:"left,omitempty"`
}

// ToYAML walks root's subtree and emits its class, geometry, and
// min/pref widths as YAML.
func ToYAML(root flowlayout.Flow, tree *flowlayout.FlowArena) ([]byte, error) {
	return yaml.Marshal(flowToJSON(root, tree))
}

func flowToJSON(f flowlayout.Flow, tree *flowlayout.FlowArena) *FlowJSON {
	if f == nil {
		return nil
	}

	base := f.Base()
	fj := &FlowJSON{
		Class:     f.Class().String(),
		MinWidth:  base.MinWidth.ToPx(),
		PrefWidth: base.PrefWidth.ToPx(),
		Rect:      rectToJSON(base.Position),
	}

	if box := f.Box(); box != nil {
		fj.Rect = rectToJSON(box.Position)
		fj.Margin = spacingToJSON(box.Margin)
	}

	children := tree.Children(f.ID())
	if len(children) > 0 {
		fj.Children = make([]*FlowJSON, len(children))
		for i, cid := range children {
			fj.Children[i] = flowToJSON(tree.Get(cid), tree)
		}
	}

	return fj
}

func rectToJSON(r flowlayout.Rect) RectJSON {
	return RectJSON{
		X:      r.Origin.X.ToPx(),
		Y:      r.Origin.Y.ToPx(),
		Width:  r.Size.Width.ToPx(),
		Height: r.Size.Height.ToPx(),
	}
}

func spacingToJSON(s flowlayout.SideOffsets) SpacingJSON {
	return SpacingJSON{
		Top:    s.Top.ToPx(),
		Right:  s.Right.ToPx(),
		Bottom: s.Bottom.ToPx(),
		Left:   s.Left.ToPx(),
	}
}
