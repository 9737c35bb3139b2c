package flowlayout

// FloatType is the side a float is placed on, or (for clearance queries)
// "both".
type FloatType int

const (
	FloatLeft FloatType = iota
	FloatRight
	FloatBoth
)

type floatBand struct {
	rect Rect
	kind FloatType
}

// FloatContext is the persistent value type threaded through a BFC's
// in-order height traversal. It is cheap to clone (a slice header plus a
// small struct) and carries floats_in/floats_out by value — never by
// shared pointer.
//
// A zero FloatContext with invalid set is the distinguished Invalid
// value: handleChildrenFloatsIfInorder hands it to every child whose
// subtree holds no float. Translate, Clearance, AddFloat and LastFloatPos
// assert it is not invalid before doing anything else; IsEmpty does not
// check.
type FloatContext struct {
	bands   []floatBand
	offset  Point
	invalid bool
}

// NewFloatContext creates an empty, valid FloatContext. capacityHint sizes
// the initial band slice to reduce reallocation for a BFC expected to hold
// roughly that many floats.
func NewFloatContext(capacityHint int) FloatContext {
	return FloatContext{bands: make([]floatBand, 0, capacityHint)}
}

// InvalidFloatContext returns the distinguished Invalid sentinel.
func InvalidFloatContext() FloatContext {
	return FloatContext{invalid: true}
}

func (fc FloatContext) assertValid() {
	if fc.invalid {
		panic("flowlayout: FloatContext::Invalid observed by a consumer — in-order height traversal was missed")
	}
}

// Translate returns fc shifted by delta. Exact — no rounding is ever
// introduced, so repeated translate/inverse-translate round-trips are
// exact no-ops .
func (fc FloatContext) Translate(delta Point) FloatContext {
	fc.assertValid()
	out := fc
	out.offset = fc.offset.Add(delta)
	return out
}

func (fc FloatContext) absoluteBand(i int) Rect {
	return fc.bands[i].rect.Translate(fc.offset)
}

// Clearance returns the Au amount a box must be pushed down by to clear
// floats of the given kind (CSS2.1 §9.5.2-ish), measured from the current
// origin.
func (fc FloatContext) Clearance(kind FloatType) Au {
	fc.assertValid()
	var maxBottom Au
	found := false
	for i, b := range fc.bands {
		if kind != FloatBoth && b.kind != kind && b.kind != FloatBoth {
			continue
		}
		bottom := fc.absoluteBand(i).Bottom()
		if !found || bottom > maxBottom {
			maxBottom = bottom
			found = true
		}
	}
	if !found {
		return 0
	}
	return maxBottom.Sub(fc.offset.Y)
}

// PlacementInfo describes a float about to be added to a FloatContext.
type PlacementInfo struct {
	Width, Height Au
	Ceiling       Au // minimum y this float may be placed at
	MaxWidth      Au // width of the containing block the float must fit within
	FType         FloatType
}

// AddFloat places info within fc at the highest y >= info.Ceiling that
// fits within info.MaxWidth without overlapping any existing same-side or
// opposing-side float, and returns the resulting FloatContext. A float is
// never lost once added within a BFC : AddFloat
// always succeeds, placing arbitrarily far down if nothing else fits.
func (fc FloatContext) AddFloat(info *PlacementInfo) FloatContext {
	fc.assertValid()

	y := info.Ceiling
	for {
		left, right := fc.availableBandAt(y, y.Add(info.Height))
		right = AuMin(right, info.MaxWidth)
		width := right.Sub(left)
		if width >= info.Width || (left == 0 && right == info.MaxWidth) {
			var x Au
			if info.FType == FloatRight {
				x = right.Sub(info.Width)
			} else {
				x = left
			}
			rect := NewRect(x, y, info.Width, info.Height)
			out := fc
			out.bands = append(append([]floatBand{}, fc.bands...), floatBand{
				rect: rect.Translate(Point{X: -fc.offset.X, Y: -fc.offset.Y}),
				kind: info.FType,
			})
			return out
		}
		y = fc.nextCandidateY(y, info.FType)
	}
}

// availableBandAt returns the horizontal span [left, right) free of
// same/opposing-side floats across the vertical span [y0, y1).
func (fc FloatContext) availableBandAt(y0, y1 Au) (left, right Au) {
	left, right = 0, auMaxWidth(fc)
	for i, b := range fc.bands {
		r := fc.absoluteBand(i)
		if r.Bottom() <= y0 || r.Origin.Y >= y1 {
			continue
		}
		switch b.kind {
		case FloatLeft:
			if r.Right() > left {
				left = r.Right()
			}
		case FloatRight:
			if r.Origin.X < right {
				right = r.Origin.X
			}
		}
	}
	return left, right
}

func auMaxWidth(fc FloatContext) Au {
	var max Au
	for i := range fc.bands {
		r := fc.absoluteBand(i)
		if r.Right() > max {
			max = r.Right()
		}
	}
	return max + 1<<30 // effectively unbounded; callers clamp against info.MaxWidth
}

func (fc FloatContext) nextCandidateY(y Au, kind FloatType) Au {
	best := Au(1 << 62)
	found := false
	for i, b := range fc.bands {
		if kind != FloatBoth && b.kind != kind {
			continue
		}
		bottom := fc.absoluteBand(i).Bottom()
		if bottom > y && bottom < best {
			best = bottom
			found = true
		}
	}
	if !found {
		return y.Add(1)
	}
	return best
}

// LastFloatPos returns the origin of the most recently added float.
func (fc FloatContext) LastFloatPos() Point {
	fc.assertValid()
	if len(fc.bands) == 0 {
		return Point{}
	}
	return fc.absoluteBand(len(fc.bands) - 1).Origin
}

// IsEmpty reports whether fc has no floats — the non-float-flow identity
// case from ("for non-float flows without floated descendants,
// floats_out == floats_in").
func (fc FloatContext) IsEmpty() bool {
	return len(fc.bands) == 0
}
