package flowlayout

import "fmt"

// Au is an app-unit: a signed, integer CSS length of 1/60 px.
//
// Every geometric quantity in the layout core is carried as an Au so that
// width conservation and margin-collapse idempotence (see propcheck) hold
// exactly, with no floating point drift across repeated passes.
type Au int64

// AuPerPx is the number of app-units in one CSS pixel.
const AuPerPx Au = 60

// FromPx converts a pixel value to app-units.
func FromPx(px float64) Au {
	return Au(px * float64(AuPerPx))
}

// ToPx converts app-units to a pixel value.
func (a Au) ToPx() float64 {
	return float64(a) / float64(AuPerPx)
}

func (a Au) String() string {
	return fmt.Sprintf("%gpx", a.ToPx())
}

// Add panics on overflow per the total-core error model .
func (a Au) Add(b Au) Au {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		panic(fmt.Sprintf("flowlayout: Au overflow: %d + %d", a, b))
	}
	return sum
}

// Sub panics on overflow per the total-core error model .
func (a Au) Sub(b Au) Au {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		panic(fmt.Sprintf("flowlayout: Au overflow: %d - %d", a, b))
	}
	return diff
}

// Scale multiplies by a percentage expressed as a fraction (1.0 = 100%).
func (a Au) Scale(frac float64) Au {
	return Au(float64(a) * frac)
}

func AuMax(a, b Au) Au {
	if a > b {
		return a
	}
	return b
}

func AuMin(a, b Au) Au {
	if a < b {
		return a
	}
	return b
}

// Point is a 2D app-unit coordinate.
type Point struct {
	X, Y Au
}

func (p Point) Add(d Point) Point {
	return Point{p.X.Add(d.X), p.Y.Add(d.Y)}
}

func (p Point) Sub(d Point) Point {
	return Point{p.X.Sub(d.X), p.Y.Sub(d.Y)}
}

// Size is a 2D app-unit extent.
type Size struct {
	Width, Height Au
}

// Rect is an app-unit axis-aligned rectangle, origin at top-left.
type Rect struct {
	Origin Point
	Size   Size
}

func NewRect(x, y, w, h Au) Rect {
	return Rect{Origin: Point{x, y}, Size: Size{w, h}}
}

func (r Rect) Right() Au  { return r.Origin.X.Add(r.Size.Width) }
func (r Rect) Bottom() Au { return r.Origin.Y.Add(r.Size.Height) }

// Translate returns r shifted by d. Exact: no rounding is ever introduced,
// preserving float-translation commutativity .
func (r Rect) Translate(d Point) Rect {
	return Rect{Origin: r.Origin.Add(d), Size: r.Size}
}

// Intersects reports whether r and other share any area.
func (r Rect) Intersects(other Rect) bool {
	if r.Size.Width <= 0 || r.Size.Height <= 0 || other.Size.Width <= 0 || other.Size.Height <= 0 {
		return false
	}
	return r.Origin.X < other.Right() && other.Origin.X < r.Right() &&
		r.Origin.Y < other.Bottom() && other.Origin.Y < r.Bottom()
}

// IsEmpty reports whether r has zero or negative area — the "dirty rect is
// empty" case invariant 6.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// SideOffsets holds four per-side Au values: margin, padding, or border
// widths depending on context.
type SideOffsets struct {
	Top, Right, Bottom, Left Au
}

func (s SideOffsets) Horizontal() Au {
	return s.Left.Add(s.Right)
}

func (s SideOffsets) Vertical() Au {
	return s.Top.Add(s.Bottom)
}
