package flowlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatContextAddFloatThenClearance(t *testing.T) {
	fc := NewFloatContext(2)
	fc = fc.AddFloat(&PlacementInfo{Width: FromPx(50), Height: FromPx(30), MaxWidth: FromPx(200), FType: FloatLeft})

	assert.False(t, fc.IsEmpty())
	assert.Equal(t, FromPx(30), fc.Clearance(FloatLeft))
	assert.Equal(t, FromPx(30), fc.Clearance(FloatBoth))
	assert.Equal(t, Au(0), fc.Clearance(FloatRight))
}

func TestFloatContextNeverLosesAFloat(t *testing.T) {
	fc := NewFloatContext(0)
	fc = fc.AddFloat(&PlacementInfo{Width: FromPx(50), Height: FromPx(20), MaxWidth: FromPx(100), FType: FloatLeft})
	fc = fc.AddFloat(&PlacementInfo{Width: FromPx(60), Height: FromPx(20), MaxWidth: FromPx(100), FType: FloatLeft})

	// The second float doesn't fit beside the first (50+60 > 100), so it
	// must be placed lower rather than dropped.
	assert.Equal(t, FromPx(40), fc.Clearance(FloatLeft))
}

// Translate must be exact and commute, per spec invariant 5: the
// FloatContext's own translation shares Rect.Translate's no-rounding
// guarantee, and a two-step translate must match the one-step sum.
func TestFloatContextTranslateCommutativity(t *testing.T) {
	fc := NewFloatContext(1)
	fc = fc.AddFloat(&PlacementInfo{Width: FromPx(50), Height: FromPx(30), MaxWidth: FromPx(200), FType: FloatLeft})

	a := Point{X: FromPx(3), Y: FromPx(5)}
	b := Point{X: FromPx(-1), Y: FromPx(2)}

	stepwise := fc.Translate(a).Translate(b)
	oneShot := fc.Translate(a.Add(b))

	assert.Equal(t, oneShot.LastFloatPos(), stepwise.LastFloatPos())
}

func TestFloatContextInvalidPanicsOnClearance(t *testing.T) {
	fc := InvalidFloatContext()
	assert.Panics(t, func() {
		fc.Clearance(FloatLeft)
	})
}

func TestFloatContextInvalidPanicsOnTranslate(t *testing.T) {
	fc := InvalidFloatContext()
	assert.Panics(t, func() {
		fc.Translate(Point{})
	})
}

func TestFloatContextInvalidPanicsOnAddFloat(t *testing.T) {
	fc := InvalidFloatContext()
	assert.Panics(t, func() {
		fc.AddFloat(&PlacementInfo{Width: FromPx(1), Height: FromPx(1), MaxWidth: FromPx(10), FType: FloatLeft})
	})
}

func TestFloatContextRightPlacement(t *testing.T) {
	fc := NewFloatContext(1)
	fc = fc.AddFloat(&PlacementInfo{Width: FromPx(40), Height: FromPx(20), MaxWidth: FromPx(200), FType: FloatRight})

	pos := fc.LastFloatPos()
	require.Equal(t, FromPx(160), pos.X)
	require.Equal(t, Au(0), pos.Y)
}
