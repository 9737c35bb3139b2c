package flowlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeAutoIsAuto(t *testing.T) {
	require.True(t, Auto().IsAuto())
	require.False(t, SpecifiedAu(FromPx(10)).IsAuto())
}

func TestMaybeAutoSpecifiedOrZero(t *testing.T) {
	assert.Equal(t, Au(0), Auto().SpecifiedOrZero())
	assert.Equal(t, FromPx(10), SpecifiedAu(FromPx(10)).SpecifiedOrZero())
}

func TestMaybeAutoSpecifiedOrDefault(t *testing.T) {
	assert.Equal(t, FromPx(5), Auto().SpecifiedOrDefault(FromPx(5)))
	assert.Equal(t, FromPx(10), SpecifiedAu(FromPx(10)).SpecifiedOrDefault(FromPx(5)))
}

func TestStyleLengthResolvePercent(t *testing.T) {
	containing := FromPx(200)
	got := Percent(50).Resolve(containing)
	assert.Equal(t, FromPx(100), got)
}

func TestStyleLengthResolveFixed(t *testing.T) {
	got := Fixed(FromPx(42)).Resolve(FromPx(1000))
	assert.Equal(t, FromPx(42), got)
}

func TestFromStylePassesThroughAuto(t *testing.T) {
	got := FromStyle(Auto(), FromPx(100))
	assert.True(t, got.IsAuto())
}

func TestFromStyleResolvesPercent(t *testing.T) {
	got := FromStyle(Specified(Percent(25)), FromPx(400))
	assert.False(t, got.IsAuto())
	assert.Equal(t, FromPx(100), got.SpecifiedOrZero())
}
