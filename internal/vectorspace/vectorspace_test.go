package vectorspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fdiazgon/minimal-ir/internal/vocabulary"
)

func newSpace() *Space {
	return New(vocabulary.New([]string{"movi", "politic", "soccer"}))
}

func modulus(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func TestNormalizeYieldsUnitVector(t *testing.T) {
	space := newSpace()
	// sqrt(2^2 + 2^2 + 1^2) = 3
	v := space.Normalize(map[string]float64{"movi": 2, "politic": 2, "soccer": 1})
	require.InDelta(t, 2/3.0, v[0], 1e-12)
	require.InDelta(t, 2/3.0, v[1], 1e-12)
	require.InDelta(t, 1/3.0, v[2], 1e-12)
	require.InDelta(t, 1, modulus(v), 1e-12)
}

func TestNormalizeMissingAxesReadAsZero(t *testing.T) {
	space := newSpace()
	v := space.Normalize(map[string]float64{"movi": 1})
	require.Equal(t, []float64{1, 0, 0}, v)
}

func TestNormalizeZeroPoint(t *testing.T) {
	space := newSpace()
	require.Equal(t, []float64{0, 0, 0}, space.Normalize(nil))
	// Points entirely outside the axes are the zero vector too.
	require.Equal(t, []float64{0, 0, 0}, space.Normalize(map[string]float64{"quantum": 3}))
}

func TestCos(t *testing.T) {
	space := newSpace()
	profile1 := space.Normalize(map[string]float64{"movi": 1, "politic": 1})
	profile2 := space.Normalize(map[string]float64{"politic": 1, "soccer": 1})
	profile3 := space.Normalize(map[string]float64{"soccer": 1})

	require.InDelta(t, 1, modulus(profile1), 1e-12)
	require.InDelta(t, 1, modulus(profile2), 1e-12)
	require.InDelta(t, 1, modulus(profile3), 1e-12)

	require.InDelta(t, math.Cos(math.Pi/3), space.Cos(profile1, profile2), 1e-12) // 60 degrees
	require.InDelta(t, math.Cos(math.Pi/4), space.Cos(profile2, profile3), 1e-12) // 45 degrees
	require.InDelta(t, 1, space.Cos(profile1, profile1), 1e-12)
	require.InDelta(t, 0, space.Cos(profile1, profile3), 1e-12)
}

func TestCosIsSymmetric(t *testing.T) {
	space := newSpace()
	a := space.NormalizeCounts(map[string]int{"movi": 3, "soccer": 1})
	b := space.NormalizeCounts(map[string]int{"politic": 2, "soccer": 5})
	require.Equal(t, space.Cos(a, b), space.Cos(b, a))
}

func TestCosZeroVectorIsZeroNotNaN(t *testing.T) {
	space := newSpace()
	zero := space.Normalize(nil)
	a := space.Normalize(map[string]float64{"movi": 1})
	require.Zero(t, space.Cos(zero, a))
	require.Zero(t, space.Cos(zero, zero))
}

func TestCosPanicsOnDimensionMismatch(t *testing.T) {
	space := newSpace()
	a := space.Normalize(map[string]float64{"movi": 1})
	require.Panics(t, func() {
		space.Cos(a, []float64{1, 0})
	})
}
