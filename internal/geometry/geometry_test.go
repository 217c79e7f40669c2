package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaFromDiameter(t *testing.T) {
	assert.InDelta(t, math.Pi, AreaFromDiameter(2), 1e-12)
	assert.Equal(t, 0.0, AreaFromDiameter(0))
}

func TestDiameterFromAreaUndefined(t *testing.T) {
	for _, a := range []float64{0, -1, math.NaN()} {
		_, ok := DiameterFromArea(a)
		assert.False(t, ok, "area %v", a)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []float64{1e-6, 0.1, 0.5, 1, 1.78, 2.5, 10, 1234.5} {
		got, ok := DiameterFromArea(AreaFromDiameter(d))
		require.True(t, ok)
		assert.InEpsilon(t, d, got, 1e-9, "diameter %v", d)
	}
}

func TestFromArea(t *testing.T) {
	c := FromArea(math.Pi)
	require.NotNil(t, c.Diameter)
	assert.InDelta(t, 2, *c.Diameter, 1e-12)

	neg := FromArea(-3)
	assert.Nil(t, neg.Diameter)
	require.NotNil(t, neg.Area)
	assert.Equal(t, -3.0, *neg.Area)
}

func TestResolvedArea(t *testing.T) {
	d := 2.0
	a, ok := Circle{Diameter: &d}.ResolvedArea()
	require.True(t, ok)
	assert.InDelta(t, math.Pi, a, 1e-12)

	_, ok = Circle{}.ResolvedArea()
	assert.False(t, ok)

	c := FromDiameter(1)
	a, ok = c.ResolvedArea()
	require.True(t, ok)
	assert.InDelta(t, math.Pi/4, a, 1e-12)
}
