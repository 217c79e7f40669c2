package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrefix(t *testing.T) {
	cases := map[string]Prefix{
		"P": 15, "T": 12, "G": 9, "M": 6, "k": 3, "": 0,
		"d": -1, "z": -2, "m": -3, "µ": -6, "my": -6, "n": -9,
		"x": 0, "K": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParsePrefix(in), "prefix %q", in)
	}
}

func TestQuantityConversion(t *testing.T) {
	q := Quantity{Value: 250, Scale: Milli}
	assert.InDelta(t, 0.25, q.Base(), 1e-12)

	k := Quantity{Value: 4.7, Scale: Kilo}.In(None)
	assert.Equal(t, None, k.Scale)
	assert.InDelta(t, 4700, k.Value, 1e-9)

	n := New(0.002, Milli)
	assert.InDelta(t, 2, n.Value, 1e-12)
	assert.Equal(t, "m", n.Scale.Symbol())
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(nil, nil))
	assert.Equal(t, 2, Count(Known(1), nil, Known(0)))
	assert.Equal(t, 0.0, *Known(0))
}
