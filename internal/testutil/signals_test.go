package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	assert.Len(t, s, 48)
	assert.InDelta(t, 0, s[0], 1e-15)
	for i, v := range s {
		assert.True(t, v >= -1 && v <= 1, "s[%d] = %v out of range", i, v)
	}
}

func TestRamp(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, Ramp(4))
	assert.Empty(t, Ramp(0))
}

func TestDC(t *testing.T) {
	for _, v := range DC(math.Pi, 5) {
		assert.Equal(t, math.Pi, v)
	}
}

func TestVariable(t *testing.T) {
	v := &Variable{ID: "x", Space: "root.a"}
	v.SetValue(3)
	assert.Equal(t, 3.0, v.Value())
	assert.Equal(t, "x", v.Name())
	assert.Equal(t, "root.a", v.Namespace())
}
