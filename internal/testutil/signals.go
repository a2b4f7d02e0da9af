package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns 0, 1, ..., n-1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Variable is a minimal recordable signal for tests.
type Variable struct {
	ID    string
	Space string
	V     float64
}

// Name returns the short name.
func (v *Variable) Name() string { return v.ID }

// Namespace returns the namespace, possibly empty.
func (v *Variable) Namespace() string { return v.Space }

// Value returns the current value.
func (v *Variable) Value() float64 { return v.V }

// SetValue sets the current value.
func (v *Variable) SetValue(x float64) { v.V = x }
