package stats

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyInput is returned when a spectrum is requested for no samples.
	ErrEmptyInput = errors.New("stats: empty input")
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("stats: sample rate must be > 0")
)

// Spectrum is the one-sided magnitude spectrum of a recorded window.
//
// The window is zero-padded to the next power of two; bin i lies at
// i * SampleRate / FFTSize.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	Magnitude  []float64
}

// ComputeSpectrum returns the magnitude spectrum of samples. The mean is
// removed first so that bin 0 does not dominate slowly varying signals.
func ComputeSpectrum(samples []float64, sampleRate float64) (Spectrum, error) {
	if len(samples) == 0 {
		return Spectrum{}, ErrEmptyInput
	}
	if sampleRate <= 0 {
		return Spectrum{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	fftSize := nextPowerOfTwo(len(samples))
	mean := Mean(samples)

	in := make([]complex128, fftSize)
	for i, x := range samples {
		in[i] = complex(x-mean, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("stats: fft plan of size %d: %w", fftSize, err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("stats: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Spectrum{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Magnitude:  mag,
	}, nil
}

// BinFrequency returns the frequency in Hz of bin i.
func (s Spectrum) BinFrequency(i int) float64 {
	if s.FFTSize == 0 {
		return 0
	}
	return float64(i) * s.SampleRate / float64(s.FFTSize)
}

// Dominant returns the frequency and magnitude of the strongest non-DC bin.
func (s Spectrum) Dominant() (freqHz, magnitude float64) {
	best := -1
	for i := 1; i < len(s.Magnitude); i++ {
		if best < 0 || s.Magnitude[i] > s.Magnitude[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, 0
	}
	return s.BinFrequency(best), s.Magnitude[best]
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
