package stats

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Summary holds statistics of a recorded window.
type Summary struct {
	Length        int
	Mean          float64
	RMS           float64
	Min           float64
	MinPos        int
	Max           float64
	MaxPos        int
	Peak          float64 // max(|max|, |min|)
	Range         float64 // max - min
	Energy        float64 // sum of squares
	Variance      float64
	ZeroCrossings int
}

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// Calculate computes a Summary in a single pass using Welford's algorithm
// for the variance. Positions are relative to the start of samples.
func Calculate(samples []float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	var (
		mean          float64
		m2            float64
		maxVal        = samples[0]
		maxPos        int
		minVal        = samples[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range samples {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && samples[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	energy := Energy(samples)

	return Summary{
		Length:        n,
		Mean:          mean,
		RMS:           math.Sqrt(energy / nf),
		Min:           minVal,
		MinPos:        minPos,
		Max:           maxVal,
		MaxPos:        maxPos,
		Peak:          math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Range:         maxVal - minVal,
		Energy:        energy,
		Variance:      m2 / nf,
		ZeroCrossings: zeroCrossings,
	}
}

// Mean returns the arithmetic mean of samples using Kahan summation.
// It returns NaN for empty input.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}

	var sum, c float64
	for _, x := range samples {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(samples))
}

// Energy returns the sum of squares of samples.
func Energy(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < len(samples) {
		buf.data = make([]float64, len(samples))
	}
	sq := buf.data[:len(samples)]

	vecmath.MulBlock(sq, samples, samples)

	var sum float64
	for _, v := range sq {
		sum += v
	}

	scratchPool.Put(buf)
	return sum
}
