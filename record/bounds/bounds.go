package bounds

import "math"

// Tracker holds the minimum and maximum of a series of samples over an index
// interval.
//
// The interval is half-open: [Start, End) when Start < End. When Start >= End
// the interval wraps around the end of the series, covering [Start, len) and
// then [0, End). A cleared tracker uses (-1, -1) as its interval and reports
// (+Inf, -Inf) as its bounds.
//
// Tracker is a value type; copying it takes a snapshot.
type Tracker struct {
	start int
	end   int
	lower float64
	upper float64
}

// New returns a cleared Tracker.
func New() Tracker {
	var t Tracker
	t.Clear()
	return t
}

// Clear resets the interval to the empty marker and the bounds to (+Inf, -Inf).
func (t *Tracker) Clear() {
	t.start = -1
	t.end = -1
	t.lower = math.Inf(1)
	t.upper = math.Inf(-1)
}

// SetInterval records the interval the bounds describe. Bounds are not
// touched; call Compute afterwards.
func (t *Tracker) SetInterval(start, end int) {
	t.start = start
	t.end = end
}

// SetBounds overwrites the bounds without touching the interval.
func (t *Tracker) SetBounds(lower, upper float64) {
	t.lower = lower
	t.upper = upper
}

// Compute rescans data over the current interval. The bounds are replaced
// only when the result differs; the return value reports whether they did.
func (t *Tracker) Compute(data []float64) bool {
	lower, upper := scan(data, t.start, t.end)
	if lower == t.lower && upper == t.upper {
		return false
	}
	t.lower = lower
	t.upper = upper
	return true
}

// Update widens the bounds to include v and reports whether they changed.
func (t *Tracker) Update(v float64) bool {
	changed := false
	if v < t.lower {
		t.lower = v
		changed = true
	}
	if v > t.upper {
		t.upper = v
		changed = true
	}
	return changed
}

// Contains reports whether v lies in [Lower, Upper].
func (t Tracker) Contains(v float64) bool {
	return v >= t.lower && v <= t.upper
}

// Start returns the first index of the interval.
func (t Tracker) Start() int { return t.start }

// End returns the exclusive end of the interval.
func (t Tracker) End() int { return t.end }

// Lower returns the minimum over the interval.
func (t Tracker) Lower() float64 { return t.lower }

// Upper returns the maximum over the interval.
func (t Tracker) Upper() float64 { return t.upper }

// IsEmpty reports whether the bounds still hold the empty sentinel.
func (t Tracker) IsEmpty() bool {
	return t.lower > t.upper
}

func scan(data []float64, start, end int) (lower, upper float64) {
	lower = math.Inf(1)
	upper = math.Inf(-1)

	n := len(data)
	if n == 0 || start < 0 || start >= n || end < 0 {
		return lower, upper
	}
	if end > n {
		end = n
	}

	visit := func(s []float64) {
		for _, v := range s {
			if v < lower {
				lower = v
			}
			if v > upper {
				upper = v
			}
		}
	}

	if start < end {
		visit(data[start:end])
		return lower, upper
	}
	visit(data[start:])
	visit(data[:end])
	return lower, upper
}
