package buffer

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-record/record/bounds"
	"github.com/cwbudde/algo-record/record/stats"
)

// Entry stores the history of one Signal in a circular buffer.
//
// Point reads and writes, window extraction and bounds queries are safe to
// call concurrently with each other. Samples are only ever handed out as
// copies.
type Entry struct {
	mu     sync.Mutex
	signal Signal
	data   []float64

	current       bounds.Tracker
	boundsDirty   bool
	boundsChanged bool

	window      bounds.Tracker
	windowValid bool

	inverted        bool
	useCustomBounds bool
}

// NewEntry returns a zero-filled entry of size samples for s.
func NewEntry(s Signal, size int) (*Entry, error) {
	if s == nil {
		return nil, ErrNilSignal
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	e := &Entry{signal: s}
	e.reset(size)
	return e, nil
}

// Signal returns the recorded signal.
func (e *Entry) Signal() Signal {
	return e.signal
}

// Len returns the number of samples.
func (e *Entry) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.data)
}

// WriteValue stores v at index. The bounds are widened incrementally and
// only a changed sample can flag them as changed.
func (e *Entry) WriteValue(v float64, index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store(v, index)
}

// ValueAt returns the sample at index. It panics if index is outside
// [0, Len).
func (e *Entry) ValueAt(index int) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.data[index]
}

// Window returns length samples starting at start, wrapping around the end
// of the buffer. length may exceed the distance to the end.
func (e *Entry) Window(start, length int) []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.windowLocked(start, length)
}

// Data returns a copy of the whole buffer.
func (e *Entry) Data() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.windowLocked(0, len(e.data))
}

// Bounds returns the bounds over the whole buffer, recomputing them if a
// reshape invalidated them.
func (e *Entry) Bounds() bounds.Tracker {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.boundsDirty {
		e.current.SetInterval(0, len(e.data))
		if e.current.Compute(e.data) {
			e.boundsChanged = true
		}
		e.boundsDirty = false
	}
	return e.current
}

// WindowBounds returns the bounds over [start, end), wrapping when
// start >= end. The result is cached until the interval or the samples change.
func (e *Entry) WindowBounds(start, end int) bounds.Tracker {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.windowValid || e.window.Start() != start || e.window.End() != end {
		e.window.Clear()
		e.window.SetInterval(start, end)
		e.window.Compute(e.data)
		e.windowValid = true
	}
	return e.window
}

// CustomBounds returns the display range of the signal over the whole buffer.
// ok is false when the signal does not implement Ranged.
func (e *Entry) CustomBounds() (b bounds.Tracker, ok bool) {
	r, ok := e.signal.(Ranged)
	if !ok {
		return bounds.New(), false
	}
	lower, upper := r.Range()
	b = bounds.New()
	b.SetInterval(0, e.Len())
	b.SetBounds(lower, upper)
	return b, true
}

// BoundsChanged reports whether the bounds changed since the last reset.
func (e *Entry) BoundsChanged() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.boundsChanged
}

// ResetBoundsChanged clears the bounds changed flag.
func (e *Entry) ResetBoundsChanged() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.boundsChanged = false
}

// SetInverted sets the inverted display hint.
func (e *Entry) SetInverted(inverted bool) { e.inverted = inverted }

// Inverted returns the inverted display hint.
func (e *Entry) Inverted() bool { return e.inverted }

// SetUseCustomBounds sets whether displays should prefer CustomBounds.
func (e *Entry) SetUseCustomBounds(use bool) { e.useCustomBounds = use }

// UsesCustomBounds returns the custom bounds display hint.
func (e *Entry) UsesCustomBounds() bool { return e.useCustomBounds }

// Average returns the mean over the whole buffer.
func (e *Entry) Average() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return stats.Mean(e.data)
}

// AverageWindow returns the mean of length samples starting at start.
func (e *Entry) AverageWindow(start, length int) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.data)
	if start < 0 || start >= n {
		return math.NaN(), fmt.Errorf("%w: start %d not in [0, %d)", ErrOutOfRange, start, n)
	}
	if length <= 0 || length > n {
		return math.NaN(), fmt.Errorf("%w: length %d not in (0, %d]", ErrOutOfRange, length, n)
	}
	return stats.Mean(e.windowLocked(start, length)), nil
}

// Stats summarizes length samples starting at start.
func (e *Entry) Stats(start, length int) stats.Summary {
	return stats.Calculate(e.Window(start, length))
}

// Spectrum returns the magnitude spectrum of length samples starting at
// start, recorded at sampleRate.
func (e *Entry) Spectrum(start, length int, sampleRate float64) (stats.Spectrum, error) {
	return stats.ComputeSpectrum(e.Window(start, length), sampleRate)
}

// EpsilonEquals reports whether other records a signal with the same full
// name and holds the same samples up to epsilon. A nil other never matches.
func (e *Entry) EpsilonEquals(other *Entry, epsilon float64) bool {
	if other == nil {
		return false
	}
	if fullName(e.signal) != fullName(other.signal) {
		return false
	}
	a := e.Data()
	b := other.Data()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nearlyEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func (e *Entry) String() string {
	return fmt.Sprintf("signal: %s, size: %d", e.signal.Name(), e.Len())
}

func (e *Entry) writeAt(index int) {
	v := e.signal.Value()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store(v, index)
}

func (e *Entry) readAt(index int) {
	e.mu.Lock()
	v := e.data[index]
	e.mu.Unlock()
	e.signal.SetValue(v)
}

func (e *Entry) store(v float64, index int) {
	if e.data[index] == v {
		return
	}
	e.data[index] = v
	e.windowValid = false
	if e.current.Update(v) {
		e.boundsChanged = true
	}
}

func (e *Entry) windowLocked(start, length int) []float64 {
	n := len(e.data)
	if n == 0 || length <= 0 {
		return []float64{}
	}
	out := make([]float64, length)
	j := ((start % n) + n) % n
	for i := range out {
		out[i] = e.data[j]
		j++
		if j >= n {
			j = 0
		}
	}
	return out
}

func (e *Entry) clone() *Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Entry{
		signal:          e.signal,
		data:            append([]float64(nil), e.data...),
		current:         e.current,
		boundsDirty:     e.boundsDirty,
		boundsChanged:   e.boundsChanged,
		window:          e.window,
		windowValid:     e.windowValid,
		inverted:        e.inverted,
		useCustomBounds: e.useCustomBounds,
	}
}

func nearlyEqual(a, b, epsilon float64) bool {
	if a == b || (math.IsNaN(a) && math.IsNaN(b)) {
		return true
	}
	return math.Abs(a-b) <= epsilon
}
