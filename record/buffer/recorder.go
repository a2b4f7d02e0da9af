package buffer

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/cwbudde/algo-record/record/keypoint"
)

// Recorder keeps the history of a set of signals in entries of equal size
// and drives a shared play/record head over them.
//
// A Recorder is not safe for concurrent use; see the package documentation.
type Recorder struct {
	entries []*Entry
	names   map[string][]*Entry

	size         int
	inPoint      int
	outPoint     int
	currentIndex int
	lockIndex    bool
	// empty is set until the first sample is recorded or the window is set.
	empty bool

	keyPoints  *keypoint.Index
	listeners  []IndexListener
	timeSignal string

	logger *slog.Logger
}

// New returns an empty recorder whose entries will hold size samples.
func New(size int, opts ...Option) (*Recorder, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	r := &Recorder{
		names:     make(map[string][]*Entry),
		size:      size,
		empty:     true,
		keyPoints: keypoint.New(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Size returns the number of samples held by every entry.
func (r *Recorder) Size() int { return r.size }

// InPoint returns the first index of the active window.
func (r *Recorder) InPoint() int { return r.inPoint }

// OutPoint returns the last index of the active window.
func (r *Recorder) OutPoint() int { return r.outPoint }

// CurrentIndex returns the head position.
func (r *Recorder) CurrentIndex() int { return r.currentIndex }

// SetLockIndex locks or unlocks the head. While locked, playback movements
// are ignored; recording still advances.
func (r *Recorder) SetLockIndex(lock bool) { r.lockIndex = lock }

// IndexLocked reports whether the head is locked.
func (r *Recorder) IndexLocked() bool { return r.lockIndex }

// KeyPoints returns the key point index of this recorder. Indices added
// through it directly must lie in [0, Size); AddKeyPoint checks that.
func (r *Recorder) KeyPoints() *keypoint.Index { return r.keyPoints }

// AddKeyPoint adds a key point at index and reports whether it was added.
// An index outside [0, Size) is ignored.
func (r *Recorder) AddKeyPoint(index int) bool {
	if index < 0 || index >= r.size {
		r.logger.Debug("buffer: key point out of range", "index", index, "size", r.size)
		return false
	}
	return r.keyPoints.Add(index)
}

// IsEmpty reports whether nothing has been recorded since the recorder was
// created or cleared.
func (r *Recorder) IsEmpty() bool { return r.empty }

// InOutLength returns the number of samples in the active window, 0 when the
// recorder is empty.
func (r *Recorder) InOutLength() int {
	if r.empty {
		return 0
	}
	if r.outPoint >= r.inPoint {
		return r.outPoint - r.inPoint + 1
	}
	return r.size - (r.inPoint - r.outPoint) + 1
}

// IsIndexBetweenBounds reports whether index lies in the circular window
// [InPoint, OutPoint].
func (r *Recorder) IsIndexBetweenBounds(index int) bool {
	if index < 0 || index >= r.size {
		return false
	}
	if r.inPoint <= r.outPoint {
		return index >= r.inPoint && index <= r.outPoint
	}
	return index <= r.outPoint || index >= r.inPoint
}

// AddEntry registers a prebuilt entry. The entry must hold exactly Size
// samples and its signal must not be registered yet.
func (r *Recorder) AddEntry(e *Entry) error {
	if e == nil || e.signal == nil {
		return ErrNilSignal
	}
	if n := e.Len(); n != r.size {
		return fmt.Errorf("%w: entry %q has %d samples, recorder has %d",
			ErrSizeMismatch, e.signal.Name(), n, r.size)
	}
	if r.Entry(e.signal) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateSignal, fullName(e.signal))
	}
	r.entries = append(r.entries, e)
	key := strings.ToLower(e.signal.Name())
	r.names[key] = append(r.names[key], e)
	return nil
}

// AddSignal creates an entry for s, or returns the existing one.
func (r *Recorder) AddSignal(s Signal) (*Entry, error) {
	if s == nil {
		return nil, ErrNilSignal
	}
	if e := r.Entry(s); e != nil {
		return e, nil
	}
	e, err := NewEntry(s, r.size)
	if err != nil {
		return nil, err
	}
	if err := r.AddEntry(e); err != nil {
		return nil, err
	}
	return e, nil
}

// AddSignals registers every signal, stopping at the first error.
func (r *Recorder) AddSignals(signals ...Signal) error {
	r.entries = slices.Grow(r.entries, len(signals))
	for _, s := range signals {
		if _, err := r.AddSignal(s); err != nil {
			return err
		}
	}
	return nil
}

// RemoveSignal drops the entry of s and returns it, or nil if s is unknown.
func (r *Recorder) RemoveSignal(s Signal) *Entry {
	e := r.Entry(s)
	if e == nil {
		return nil
	}
	r.entries = slices.DeleteFunc(r.entries, func(x *Entry) bool { return x == e })
	key := strings.ToLower(s.Name())
	r.names[key] = slices.DeleteFunc(r.names[key], func(x *Entry) bool { return x == e })
	if len(r.names[key]) == 0 {
		delete(r.names, key)
	}
	return e
}

// Entry returns the entry recording s, or nil.
func (r *Recorder) Entry(s Signal) *Entry {
	for _, e := range r.entries {
		if e.signal == s {
			return e
		}
	}
	return nil
}

// Entries returns the entries in registration order.
func (r *Recorder) Entries() []*Entry {
	return slices.Clone(r.entries)
}

// FilterEntries returns the entries for which keep reports true, in
// registration order.
func (r *Recorder) FilterEntries(keep func(*Entry) bool) []*Entry {
	var out []*Entry
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Signals returns the recorded signals in registration order.
func (r *Recorder) Signals() []Signal {
	out := make([]Signal, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.signal
	}
	return out
}

// FindEntry looks up an entry by short name, or by "namespace.name" where the
// namespace part matches the trailing segments of the signal's namespace.
// Case is ignored. With several matches the first registered one wins.
func (r *Recorder) FindEntry(name string) *Entry {
	matches := r.FindEntries(name)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// FindEntries returns every entry matching name; see FindEntry.
func (r *Recorder) FindEntries(name string) []*Entry {
	namespace, short := splitName(name)
	candidates := r.names[strings.ToLower(short)]
	if namespace == "" {
		return slices.Clone(candidates)
	}
	var out []*Entry
	for _, e := range candidates {
		if namespaceEndsWith(namespaceOf(e.signal), namespace) {
			out = append(out, e)
		}
	}
	return out
}

// HasUniqueSignal reports whether exactly one entry matches name.
func (r *Recorder) HasUniqueSignal(name string) bool {
	return len(r.FindEntries(name)) == 1
}

// Average returns the mean of the samples recorded for s, or NaN when s is
// not recorded.
func (r *Recorder) Average(s Signal) float64 {
	e := r.Entry(s)
	if e == nil {
		return math.NaN()
	}
	return e.Average()
}

// SetTimeSignal selects the entry holding sample times.
func (r *Recorder) SetTimeSignal(name string) error {
	if r.FindEntry(name) == nil {
		r.logger.Error("buffer: time signal does not exist, keeping previous", "name", name, "previous", r.timeSignal)
		return fmt.Errorf("%w: %s", ErrUnknownSignal, name)
	}
	r.timeSignal = name
	return nil
}

// TimeSignal returns the name of the time signal.
func (r *Recorder) TimeSignal() string { return r.timeSignal }

// TimeBuffer returns a copy of the samples of the time signal.
func (r *Recorder) TimeBuffer() ([]float64, error) {
	e := r.FindEntry(r.timeSignal)
	if e == nil {
		return nil, fmt.Errorf("%w: time signal %q", ErrUnknownSignal, r.timeSignal)
	}
	return e.Data(), nil
}

// AddIndexListener registers l to be called after every head movement.
func (r *Recorder) AddIndexListener(l IndexListener) {
	if l != nil {
		r.listeners = append(r.listeners, l)
	}
}

// RemoveIndexListener drops the first registration of l and reports whether
// one was found. Only comparable listeners, such as pointers, can be removed;
// an IndexListenerFunc never matches.
func (r *Recorder) RemoveIndexListener(l IndexListener) bool {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return false
	}
	for i, x := range r.listeners {
		if reflect.TypeOf(x) == reflect.TypeOf(l) && x == l {
			r.listeners = slices.Delete(r.listeners, i, i+1)
			return true
		}
	}
	return false
}

// RemoveIndexListeners drops every index listener.
func (r *Recorder) RemoveIndexListeners() {
	r.listeners = nil
}

// Clear drops every entry, key point and index listener and resets the
// pointers. The size is kept.
func (r *Recorder) Clear() {
	r.inPoint = 0
	r.outPoint = 0
	r.currentIndex = 0
	r.empty = true
	r.entries = nil
	r.names = make(map[string][]*Entry)
	r.keyPoints.Clear()
	r.listeners = nil
}

// ClearBuffers replaces every entry's samples with size zeros and resets the
// pointers and key points.
func (r *Recorder) ClearBuffers(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	for _, e := range r.entries {
		e.reset(size)
	}
	r.size = size
	r.inPoint = 0
	r.outPoint = 0
	r.currentIndex = 0
	r.empty = true
	r.keyPoints.Clear()
	return nil
}

// Fill sets every sample of every entry to its signal's current value.
func (r *Recorder) Fill() {
	for _, e := range r.entries {
		e.fill()
	}
}

// Clone returns a deep copy of the samples, pointers and key points. Signals
// are shared; listeners are not copied.
func (r *Recorder) Clone() *Recorder {
	c := &Recorder{
		names:        make(map[string][]*Entry),
		size:         r.size,
		inPoint:      r.inPoint,
		outPoint:     r.outPoint,
		currentIndex: r.currentIndex,
		lockIndex:    r.lockIndex,
		empty:        r.empty,
		keyPoints:    keypoint.New(),
		timeSignal:   r.timeSignal,
		logger:       r.logger,
	}
	for _, e := range r.entries {
		ce := e.clone()
		c.entries = append(c.entries, ce)
		key := strings.ToLower(ce.signal.Name())
		c.names[key] = append(c.names[key], ce)
	}
	for _, p := range r.keyPoints.Points() {
		c.keyPoints.Add(p)
	}
	c.keyPoints.SetEnabled(r.keyPoints.Enabled())
	return c
}

// EpsilonEquals reports whether other records the same signals, matched by
// full name, with the same active window contents up to epsilon. Windows are
// compared from their respective in points.
func (r *Recorder) EpsilonEquals(other *Recorder, epsilon float64) bool {
	if len(r.entries) != len(other.entries) {
		return false
	}
	length := r.InOutLength()
	if length != other.InOutLength() {
		return false
	}
	for _, oe := range other.entries {
		e := r.FindEntry(fullName(oe.signal))
		if e == nil {
			return false
		}
		a := e.Window(r.inPoint, length)
		b := oe.Window(other.inPoint, length)
		for i := range a {
			if !nearlyEqual(a[i], b[i], epsilon) {
				return false
			}
		}
	}
	return true
}

func (r *Recorder) String() string {
	return fmt.Sprintf("signals: %d, size: %d, in: %d, out: %d, current: %d",
		len(r.entries), r.size, r.inPoint, r.outPoint, r.currentIndex)
}
