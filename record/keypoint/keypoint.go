package keypoint

import "slices"

// Change describes one mutation of an Index.
type Change struct {
	// Toggled is set when the enabled flag flipped.
	Toggled bool
	// Enabled is the value of the enabled flag after the change.
	Enabled bool
	Added   []int
	Removed []int
}

// Listener is notified of every change to an Index.
//
// Listeners run synchronously on the goroutine that mutated the index, in
// registration order. A listener must not mutate the index it observes.
type Listener interface {
	KeyPointsChanged(Change)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Change)

// KeyPointsChanged calls f(c).
func (f ListenerFunc) KeyPointsChanged(c Change) { f(c) }

// Index is a sorted, duplicate-free set of buffer indices.
//
// The zero value is an empty, disabled index ready for use.
type Index struct {
	enabled   bool
	points    []int
	listeners []Listener
}

// New returns an empty Index.
func New() *Index {
	return &Index{}
}

// AddListener registers l.
func (x *Index) AddListener(l Listener) {
	if l == nil {
		return
	}
	x.listeners = append(x.listeners, l)
}

// RemoveListeners drops every registered listener.
func (x *Index) RemoveListeners() {
	x.listeners = nil
}

// Enabled returns the enabled flag. The flag is informational only.
func (x *Index) Enabled() bool {
	return x.enabled
}

// ToggleEnabled flips the enabled flag.
func (x *Index) ToggleEnabled() {
	x.enabled = !x.enabled
	x.notify(Change{Toggled: true, Enabled: x.enabled})
}

// SetEnabled sets the enabled flag, notifying only if it changes.
func (x *Index) SetEnabled(enabled bool) {
	if enabled != x.enabled {
		x.ToggleEnabled()
	}
}

// Toggle removes index if present, otherwise inserts it. It reports whether
// the index was added.
func (x *Index) Toggle(index int) bool {
	pos, found := slices.BinarySearch(x.points, index)
	if found {
		x.points = slices.Delete(x.points, pos, pos+1)
		x.notify(Change{Enabled: x.enabled, Removed: []int{index}})
		return false
	}
	x.points = slices.Insert(x.points, pos, index)
	x.notify(Change{Enabled: x.enabled, Added: []int{index}})
	return true
}

// Add inserts index if absent and reports whether it was inserted. The index
// does not know the buffer size, so callers keep index in range.
func (x *Index) Add(index int) bool {
	pos, found := slices.BinarySearch(x.points, index)
	if found {
		return false
	}
	x.points = slices.Insert(x.points, pos, index)
	x.notify(Change{Enabled: x.enabled, Added: []int{index}})
	return true
}

// Remove deletes index if present and reports whether it was removed.
func (x *Index) Remove(index int) bool {
	pos, found := slices.BinarySearch(x.points, index)
	if !found {
		return false
	}
	x.points = slices.Delete(x.points, pos, pos+1)
	x.notify(Change{Enabled: x.enabled, Removed: []int{index}})
	return true
}

// Contains reports whether index is a key point.
func (x *Index) Contains(index int) bool {
	_, found := slices.BinarySearch(x.points, index)
	return found
}

// Next returns the smallest key point strictly greater than from, wrapping to
// the smallest key point overall. It returns from when the index is empty.
func (x *Index) Next(from int) int {
	if len(x.points) == 0 {
		return from
	}
	for _, p := range x.points {
		if p > from {
			return p
		}
	}
	return x.points[0]
}

// Previous returns the largest key point strictly less than from, wrapping to
// the largest key point overall. It returns from when the index is empty.
func (x *Index) Previous(from int) int {
	if len(x.points) == 0 {
		return from
	}
	for i := len(x.points) - 1; i >= 0; i-- {
		if x.points[i] < from {
			return x.points[i]
		}
	}
	return x.points[len(x.points)-1]
}

// Trim removes every key point outside [start, end]. The interval is linear
// when start <= end and circular otherwise, in which case points >= start or
// <= end are kept.
func (x *Index) Trim(start, end int) {
	keep := func(p int) bool {
		if start <= end {
			return p >= start && p <= end
		}
		return p >= start || p <= end
	}

	var removed []int
	kept := x.points[:0]
	for _, p := range x.points {
		if keep(p) {
			kept = append(kept, p)
		} else {
			removed = append(removed, p)
		}
	}
	x.points = kept

	if len(removed) > 0 {
		x.notify(Change{Enabled: x.enabled, Removed: removed})
	}
}

// Remap moves every key point p to f(p), dropping it when f reports false.
// Collisions collapse into one point. A single Change lists the points that
// disappeared and the ones that appeared.
func (x *Index) Remap(f func(p int) (int, bool)) {
	var mapped []int
	for _, p := range x.points {
		if q, ok := f(p); ok {
			mapped = append(mapped, q)
		}
	}
	slices.Sort(mapped)
	mapped = slices.Compact(mapped)

	var added, removed []int
	for _, p := range x.points {
		if _, found := slices.BinarySearch(mapped, p); !found {
			removed = append(removed, p)
		}
	}
	for _, q := range mapped {
		if _, found := slices.BinarySearch(x.points, q); !found {
			added = append(added, q)
		}
	}
	x.points = mapped

	if len(added) > 0 || len(removed) > 0 {
		x.notify(Change{Enabled: x.enabled, Added: added, Removed: removed})
	}
}

// Clear removes every key point.
func (x *Index) Clear() {
	if len(x.points) == 0 {
		return
	}
	removed := x.points
	x.points = nil
	x.notify(Change{Enabled: x.enabled, Removed: removed})
}

// Points returns a copy of the key points in ascending order.
func (x *Index) Points() []int {
	return slices.Clone(x.points)
}

// Len returns the number of key points.
func (x *Index) Len() int {
	return len(x.points)
}

func (x *Index) notify(c Change) {
	for _, l := range x.listeners {
		l.KeyPointsChanged(c)
	}
}
