package buffer

import "strings"

// Signal is the live value recorded by an Entry.
//
// The recorder never owns a signal. Signals are compared by identity, so
// implementations should be pointer types.
type Signal interface {
	// Name returns the short name used for lookups. Lookups ignore case.
	Name() string
	Value() float64
	SetValue(v float64)
}

// Namespaced is implemented by signals living in a dot-separated namespace.
type Namespaced interface {
	Namespace() string
}

// Ranged is implemented by signals with a user-defined display range.
type Ranged interface {
	Range() (lower, upper float64)
}

// Processor rewrites the recorded window one sample at a time.
//
// Process is called with the head at current and every signal holding the
// value stored there; whatever the signals hold when Process returns is
// written back.
type Processor interface {
	Initialize(r *Recorder)
	// GoForward reports whether the window is traversed from the in point
	// to the out point.
	GoForward() bool
	Process(boundA, boundB, current int)
}

// IndexListener is notified whenever the head moves.
type IndexListener interface {
	IndexChanged(index int)
}

// IndexListenerFunc adapts a function to IndexListener.
type IndexListenerFunc func(index int)

// IndexChanged calls f(index).
func (f IndexListenerFunc) IndexChanged(index int) { f(index) }

func namespaceOf(s Signal) string {
	if ns, ok := s.(Namespaced); ok {
		return ns.Namespace()
	}
	return ""
}

func fullName(s Signal) string {
	ns := namespaceOf(s)
	if ns == "" {
		return s.Name()
	}
	return ns + "." + s.Name()
}

// namespaceEndsWith reports whether namespace ends with the dot-separated
// segments of ending, ignoring case.
func namespaceEndsWith(namespace, ending string) bool {
	namespace = strings.ToLower(namespace)
	ending = strings.ToLower(ending)
	if namespace == ending {
		return true
	}
	return strings.HasSuffix(namespace, "."+ending)
}

// splitName splits "a.b.name" into ("a.b", "name").
func splitName(name string) (namespace, short string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}
