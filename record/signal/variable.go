package signal

import (
	"math"
	"sync/atomic"
)

// Variable is a named scalar that can be recorded by a buffer.Recorder.
//
// Value and SetValue are safe for concurrent use, so a simulation goroutine
// may update a Variable while a recorder or a display reads it.
type Variable struct {
	name      string
	namespace string
	bits      atomic.Uint64
}

// NewVariable returns a Variable called name in the dot-separated namespace.
// namespace may be empty.
func NewVariable(namespace, name string) *Variable {
	return &Variable{name: name, namespace: namespace}
}

// Name returns the short name.
func (v *Variable) Name() string { return v.name }

// Namespace returns the namespace, possibly empty.
func (v *Variable) Namespace() string { return v.namespace }

// FullName returns "namespace.name", or just the name without a namespace.
func (v *Variable) FullName() string {
	if v.namespace == "" {
		return v.name
	}
	return v.namespace + "." + v.name
}

// Value returns the current value.
func (v *Variable) Value() float64 {
	return math.Float64frombits(v.bits.Load())
}

// SetValue replaces the current value.
func (v *Variable) SetValue(x float64) {
	v.bits.Store(math.Float64bits(x))
}

func (v *Variable) String() string {
	return v.FullName()
}

// Ranged is a Variable with a fixed display range, used by
// buffer.Entry.CustomBounds.
type Ranged struct {
	*Variable
	lower, upper float64
}

// NewRanged attaches the display range [lower, upper] to v. The bounds are
// swapped if given in the wrong order.
func NewRanged(v *Variable, lower, upper float64) *Ranged {
	if lower > upper {
		lower, upper = upper, lower
	}
	return &Ranged{Variable: v, lower: lower, upper: upper}
}

// Range returns the display range.
func (r *Ranged) Range() (lower, upper float64) {
	return r.lower, r.upper
}
