// Package signal provides recordable variables and deterministic waveform
// generators to feed them.
//
// A *Variable satisfies buffer.Signal and buffer.Namespaced; wrap it with
// NewRanged to give it a display range.
package signal
