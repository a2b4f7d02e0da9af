// Package buffer records the history of scalar signals into fixed-capacity
// circular buffers and plays it back.
//
// A Recorder owns one Entry per registered Signal, all sharing one size. It
// keeps a play/record head (the current index) and an active window
// delimited by the in point and out point. The window is circular: an out
// point smaller than the in point means the window wraps around the end of
// the buffers.
//
// Recording with TickAndRecord advances the head and pulls every signal's
// value into its entry, overwriting the oldest sample once the buffers are
// full. Playback with Tick and SetCurrentIndex moves the head inside the
// window and pushes the stored values back into the signals.
//
// The window can be reshaped with PackFrom, Crop, Cut, Thin and Resize. These
// operations apply to every entry at once so that all entries keep the same
// size. A reshape with an invalid range is skipped and reported through its
// boolean result rather than an error.
//
// # Concurrency
//
// Each Entry guards its samples and bounds with its own mutex, so a single
// recording goroutine may run alongside readers that query values, windows
// and bounds. Everything else, including reshaping, key point edits and
// listener registration, must be serialized by the caller. Listeners run
// synchronously on the calling goroutine and must not reshape the recorder
// from inside the callback.
package buffer
