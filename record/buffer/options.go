package buffer

import "log/slog"

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger used for skipped operations and inconsistencies.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLockedIndex starts the recorder with its head locked.
func WithLockedIndex(locked bool) Option {
	return func(r *Recorder) {
		r.lockIndex = locked
	}
}

// WithTimeSignal names the signal holding the time of each sample. The name
// is resolved lazily by TimeBuffer.
func WithTimeSignal(name string) Option {
	return func(r *Recorder) {
		r.timeSignal = name
	}
}
