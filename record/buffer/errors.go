package buffer

import "errors"

var (
	// ErrInvalidSize is returned for a non-positive buffer size.
	ErrInvalidSize = errors.New("buffer: size must be > 0")
	// ErrSizeMismatch is returned when an entry does not match the recorder size.
	ErrSizeMismatch = errors.New("buffer: entry size does not match recorder size")
	// ErrNilSignal is returned when a nil signal or entry is registered.
	ErrNilSignal = errors.New("buffer: nil signal")
	// ErrNilProcessor is returned by RunProcessor for a nil processor.
	ErrNilProcessor = errors.New("buffer: nil processor")
	// ErrDuplicateSignal is returned when a signal already has an entry.
	ErrDuplicateSignal = errors.New("buffer: signal already registered")
	// ErrUnknownSignal is returned when a name does not match any entry.
	ErrUnknownSignal = errors.New("buffer: unknown signal")
	// ErrIndexLocked is returned by operations that need to move a locked head.
	ErrIndexLocked = errors.New("buffer: index is locked")
	// ErrOutOfRange is returned for a window outside the buffer.
	ErrOutOfRange = errors.New("buffer: window out of range")
)
