package hypersink

import (
	"github.com/hyp3rd/ewrap"
)

// Common errors for the delivery layer.
var (
	// ErrTargetClosed is returned when delivering to a closed target.
	ErrTargetClosed = ewrap.New("target is closed")

	// ErrWriteMismatch is returned when the byte count written to a file
	// differs from the byte count requested. The write is not retried.
	ErrWriteMismatch = ewrap.New("short write to log file")

	// ErrFrameTooLarge is returned when a single insert exceeds the buffer's
	// total capacity even when the arena is empty. The buffer is unchanged.
	ErrFrameTooLarge = ewrap.New("frame larger than buffer capacity")

	// ErrNoTarget is returned by a buffer's Dump when no inner target is
	// attached. Buffered frames are preserved for a later dump.
	ErrNoTarget = ewrap.New("no target attached to buffer")

	// ErrBufferClosed is returned when inserting into a buffer whose arena
	// has been released.
	ErrBufferClosed = ewrap.New("buffer is closed")
)
