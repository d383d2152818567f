package hypersink

import (
	"encoding/binary"
	"strconv"

	"github.com/hyp3rd/ewrap"
)

// frameHeaderSize is the size in bytes of a frame's length prefix: one
// native machine word.
const frameHeaderSize = strconv.IntSize / 8

// putFrameLen stores a frame length prefix in native byte order.
func putFrameLen(dst []byte, n int) {
	if frameHeaderSize == 8 {
		binary.NativeEndian.PutUint64(dst, uint64(n))
	} else {
		binary.NativeEndian.PutUint32(dst, uint32(n))
	}
}

// frameLen reads a frame length prefix in native byte order.
func frameLen(src []byte) int {
	if frameHeaderSize == 8 {
		return int(binary.NativeEndian.Uint64(src))
	}

	return int(binary.NativeEndian.Uint32(src))
}

// Buffer accumulates outgoing records in a fixed-capacity arena and flushes
// them to a wrapped Target. Each record is stored as a frame: a native-word
// length prefix followed by the raw bytes and one trailing sentinel byte.
// The stored length is the logical length plus one, counting the sentinel;
// reconstruction strips it again. Frames are laid out contiguously with no
// padding between them.
//
// Buffer implements Sink, so it can stand in for any direct sink and wrap
// an inner Target interchangeably. It carries no lock of its own: when used
// as a Target's sink it is serialized by that target's delivery lock, and
// Dump takes the inner target's delivery lock for the duration of the flush.
type Buffer struct {
	arena  []byte
	cursor int
	target *Target
}

// NewBuffer allocates an arena of capacity bytes flushing to target. The
// target may be nil and attached later with SetTarget; frames buffered in
// the meantime are preserved. The capacity must hold at least one empty
// frame.
func NewBuffer(capacity int, target *Target) (*Buffer, error) {
	if capacity <= frameHeaderSize+1 {
		return nil, ewrap.New("buffer capacity too small for a single frame").
			WithMetadata("capacity", capacity)
	}

	return &Buffer{
		arena:  make([]byte, capacity),
		target: target,
	}, nil
}

// SetTarget rebinds the inner target without touching buffered content.
func (b *Buffer) SetTarget(t *Target) {
	b.target = t
}

// Len returns the number of arena bytes occupied by buffered frames.
func (b *Buffer) Len() int {
	return b.cursor
}

// Cap returns the arena capacity in bytes.
func (b *Buffer) Cap() int {
	return len(b.arena)
}

// Insert frames data and appends it to the arena. When the frame would
// overrun the arena end, a single Dump reclaims space first. A frame that
// cannot fit even in an empty arena is rejected with ErrFrameTooLarge, with
// no partial frame written; the caller is expected to size the buffer up,
// not to retry.
func (b *Buffer) Insert(data string) error {
	if b.arena == nil {
		return ErrBufferClosed
	}

	framed := frameHeaderSize + len(data) + 1

	if b.cursor+framed > len(b.arena) {
		err := b.Dump()
		if err != nil {
			if framed > len(b.arena) {
				return ErrFrameTooLarge
			}

			return err
		}
	}

	if framed > len(b.arena) {
		return ErrFrameTooLarge
	}

	putFrameLen(b.arena[b.cursor:], len(data)+1)
	copy(b.arena[b.cursor+frameHeaderSize:], data)
	b.arena[b.cursor+framed-1] = 0x00
	b.cursor += framed

	return nil
}

// Dump flushes buffered frames to the inner target in insertion order.
// Without a target it returns ErrNoTarget and leaves the arena untouched,
// so the frames survive for a later dump.
//
// The flush runs under the inner target's delivery lock, the same lock its
// Receive uses, keeping buffered flushes and direct deliveries from
// interleaving mid-write. On the first delivery failure Dump aborts with
// that error and the write cursor is left unchanged; the next Dump walks
// the arena from the start again, so frames delivered before the failure
// are redelivered rather than lost.
func (b *Buffer) Dump() error {
	if b.target == nil {
		return ErrNoTarget
	}

	b.target.mu.Lock()
	defer b.target.mu.Unlock()

	pos := 0
	for pos < b.cursor {
		stored := frameLen(b.arena[pos:])
		pos += frameHeaderSize

		// Drop the trailing sentinel unit on reconstruction.
		data := string(b.arena[pos : pos+stored-1])

		err := b.target.outputLocked(data)
		if err != nil {
			return err
		}

		pos += stored
	}

	b.cursor = 0

	return nil
}

// Output inserts data into the arena, making the buffer itself conform to
// the Sink contract.
func (b *Buffer) Output(data string) error {
	return b.Insert(data)
}

// Close flushes any buffered frames to the inner target and releases the
// arena. A failing final dump is reported, not retried: the buffer is being
// torn down. Close is idempotent.
func (b *Buffer) Close() error {
	if b.arena == nil {
		return nil
	}

	var err error
	if b.cursor > 0 {
		err = b.Dump()
	}

	b.arena = nil
	b.cursor = 0
	b.target = nil

	return err
}
