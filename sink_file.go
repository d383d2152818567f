package hypersink

import (
	"encoding/binary"
	"os"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hypersink/internal/utils"
)

// FileState tracks the lifecycle of a FileSink's backing file. Transitions
// only run forward: Unopened to Open, or Unopened to Failed. Failed is
// terminal.
type FileState uint8

const (
	// FileUnopened means no open attempt has been made yet.
	FileUnopened FileState = iota
	// FileOpen means the backing file is open for appending.
	FileOpen
	// FileFailed means the open attempt failed. The state is sticky: every
	// later Output fails identically without retrying the open.
	FileFailed
)

// String returns the state's name.
func (s FileState) String() string {
	switch s {
	case FileUnopened:
		return "unopened"
	case FileOpen:
		return "open"
	case FileFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// nativeLittleEndian reports the byte order of the host.
var nativeLittleEndian = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// FileSink appends records to a file. The file is opened lazily in
// append/binary mode on the first Output call; a byte-order marker is
// written only when the file did not previously exist.
//
// FileSink holds no lock of its own: the owning Target's delivery lock
// serializes all calls.
type FileSink struct {
	path     string
	charUnit int
	state    FileState
	file     *os.File
	openErr  error
}

// FileOption configures a FileSink at construction time.
type FileOption func(s *FileSink)

// WithCharUnit sets the character-unit width recorded in the byte-order
// marker of newly created files. Valid widths are 1 (no marker), 2 and 4.
func WithCharUnit(width int) FileOption {
	return func(s *FileSink) {
		s.charUnit = width
	}
}

// NewFileSink creates a sink appending to path. The path is normalized and
// checked for traversal sequences; the file itself is not touched until the
// first Output call.
func NewFileSink(path string, opts ...FileOption) (*FileSink, error) {
	sanitized, err := utils.SanitizePath(path)
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid log file path")
	}

	s := &FileSink{
		path:     sanitized,
		charUnit: DefaultCharUnit,
		state:    FileUnopened,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.charUnit != 1 && s.charUnit != 2 && s.charUnit != 4 {
		return nil, ewrap.New("invalid character unit width").
			WithMetadata("width", s.charUnit)
	}

	return s, nil
}

// Path returns the sink's normalized file path.
func (s *FileSink) Path() string {
	return s.path
}

// State returns the sink's lifecycle state.
func (s *FileSink) State() FileState {
	return s.state
}

// Output appends the record to the backing file, opening it first when
// needed. Once an open attempt has failed, every call returns the same
// error without touching the filesystem again.
func (s *FileSink) Output(data string) error {
	switch s.state {
	case FileFailed:
		return s.openErr
	case FileUnopened:
		err := s.open()
		if err != nil {
			return err
		}
	case FileOpen:
	}

	return s.write([]byte(data))
}

// open attempts the one and only open of the backing file. On failure the
// sink moves to FileFailed and keeps the error for all later calls.
func (s *FileSink) open() error {
	_, statErr := os.Stat(s.path)
	existed := statErr == nil

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, DefaultFilePerm)
	if err != nil {
		s.state = FileFailed
		s.openErr = ewrap.Wrap(err, "opening log file").
			WithMetadata("path", s.path)

		return s.openErr
	}

	s.file = file
	s.state = FileOpen

	if !existed {
		err = s.writeByteOrderMark()
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *FileSink) write(p []byte) error {
	n, err := s.file.Write(p)
	if err != nil {
		return ewrap.Wrap(err, "writing to log file").
			WithMetadata("path", s.path)
	}

	if n != len(p) {
		return ErrWriteMismatch
	}

	return nil
}

// writeByteOrderMark emits the marker identifying the endianness and width
// of the file's character units. Single-byte units carry no marker.
func (s *FileSink) writeByteOrderMark() error {
	var mark []byte

	switch s.charUnit {
	case 2:
		if nativeLittleEndian {
			mark = []byte{0xFF, 0xFE}
		} else {
			mark = []byte{0xFE, 0xFF}
		}
	case 4:
		if nativeLittleEndian {
			mark = []byte{0xFF, 0xFE, 0x00, 0x00}
		} else {
			mark = []byte{0x00, 0x00, 0xFE, 0xFF}
		}
	default:
		return nil
	}

	return s.write(mark)
}

// Close releases the backing file, if one was opened. The sink is not
// reusable afterwards.
func (s *FileSink) Close() error {
	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	if err != nil {
		return ewrap.Wrap(err, "closing log file").
			WithMetadata("path", s.path)
	}

	return nil
}
