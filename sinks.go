package hypersink

import (
	"io"
	"os"
	"sync"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"
)

// StderrSink writes records synchronously to the process error stream.
type StderrSink struct {
	out io.Writer
}

// NewStderrSink creates a sink writing to os.Stderr. If out is non-nil it
// replaces the error stream, which is mainly useful in tests.
func NewStderrSink(out io.Writer) *StderrSink {
	if out == nil {
		out = os.Stderr
	}

	return &StderrSink{out: out}
}

// Output writes the record to the error stream.
func (s *StderrSink) Output(data string) error {
	_, err := io.WriteString(s.out, data)
	if err != nil {
		return ewrap.Wrap(err, "writing to error stream")
	}

	return nil
}

// ColorMode determines how the standard-output sink decides to colorize.
type ColorMode int

const (
	// ColorModeAuto colorizes when standard output looks like a color
	// terminal. The answer is probed once per process and cached.
	ColorModeAuto ColorMode = iota
	// ColorModeAlways forces color output.
	ColorModeAlways
	// ColorModeNever disables color output.
	ColorModeNever
)

// IsValid reports whether the mode is one of the enumerated values.
func (m ColorMode) IsValid() bool {
	return m >= ColorModeAuto && m <= ColorModeNever
}

var (
	stdoutProbeOnce sync.Once
	stdoutIsTTY     bool
)

// stdoutSupportsColor reports whether standard output looked like a color
// terminal the first time any sink asked. The answer is computed once per
// process and reused forever, even if stdout is redirected afterwards.
func stdoutSupportsColor() bool {
	stdoutProbeOnce.Do(func() {
		fd := os.Stdout.Fd()
		stdoutIsTTY = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	})

	return stdoutIsTTY
}

// StdoutSink writes records synchronously to standard output, optionally
// wrapped in color escape or console attribute sequences.
type StdoutSink struct {
	out   io.Writer
	mode  ColorMode
	color Color
}

// NewStdoutSink creates a sink writing to standard output with the given
// color mode and ColorGreen highlighting. If out is non-nil it replaces
// os.Stdout, which is mainly useful in tests.
func NewStdoutSink(out io.Writer, mode ColorMode) *StdoutSink {
	if out == nil {
		out = os.Stdout
	}

	return &StdoutSink{
		out:   out,
		mode:  mode,
		color: ColorGreen,
	}
}

// SetColor changes the highlight color. This is a configuration-time
// operation, serialized by the caller.
func (s *StdoutSink) SetColor(c Color) {
	if c.IsValid() {
		s.color = c
	}
}

// Output writes the record to standard output, colorized when the mode and
// the cached terminal probe allow it.
func (s *StdoutSink) Output(data string) error {
	if s.useColor() {
		return s.writeColored(data)
	}

	_, err := io.WriteString(s.out, data)
	if err != nil {
		return ewrap.Wrap(err, "writing to standard output")
	}

	return nil
}

//nolint:exhaustive // ColorModeAuto is handled as default.
func (s *StdoutSink) useColor() bool {
	if s.color == ColorDefault {
		return false
	}

	switch s.mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default: // ColorModeAuto
		return stdoutSupportsColor()
	}
}

// writeANSI emits the record wrapped in ANSI escape sequences.
func (s *StdoutSink) writeANSI(data string) error {
	_, err := io.WriteString(s.out, s.color.wrap(data))
	if err != nil {
		return ewrap.Wrap(err, "writing to standard output")
	}

	return nil
}

// NullSink discards every record and always succeeds.
type NullSink struct{}

// NewNullSink creates a NullSink.
func NewNullSink() *NullSink {
	return &NullSink{}
}

// Output discards the record.
func (*NullSink) Output(string) error {
	return nil
}
