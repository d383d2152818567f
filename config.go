package hypersink

import (
	"os"
	"strings"

	"github.com/hyp3rd/ewrap"
)

const (
	// DefaultBufferCapacity is the default arena size for a batching buffer.
	DefaultBufferCapacity = 4096
	// DefaultFilePerm is the permission mode for newly created log files.
	DefaultFilePerm os.FileMode = 0o644
	// DefaultCharUnit is the character-unit width assumed for log files.
	// Width 1 writes no byte-order marker.
	DefaultCharUnit = 1
)

// SinkKind selects the concrete sink variant for a built target.
type SinkKind string

const (
	// SinkStderr writes to the process error stream.
	SinkStderr SinkKind = "stderr"
	// SinkStdout writes to standard output with optional color.
	SinkStdout SinkKind = "stdout"
	// SinkDebug forwards to the platform debug facility.
	SinkDebug SinkKind = "debug"
	// SinkFile appends to a file.
	SinkFile SinkKind = "file"
	// SinkNull discards everything.
	SinkNull SinkKind = "null"
)

// IsValid reports whether the kind is one of the enumerated variants.
func (k SinkKind) IsValid() bool {
	switch k {
	case SinkStderr, SinkStdout, SinkDebug, SinkFile, SinkNull:
		return true
	default:
		return false
	}
}

// ParseSinkKind parses a sink kind name.
func ParseSinkKind(s string) (SinkKind, error) {
	kind := SinkKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", ewrap.New("unknown sink kind").WithMetadata("kind", s)
	}

	return kind, nil
}

// ParseColorMode parses a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorModeAuto, nil
	case "always":
		return ColorModeAlways, nil
	case "never":
		return ColorModeNever, nil
	default:
		return ColorModeAuto, ewrap.New("unknown color mode").WithMetadata("mode", s)
	}
}

// ParseColor parses a color name.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return ColorDefault, nil
	case "red":
		return ColorRed, nil
	case "green":
		return ColorGreen, nil
	case "yellow":
		return ColorYellow, nil
	default:
		return ColorDefault, ewrap.New("unknown color").WithMetadata("color", s)
	}
}

// Config describes one delivery pipeline: a sink variant, its settings, and
// an optional batching buffer in front of it.
type Config struct {
	// Sink selects the destination variant.
	Sink SinkKind
	// ColorMode governs the stdout sink's colorization decision.
	ColorMode ColorMode
	// Color is the stdout sink's highlight color.
	Color Color
	// FilePath is the backing file for the file sink.
	FilePath string
	// CharUnit is the character-unit width recorded in the byte-order
	// marker of newly created log files (1, 2 or 4; 1 writes no marker).
	CharUnit int
	// Buffered wraps the sink's target with a batching buffer.
	Buffered bool
	// BufferCapacity is the buffer's arena size in bytes when Buffered is set.
	BufferCapacity int
}

// DefaultConfig returns a configuration delivering unbuffered records to the
// error stream.
func DefaultConfig() Config {
	return Config{
		Sink:           SinkStderr,
		ColorMode:      ColorModeAuto,
		Color:          ColorGreen,
		CharUnit:       DefaultCharUnit,
		BufferCapacity: DefaultBufferCapacity,
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if !c.Sink.IsValid() {
		return ewrap.New("unknown sink kind").WithMetadata("kind", string(c.Sink))
	}

	if !c.ColorMode.IsValid() {
		return ewrap.New("unknown color mode").WithMetadata("mode", int(c.ColorMode))
	}

	if !c.Color.IsValid() {
		return ewrap.New("unknown color").WithMetadata("color", int(c.Color))
	}

	if c.Sink == SinkFile && c.FilePath == "" {
		return ewrap.New("file sink requires a path")
	}

	if c.CharUnit != 1 && c.CharUnit != 2 && c.CharUnit != 4 {
		return ewrap.New("invalid character unit width").
			WithMetadata("width", c.CharUnit)
	}

	if c.Buffered && c.BufferCapacity <= frameHeaderSize+1 {
		return ewrap.New("buffer capacity too small for a single frame").
			WithMetadata("capacity", c.BufferCapacity)
	}

	return nil
}
