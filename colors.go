package hypersink

// Color identifies the highlight applied by the standard-output sink.
// On color-capable terminals the record is wrapped in "\x1b[0;3<n>m" and
// "\x1b[m", where <n> is 1 for red, 2 for green and 3 for yellow.
type Color int

const (
	// ColorDefault leaves the record unstyled.
	ColorDefault Color = iota
	// ColorRed highlights the record in red.
	ColorRed
	// ColorGreen highlights the record in green.
	ColorGreen
	// ColorYellow highlights the record in yellow.
	ColorYellow
)

// colorReset resets the terminal to its default attributes.
const colorReset = "\x1b[m"

// String returns the color's name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorDefault:
		return "default"
	default:
		return "unknown"
	}
}

// IsValid reports whether the color is one of the enumerated values.
func (c Color) IsValid() bool {
	return c >= ColorDefault && c <= ColorYellow
}

// start returns the ANSI escape sequence that begins this color, or the
// empty string for ColorDefault.
func (c Color) start() string {
	switch c {
	case ColorRed:
		return "\x1b[0;31m"
	case ColorGreen:
		return "\x1b[0;32m"
	case ColorYellow:
		return "\x1b[0;33m"
	default:
		return ""
	}
}

// wrap surrounds data with this color's escape sequences. ColorDefault
// returns data unchanged.
func (c Color) wrap(data string) string {
	start := c.start()
	if start == "" {
		return data
	}

	return start + data + colorReset
}
