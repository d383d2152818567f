package hypersink

import (
	"strconv"
	"strings"
)

// Formatter renders a classified event into the string a Target delivers.
// The target is passed so formatters can vary their output per destination.
type Formatter interface {
	Format(ev *Event, target *Target) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(ev *Event, target *Target) string

// Format calls the wrapped function.
func (f FormatterFunc) Format(ev *Event, target *Target) string {
	return f(ev, target)
}

// TextFormatter is the default formatter. It renders events as a single
// newline-terminated line:
//
//	file:line: LEVEL: group: category: message
//
// with the call-site, group and category segments omitted when empty.
type TextFormatter struct{}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format renders the event as a text line.
func (*TextFormatter) Format(ev *Event, _ *Target) string {
	var sb strings.Builder

	if ev.File != "" {
		sb.WriteString(ev.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(ev.Line))
		sb.WriteString(": ")
	}

	sb.WriteString(ev.Level.String())
	sb.WriteString(": ")

	if ev.Group != "" {
		sb.WriteString(ev.Group)
		sb.WriteString(": ")
	}

	if ev.Category != "" {
		sb.WriteString(ev.Category)
		sb.WriteString(": ")
	}

	sb.WriteString(ev.Message)
	sb.WriteByte('\n')

	return sb.String()
}
