//go:build windows

package hypersink

import (
	"io"
	"os"

	"github.com/hyp3rd/ewrap"
	"golang.org/x/sys/windows"
)

// writeColored sets and restores a console text attribute around the write
// instead of emitting escape bytes. When the sink does not write to the real
// console (redirected output, injected writer), it falls back to ANSI.
func (s *StdoutSink) writeColored(data string) error {
	f, ok := s.out.(*os.File)
	if !ok || f != os.Stdout {
		return s.writeANSI(data)
	}

	handle := windows.Handle(f.Fd())

	var info windows.ConsoleScreenBufferInfo

	err := windows.GetConsoleScreenBufferInfo(handle, &info)
	if err != nil {
		// Not a console after all.
		return s.writeANSI(data)
	}

	err = windows.SetConsoleTextAttribute(handle, consoleAttribute(s.color)|windows.FOREGROUND_INTENSITY)
	if err != nil {
		return ewrap.Wrap(err, "setting console text attribute")
	}

	_, writeErr := io.WriteString(s.out, data)

	err = windows.SetConsoleTextAttribute(handle, info.Attributes)
	if err != nil && writeErr == nil {
		return ewrap.Wrap(err, "restoring console text attribute")
	}

	if writeErr != nil {
		return ewrap.Wrap(writeErr, "writing to standard output")
	}

	return nil
}

// consoleAttribute returns the console character attribute for the color.
func consoleAttribute(c Color) uint16 {
	switch c {
	case ColorRed:
		return windows.FOREGROUND_RED
	case ColorGreen:
		return windows.FOREGROUND_GREEN
	case ColorYellow:
		return windows.FOREGROUND_RED | windows.FOREGROUND_GREEN
	default:
		return 0
	}
}
