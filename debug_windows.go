//go:build windows

package hypersink

import (
	"unsafe"

	"github.com/hyp3rd/ewrap"
	"golang.org/x/sys/windows"
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procOutputDebugStringW = kernel32.NewProc("OutputDebugStringW")
)

// DebugSink forwards records to the Windows debug-output facility
// (OutputDebugStringW), where an attached debugger can observe them.
type DebugSink struct{}

// NewDebugSink creates a DebugSink.
func NewDebugSink() *DebugSink {
	return &DebugSink{}
}

// Output forwards the record to OutputDebugStringW.
func (*DebugSink) Output(data string) error {
	ptr, err := windows.UTF16PtrFromString(data)
	if err != nil {
		return ewrap.Wrap(err, "encoding debug output string")
	}

	//nolint:errcheck // OutputDebugStringW has no failure mode to report.
	procOutputDebugStringW.Call(uintptr(unsafe.Pointer(ptr)))

	return nil
}
