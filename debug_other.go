//go:build !windows

package hypersink

// DebugSink forwards records to a platform debug-output facility. This
// platform has none, so Output is a successful no-op.
type DebugSink struct{}

// NewDebugSink creates a DebugSink.
func NewDebugSink() *DebugSink {
	return &DebugSink{}
}

// Output discards the record.
func (*DebugSink) Output(string) error {
	return nil
}
