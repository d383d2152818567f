//go:build !windows

package hypersink

// writeColored emits the record wrapped in ANSI escape sequences. There is
// no console attribute facility outside Windows.
func (s *StdoutSink) writeColored(data string) error {
	return s.writeANSI(data)
}
