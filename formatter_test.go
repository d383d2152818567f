package hypersink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFormatterFormat(t *testing.T) {
	formatter := NewTextFormatter()

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "message only",
			event: Event{Level: InfoLevel, Message: "ready"},
			want:  "INFO: ready\n",
		},
		{
			name: "group and category",
			event: Event{
				Level:    WarnLevel,
				Group:    "net",
				Category: "dial",
				Message:  "slow handshake",
			},
			want: "WARN: net: dial: slow handshake\n",
		},
		{
			name: "call site",
			event: Event{
				Level:   ErrorLevel,
				Message: "broken",
				File:    "server.go",
				Line:    42,
			},
			want: "server.go:42: ERROR: broken\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.Format(&tt.event, nil))
		})
	}
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc(func(ev *Event, _ *Target) string {
		return "<" + ev.Message + ">"
	})

	assert.Equal(t, "<x>", f.Format(&Event{Message: "x"}, nil))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "TRACE", TraceLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
	assert.True(t, DebugLevel.IsValid())
	assert.False(t, Level(99).IsValid())
}
