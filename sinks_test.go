package hypersink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStderrSinkWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewStderrSink(buf)

	require.NoError(t, sink.Output("boom\n"))
	assert.Equal(t, "boom\n", buf.String())
}

func TestStdoutSinkColorModes(t *testing.T) {
	tests := []struct {
		name  string
		mode  ColorMode
		color Color
		input string
		want  string
	}{
		{
			name:  "always red",
			mode:  ColorModeAlways,
			color: ColorRed,
			input: "alert",
			want:  "\x1b[0;31malert\x1b[m",
		},
		{
			name:  "always green",
			mode:  ColorModeAlways,
			color: ColorGreen,
			input: "ok",
			want:  "\x1b[0;32mok\x1b[m",
		},
		{
			name:  "always yellow",
			mode:  ColorModeAlways,
			color: ColorYellow,
			input: "careful",
			want:  "\x1b[0;33mcareful\x1b[m",
		},
		{
			name:  "always with default color stays plain",
			mode:  ColorModeAlways,
			color: ColorDefault,
			input: "plain",
			want:  "plain",
		},
		{
			name:  "never",
			mode:  ColorModeNever,
			color: ColorRed,
			input: "plain",
			want:  "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}

			sink := NewStdoutSink(buf, tt.mode)
			sink.SetColor(tt.color)

			require.NoError(t, sink.Output(tt.input))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestStdoutSinkAutoUsesCachedProbe(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewStdoutSink(buf, ColorModeAuto)

	require.NoError(t, sink.Output("hello"))

	want := "hello"
	if stdoutSupportsColor() {
		want = ColorGreen.wrap("hello")
	}

	assert.Equal(t, want, buf.String())

	// The probe answer is fixed for the life of the process.
	assert.Equal(t, stdoutSupportsColor(), stdoutSupportsColor())
}

func TestStdoutSinkDefaultsToGreen(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewStdoutSink(buf, ColorModeAlways)

	require.NoError(t, sink.Output("go"))
	assert.Equal(t, "\x1b[0;32mgo\x1b[m", buf.String())
}

func TestStdoutSinkSetColorIgnoresInvalid(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewStdoutSink(buf, ColorModeAlways)

	sink.SetColor(Color(42))

	require.NoError(t, sink.Output("x"))
	assert.Equal(t, "\x1b[0;32mx\x1b[m", buf.String())
}

func TestNullSinkDiscards(t *testing.T) {
	sink := NewNullSink()

	require.NoError(t, sink.Output("into the void"))
}

func TestDebugSinkSucceeds(t *testing.T) {
	sink := NewDebugSink()

	require.NoError(t, sink.Output("debugger food"))
}
