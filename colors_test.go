package hypersink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorWrap(t *testing.T) {
	tests := []struct {
		color Color
		input string
		want  string
	}{
		{color: ColorRed, input: "r", want: "\x1b[0;31mr\x1b[m"},
		{color: ColorGreen, input: "g", want: "\x1b[0;32mg\x1b[m"},
		{color: ColorYellow, input: "y", want: "\x1b[0;33my\x1b[m"},
		{color: ColorDefault, input: "d", want: "d"},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.wrap(tt.input))
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "red", ColorRed.String())
	assert.Equal(t, "green", ColorGreen.String())
	assert.Equal(t, "yellow", ColorYellow.String())
	assert.Equal(t, "default", ColorDefault.String())
	assert.Equal(t, "unknown", Color(12).String())
}

func TestColorIsValid(t *testing.T) {
	assert.True(t, ColorDefault.IsValid())
	assert.True(t, ColorYellow.IsValid())
	assert.False(t, Color(-1).IsValid())
	assert.False(t, Color(4).IsValid())
}
