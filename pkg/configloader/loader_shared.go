package configloader

import (
	"github.com/hyp3rd/hypersink"
)

type rawConfig struct {
	Sink           string `mapstructure:"sink"            yaml:"sink"`
	ColorMode      string `mapstructure:"color_mode"      yaml:"color_mode"`
	Color          string `mapstructure:"color"           yaml:"color"`
	Buffered       *bool  `mapstructure:"buffered"        yaml:"buffered"`
	BufferCapacity *int   `mapstructure:"buffer_capacity" yaml:"buffer_capacity"`
	File           struct {
		Path     string `mapstructure:"path"      yaml:"path"`
		CharUnit *int   `mapstructure:"char_unit" yaml:"char_unit"`
	} `mapstructure:"file" yaml:"file"`
}

func applyRaw(raw rawConfig) (*hypersink.Config, error) {
	cfg := hypersink.DefaultConfig()

	if raw.Sink != "" {
		kind, err := hypersink.ParseSinkKind(raw.Sink)
		if err != nil {
			return nil, err
		}

		cfg.Sink = kind
	}

	if raw.ColorMode != "" {
		mode, err := hypersink.ParseColorMode(raw.ColorMode)
		if err != nil {
			return nil, err
		}

		cfg.ColorMode = mode
	}

	if raw.Color != "" {
		color, err := hypersink.ParseColor(raw.Color)
		if err != nil {
			return nil, err
		}

		cfg.Color = color
	}

	if raw.Buffered != nil {
		cfg.Buffered = *raw.Buffered
	}

	if raw.BufferCapacity != nil {
		cfg.BufferCapacity = *raw.BufferCapacity
	}

	if raw.File.Path != "" {
		cfg.FilePath = raw.File.Path
	}

	if raw.File.CharUnit != nil {
		cfg.CharUnit = *raw.File.CharUnit
	}

	return &cfg, nil
}

func allKeys() []string {
	return []string{
		"sink",
		"color_mode",
		"color",
		"buffered",
		"buffer_capacity",
		"file.path",
		"file.char_unit",
	}
}
