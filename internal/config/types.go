package config

import (
	"github.com/alexisbeaulieu97/popper/internal/popper"
)

// Config represents the full popper configuration document.
type Config struct {
	Overlay Overlay `yaml:"overlay"`
	Logging Logging `yaml:"logging"`
	Demo    Demo    `yaml:"demo"`
}

// Overlay holds the positioning defaults handed to every engine.
type Overlay struct {
	Placement string        `yaml:"placement" validate:"omitempty,placement"`
	Offset    popper.Offset `yaml:"offset"`
	Width     string        `yaml:"width" validate:"omitempty,width_mode"`
	// ZIndex of zero selects popper.DefaultZIndex.
	ZIndex              int  `yaml:"z_index" validate:"min=0"`
	CloseOnEscape       bool `yaml:"close_on_escape"`
	CloseOnOutsideClick bool `yaml:"close_on_outside_click"`
}

// Logging configures the process logger.
type Logging struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Human bool   `yaml:"human"`
}

// Demo configures the interactive terminal demo. The terminal measures in
// cells, so it carries its own offset instead of the pixel one in Overlay.
type Demo struct {
	AnchorLabel string        `yaml:"anchor_label" validate:"required,max=40"`
	Items       []string      `yaml:"items" validate:"required,min=1,max=20,dive,required,max=60"`
	FrameRate   int           `yaml:"frame_rate" validate:"min=1,max=240"`
	Offset      popper.Offset `yaml:"offset"`
}

// Default returns the configuration used when no file is supplied. Parsed
// files are decoded on top of it, so omitted keys keep these values.
func Default() *Config {
	return &Config{
		Overlay: Overlay{
			Placement:           string(popper.DefaultPlacement),
			Offset:              popper.DefaultOffset,
			Width:               string(popper.WidthAuto),
			ZIndex:              popper.DefaultZIndex,
			CloseOnEscape:       true,
			CloseOnOutsideClick: true,
		},
		Logging: Logging{
			Level: "info",
			Human: true,
		},
		Demo: Demo{
			AnchorLabel: "Options",
			Items:       []string{"Open", "Save", "Save as...", "Close"},
			FrameRate:   60,
			Offset:      popper.Offset{},
		},
	}
}

// PopperOptions translates the overlay section into engine options. The
// values are expected to have passed validation; anything unknown falls
// back to the engine defaults.
func (c *Config) PopperOptions() popper.Options {
	opts := popper.DefaultOptions()
	if c == nil {
		return opts
	}

	if placement, err := popper.ParsePlacement(c.Overlay.Placement); err == nil {
		opts.Placement = placement
	}
	if mode, err := popper.ParseWidthMode(c.Overlay.Width); err == nil {
		opts.WidthMode = mode
	}
	offset := c.Overlay.Offset
	opts.Offset = &offset
	opts.ZIndex = c.Overlay.ZIndex
	opts.Dismiss = popper.DismissOptions{
		IgnoreEscape:         !c.Overlay.CloseOnEscape,
		IgnoreOutsidePointer: !c.Overlay.CloseOnOutsideClick,
	}
	return opts
}
