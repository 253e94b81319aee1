package scenario

import (
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/popper/internal/config"
	"github.com/alexisbeaulieu97/popper/internal/popper"
	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// Point is a viewport coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Scenario is a scripted sequence of host events replayed against one
// engine. The anchor rect is in document coordinates; the popper starts
// mounted at the document origin with the given size.
type Scenario struct {
	Name      string         `yaml:"name" validate:"required,max=100"`
	Viewport  Size           `yaml:"viewport"`
	Anchor    popper.Rect    `yaml:"anchor"`
	Popper    Size           `yaml:"popper"`
	Placement string         `yaml:"placement" validate:"omitempty,placement"`
	Offset    *popper.Offset `yaml:"offset"`
	Width     string         `yaml:"width" validate:"omitempty,width_mode"`
	ZIndex    *int           `yaml:"z_index" validate:"omitempty,min=0"`
	Steps     []Step         `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is one scripted action. Exactly one field must be set.
type Step struct {
	Open           *bool          `yaml:"open,omitempty"`
	Scroll         *popper.Offset `yaml:"scroll,omitempty"`
	Frames         int            `yaml:"frames,omitempty" validate:"min=0,max=10000"`
	ResizeAnchor   *Size          `yaml:"resize_anchor,omitempty" validate:"omitempty"`
	ResizePopper   *Size          `yaml:"resize_popper,omitempty" validate:"omitempty"`
	ResizeViewport *Size          `yaml:"resize_viewport,omitempty" validate:"omitempty"`
	Pointer        *Point         `yaml:"pointer,omitempty"`
	Key            string         `yaml:"key,omitempty"`
	Placement      string         `yaml:"placement,omitempty" validate:"omitempty,placement"`
	UnmountPopper  bool           `yaml:"unmount_popper,omitempty"`
	MountPopper    bool           `yaml:"mount_popper,omitempty"`
}

// Action names the single action a step performs, or "" when none or
// several are set.
func (s Step) Action() string {
	var actions []string
	add := func(set bool, name string) {
		if set {
			actions = append(actions, name)
		}
	}
	add(s.Open != nil, "open")
	add(s.Scroll != nil, "scroll")
	add(s.Frames > 0, "frames")
	add(s.ResizeAnchor != nil, "resize_anchor")
	add(s.ResizePopper != nil, "resize_popper")
	add(s.ResizeViewport != nil, "resize_viewport")
	add(s.Pointer != nil, "pointer")
	add(s.Key != "", "key")
	add(s.Placement != "", "placement")
	add(s.UnmountPopper, "unmount_popper")
	add(s.MountPopper, "mount_popper")

	if len(actions) != 1 {
		return ""
	}
	return actions[0]
}

// Load reads, parses and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, popperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a scenario document. source labels errors.
func Parse(source string, data []byte) (*Scenario, error) {
	var sc Scenario
	if err := config.DecodeYAML(source, data, &sc); err != nil {
		return nil, err
	}
	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario schema and that every step names exactly one
// action.
func Validate(sc *Scenario) error {
	if sc == nil {
		return popperrors.NewValidationError("scenario", "scenario is nil", nil)
	}
	if err := config.ValidateStruct(sc); err != nil {
		return err
	}
	if sc.Anchor.Width < 0 || sc.Anchor.Height < 0 {
		return popperrors.NewValidationError("anchor", "anchor size must not be negative", nil)
	}
	for i, step := range sc.Steps {
		if step.Action() == "" {
			return popperrors.NewValidationError(fmt.Sprintf("steps[%d]", i), "step must set exactly one action", nil)
		}
	}
	return nil
}

// Options builds engine options from the scenario, starting from base for
// anything the scenario leaves unset.
func (sc *Scenario) Options(base popper.Options) popper.Options {
	opts := base
	if placement, err := popper.ParsePlacement(sc.Placement); err == nil && sc.Placement != "" {
		opts.Placement = placement
	}
	if sc.Offset != nil {
		offset := *sc.Offset
		opts.Offset = &offset
	}
	if mode, err := popper.ParseWidthMode(sc.Width); err == nil && sc.Width != "" {
		opts.WidthMode = mode
	}
	if sc.ZIndex != nil {
		opts.ZIndex = *sc.ZIndex
	}
	return opts
}
