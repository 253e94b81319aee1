package popper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

// WidthMode determines how the popper's width relates to the anchor.
type WidthMode string

const (
	WidthAuto        WidthMode = "auto"
	WidthMatchAnchor WidthMode = "match-anchor"
	WidthMaxContent  WidthMode = "max-content"
)

// ParseWidthMode converts user input into a WidthMode. An empty string
// yields WidthAuto.
func ParseWidthMode(value string) (WidthMode, error) {
	switch mode := WidthMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return WidthAuto, nil
	case WidthAuto, WidthMatchAnchor, WidthMaxContent:
		return mode, nil
	default:
		return "", popperrors.NewValidationError("width", fmt.Sprintf("unknown width mode %q", value), nil)
	}
}

type widthKind int

const (
	widthUnconstrained widthKind = iota
	widthPixels
	widthMaxContent
)

// Width is a resolved width constraint: none, a pixel value, or the
// max-content sizing hint.
type Width struct {
	kind   widthKind
	pixels float64
}

// Pixels returns a fixed pixel width.
func Pixels(px float64) Width { return Width{kind: widthPixels, pixels: px} }

// MaxContent returns the size-to-intrinsic-content hint.
func MaxContent() Width { return Width{kind: widthMaxContent} }

// Unconstrained returns the absence of a width constraint.
func Unconstrained() Width { return Width{} }

// Pixels reports the pixel width, if the constraint is a pixel value.
func (w Width) Pixels() (float64, bool) {
	return w.pixels, w.kind == widthPixels
}

// IsMaxContent reports whether w is the max-content hint.
func (w Width) IsMaxContent() bool { return w.kind == widthMaxContent }

// IsUnconstrained reports whether w imposes no width at all.
func (w Width) IsUnconstrained() bool { return w.kind == widthUnconstrained }

// String renders w the way a style sheet would.
func (w Width) String() string {
	switch w.kind {
	case widthPixels:
		return strconv.FormatFloat(w.pixels, 'f', -1, 64) + "px"
	case widthMaxContent:
		return "max-content"
	default:
		return "auto"
	}
}

// MarshalJSON encodes w as null, a number, or "max-content".
func (w Width) MarshalJSON() ([]byte, error) {
	switch w.kind {
	case widthPixels:
		return json.Marshal(w.pixels)
	case widthMaxContent:
		return json.Marshal("max-content")
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (w *Width) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch trimmed {
	case "null":
		*w = Unconstrained()
		return nil
	case `"max-content"`:
		*w = MaxContent()
		return nil
	}
	var px float64
	if err := json.Unmarshal(data, &px); err != nil {
		return fmt.Errorf("decode width %s: %w", trimmed, err)
	}
	*w = Pixels(px)
	return nil
}

// ResolveWidth turns a width mode into a concrete constraint. Only
// match-anchor depends on the anchor; unknown modes behave like auto.
func ResolveWidth(mode WidthMode, anchor Rect) Width {
	switch mode {
	case WidthMatchAnchor:
		return Pixels(anchor.Width)
	case WidthMaxContent:
		return MaxContent()
	default:
		return Unconstrained()
	}
}
