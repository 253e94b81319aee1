package popper

import (
	"fmt"
	"strings"

	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

// Placement names the anchor edge the popper sits against and how it is
// aligned along that edge, e.g. "top", "bottom-start", "right-end".
type Placement string

const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementLeft        Placement = "left"
	PlacementLeftStart   Placement = "left-start"
	PlacementLeftEnd     Placement = "left-end"
	PlacementRight       Placement = "right"
	PlacementRightStart  Placement = "right-start"
	PlacementRightEnd    Placement = "right-end"
)

// DefaultPlacement is used when no placement is supplied.
const DefaultPlacement = PlacementBottom

// Side is the anchor edge a placement attaches to.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "bottom"
	}
}

// axis returns the main axis for the side: vertical sides push the popper
// along Y, horizontal sides along X.
func (s Side) axis() Axis {
	if s == SideLeft || s == SideRight {
		return AxisHorizontal
	}
	return AxisVertical
}

// Alignment positions the popper along the cross axis.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignStart
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return "center"
	}
}

var placements = []Placement{
	PlacementTop, PlacementTopStart, PlacementTopEnd,
	PlacementBottom, PlacementBottomStart, PlacementBottomEnd,
	PlacementLeft, PlacementLeftStart, PlacementLeftEnd,
	PlacementRight, PlacementRightStart, PlacementRightEnd,
}

// Placements returns all twelve placements in a stable order.
func Placements() []Placement {
	out := make([]Placement, len(placements))
	copy(out, placements)
	return out
}

// Valid reports whether p is one of the twelve known placements.
func (p Placement) Valid() bool {
	for _, known := range placements {
		if p == known {
			return true
		}
	}
	return false
}

// Side returns the anchor edge for p. Unknown placements resolve to bottom.
func (p Placement) Side() Side {
	side, _ := p.split()
	return side
}

// Alignment returns the cross-axis alignment for p. Unknown placements
// resolve to center.
func (p Placement) Alignment() Alignment {
	_, align := p.split()
	return align
}

func (p Placement) split() (Side, Alignment) {
	if !p.Valid() {
		return SideBottom, AlignCenter
	}

	side, suffix, _ := strings.Cut(string(p), "-")

	var s Side
	switch side {
	case "top":
		s = SideTop
	case "left":
		s = SideLeft
	case "right":
		s = SideRight
	default:
		s = SideBottom
	}

	switch suffix {
	case "start":
		return s, AlignStart
	case "end":
		return s, AlignEnd
	default:
		return s, AlignCenter
	}
}

// ParsePlacement converts user input into a Placement. An empty string
// yields DefaultPlacement.
func ParsePlacement(value string) (Placement, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return DefaultPlacement, nil
	}
	p := Placement(trimmed)
	if !p.Valid() {
		return "", popperrors.NewValidationError("placement", fmt.Sprintf("unknown placement %q", value), nil)
	}
	return p, nil
}
