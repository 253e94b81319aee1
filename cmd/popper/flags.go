package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/popper/internal/popper"
	pkgerrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

// geometryFlags are the measurements shared by compute and placements.
type geometryFlags struct {
	anchor []float64
	popper []float64
	offset []float64
	scroll []float64
}

func (g *geometryFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&g.anchor, "anchor", nil, "Anchor rect in viewport coordinates as x,y,width,height")
	cmd.Flags().Float64SliceVar(&g.popper, "popper", nil, "Popper size as width,height")
	cmd.Flags().Float64SliceVar(&g.offset, "offset", nil, "Offset as x,y (defaults to the configured offset)")
	cmd.Flags().Float64SliceVar(&g.scroll, "scroll", []float64{0, 0}, "Document scroll offset as x,y")
	cmd.MarkFlagRequired("anchor") //nolint:errcheck
	cmd.MarkFlagRequired("popper") //nolint:errcheck
}

type geometry struct {
	anchor popper.Rect
	popper popper.Rect
	scroll popper.Offset
	// offset is nil when the flag was not given.
	offset *popper.Offset
}

func (g *geometryFlags) parse() (geometry, error) {
	var out geometry

	anchor, err := expectValues("--anchor", g.anchor, "x,y,width,height")
	if err != nil {
		return out, err
	}
	out.anchor = popper.Rect{X: anchor[0], Y: anchor[1], Width: anchor[2], Height: anchor[3]}

	size, err := expectValues("--popper", g.popper, "width,height")
	if err != nil {
		return out, err
	}
	out.popper = popper.Rect{Width: size[0], Height: size[1]}

	if out.anchor.Width < 0 || out.anchor.Height < 0 || out.popper.Width < 0 || out.popper.Height < 0 {
		return out, pkgerrors.NewValidationError("size", "width and height must not be negative", nil)
	}

	scroll, err := expectValues("--scroll", g.scroll, "x,y")
	if err != nil {
		return out, err
	}
	out.scroll = popper.Offset{X: scroll[0], Y: scroll[1]}

	if g.offset != nil {
		offset, err := expectValues("--offset", g.offset, "x,y")
		if err != nil {
			return out, err
		}
		out.offset = &popper.Offset{X: offset[0], Y: offset[1]}
	}

	return out, nil
}

// expectValues checks that a numeric list flag has one value per named
// component of format.
func expectValues(flag string, values []float64, format string) ([]float64, error) {
	want := strings.Count(format, ",") + 1
	if len(values) != want {
		return nil, pkgerrors.NewParseError(flag, 0, fmt.Errorf("expected %s, got %d value(s)", format, len(values)))
	}
	return values, nil
}
