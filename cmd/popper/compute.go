package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/popper/internal/config"
	"github.com/alexisbeaulieu97/popper/internal/popper"
)

type computeOptions struct {
	geometry   geometryFlags
	placement  string
	widthMode  string
	zIndex     int
	jsonOutput bool
}

func newComputeCmd(root *rootFlags) *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute one popper position",
		Long: `Compute the document position of a popper placed against an anchor.

The anchor rect is given in viewport coordinates; the scroll offset converts
the result to document coordinates. Unset flags fall back to the overlay
section of the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.setup(cmd, "compute")
			if err != nil {
				return err
			}

			engineOpts, err := opts.resolve(cmd, cfg)
			if err != nil {
				return newCommandError("compute", "reading flags", err, "Run 'popper compute --help' for the expected formats.")
			}
			g, err := opts.geometry.parse()
			if err != nil {
				return newCommandError("compute", "reading geometry", err, "Run 'popper compute --help' for the expected formats.")
			}
			if g.offset != nil {
				engineOpts.Offset = g.offset
			}

			result := place(engineOpts, g)
			log.Debugf("computed %s: top=%g left=%g", engineOpts.Placement, result.Top, result.Left)

			if opts.jsonOutput {
				return renderResultJSON(cmd, engineOpts.Placement, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "placement: %s\ntop: %g\nleft: %g\nz-index: %d\nwidth: %s\n",
				engineOpts.Placement, result.Top, result.Left, result.ZIndex, result.Width)
			return nil
		},
	}

	opts.geometry.register(cmd)
	cmd.Flags().StringVarP(&opts.placement, "placement", "p", "", "Placement such as bottom or right-start")
	cmd.Flags().StringVar(&opts.widthMode, "width-mode", "", "Width mode: auto, match-anchor or max-content")
	cmd.Flags().IntVar(&opts.zIndex, "z-index", popper.DefaultZIndex, "Stacking order copied into the result")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// resolve layers the command-line flags that were set over the configured
// overlay options.
func (o *computeOptions) resolve(cmd *cobra.Command, cfg *config.Config) (popper.Options, error) {
	opts := cfg.PopperOptions()

	if o.placement != "" {
		p, err := popper.ParsePlacement(o.placement)
		if err != nil {
			return opts, err
		}
		opts.Placement = p
	}
	if o.widthMode != "" {
		mode, err := popper.ParseWidthMode(o.widthMode)
		if err != nil {
			return opts, err
		}
		opts.WidthMode = mode
	}
	if cmd.Flags().Changed("z-index") {
		opts.ZIndex = o.zIndex
	}
	return opts, nil
}

// place runs the geometry pipeline an engine recompute would run against
// fixed rects.
func place(opts popper.Options, g geometry) popper.PositionResult {
	opts = opts.WithDefaults()
	base := popper.ComputeBase(opts.Placement, g.anchor, g.popper)
	pos := popper.ApplyOffsetAndScroll(base, *opts.Offset, g.scroll)
	return popper.PositionResult{
		Top:    pos.Top,
		Left:   pos.Left,
		ZIndex: opts.ZIndex,
		Width:  popper.ResolveWidth(opts.WidthMode, g.anchor),
	}
}

type computeJSON struct {
	Placement popper.Placement `json:"placement"`
	popper.PositionResult
}

func renderResultJSON(cmd *cobra.Command, placement popper.Placement, result popper.PositionResult) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(computeJSON{Placement: placement, PositionResult: result})
}
