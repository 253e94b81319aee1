package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/popper/internal/popper"
)

type placementsOptions struct {
	geometry   geometryFlags
	jsonOutput bool
}

func newPlacementsCmd(root *rootFlags) *cobra.Command {
	opts := &placementsOptions{}

	cmd := &cobra.Command{
		Use:   "placements",
		Short: "Compute the position for every placement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := root.setup(cmd, "placements")
			if err != nil {
				return err
			}
			g, err := opts.geometry.parse()
			if err != nil {
				return newCommandError("placements", "reading geometry", err, "Run 'popper placements --help' for the expected formats.")
			}

			engineOpts := cfg.PopperOptions()
			if g.offset != nil {
				engineOpts.Offset = g.offset
			}

			rows := make([]computeJSON, 0, len(popper.Placements()))
			for _, p := range popper.Placements() {
				engineOpts.Placement = p
				rows = append(rows, computeJSON{Placement: p, PositionResult: place(engineOpts, g)})
			}

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(rows)
			}
			return renderPlacementsTable(cmd, rows)
		},
	}

	opts.geometry.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderPlacementsTable(cmd *cobra.Command, rows []computeJSON) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "PLACEMENT\tSIDE\tALIGN\tTOP\tLEFT")
	for _, row := range rows {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%g\t%g\n",
			row.Placement,
			row.Placement.Side(),
			row.Placement.Alignment(),
			row.Top,
			row.Left,
		)
	}

	return writer.Flush()
}
