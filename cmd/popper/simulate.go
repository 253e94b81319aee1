package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/popper/internal/scenario"
	pkgerrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

type simulateOptions struct {
	frameInterval time.Duration
	jsonOutput    bool
	expectPath    string
}

func newSimulateCmd(root *rootFlags) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Replay a positioning scenario",
		Long: `Replay a scenario file against a simulated document and print every
position and close event the engine publishes.

With the default frame interval of zero, frames only advance on "frames"
steps and the output is reproducible. Use --expect to compare the JSON
lines output with a golden file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().DurationVar(&opts.frameInterval, "frame-interval", 0, "Flush frames on a timer as well as on frames steps")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output records as JSON lines")
	cmd.Flags().StringVar(&opts.expectPath, "expect", "", "Golden JSON lines file the output must match")

	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootFlags, opts *simulateOptions, path string) error {
	cfg, log, err := root.setup(cmd, "simulate")
	if err != nil {
		return err
	}

	sc, err := scenario.Load(path)
	if err != nil {
		return newCommandError("simulate", fmt.Sprintf("loading scenario %q", path), err, "Fix the scenario file and try again.")
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	runner := scenario.NewRunner(log, opts.frameInterval, cfg.PopperOptions())
	report, err := runner.Run(ctx, sc)
	if err != nil {
		return newCommandError("simulate", fmt.Sprintf("replaying scenario %q", sc.Name), err, "")
	}
	log.Debugf("replayed %d steps, %d records", len(sc.Steps), len(report.Records))

	if opts.expectPath != "" {
		return expectReport(cmd, report, opts.expectPath)
	}
	if opts.jsonOutput {
		return report.WriteJSONLines(cmd.OutOrStdout())
	}
	return renderReport(cmd, report)
}

func expectReport(cmd *cobra.Command, report *scenario.Report, path string) error {
	expected, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("simulate", fmt.Sprintf("reading expectation %q", path), err, "Check that the file exists and you have permission to read it.")
	}

	err = report.Expect(expected, path)
	var mismatch *pkgerrors.MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprint(cmd.ErrOrStderr(), mismatch.Diff)
		return newCommandError("simulate", "comparing output", err, "Regenerate the golden file with --json if the change is intended.")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records match %s\n", report.Name, len(report.Records), path)
	return nil
}

func renderReport(cmd *cobra.Command, report *scenario.Report) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scenario: %s\n\n", report.Name)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "STEP\tACTION\tFRAME\tEVENT\tTOP\tLEFT\tWIDTH")
	for _, rec := range report.Records {
		step := fmt.Sprint(rec.Step)
		if rec.Step < 0 {
			step = "-"
		}
		action := valueOrFallback(rec.Action, "-")

		if rec.Result == nil {
			fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t\t\t\n", step, action, rec.Frame, rec.Event)
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%g\t%g\t%s\n",
			step, action, rec.Frame, rec.Event, rec.Result.Top, rec.Result.Left, rec.Result.Width)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nopen: %t  active: %t  recomputes: %d  skipped: %d  retries: %d  leaked listeners: %d\n",
		report.Open, report.Active, report.Stats.Recomputes, report.Stats.Skipped, report.Stats.Retries, report.LeakedListeners)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
