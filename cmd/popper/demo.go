package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/popper/internal/config"
	"github.com/alexisbeaulieu97/popper/internal/logger"
	"github.com/alexisbeaulieu97/popper/internal/tui"
)

var errNotTerminal = errors.New("standard output is not a terminal")

func newDemoCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive dropdown demo",
		Long: `Launch a terminal page with a dropdown button. The menu is positioned by
the same engine the other commands use; scroll, resize and click around to
watch it follow its anchor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.setup(cmd, "demo")
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return newCommandError("demo", "starting the interface", errNotTerminal, "Run the demo from an interactive terminal.")
			}
			return runDemo(cfg, log)
		},
	}

	return cmd
}

func runDemo(cfg *config.Config, log *logger.Logger) error {
	model := tui.NewModel(cfg, log)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := program.Run()
	if err != nil {
		return newCommandError("demo", "running the interface", err, "")
	}
	if m, ok := final.(tui.Model); ok && m.Chosen() != "" {
		log.Info("chose " + m.Chosen())
	}
	return nil
}
