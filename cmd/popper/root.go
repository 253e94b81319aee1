package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/popper/internal/config"
	"github.com/alexisbeaulieu97/popper/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "popper",
		Short:         "Popper positions anchored overlays and replays positioning scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML file with overlay defaults")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newComputeCmd(flags))
	cmd.AddCommand(newPlacementsCmd(flags))
	cmd.AddCommand(newSimulateCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads the configuration file, if any, and builds the logger that
// writes to the command's error stream.
func (f *rootFlags) setup(cmd *cobra.Command, operation string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, newCommandError(operation, "loading configuration", err, "Fix the configuration errors shown above and try again.")
	}

	level := cfg.Logging.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, newCommandError(operation, "creating logger", err, "Use one of trace, debug, info, warn, error or disabled.")
	}

	return cfg, log.WithComponent(operation), nil
}
