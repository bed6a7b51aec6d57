// Package commands implements the xgbtree CLI's subcommands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vareth-ml/xgbtree/internal/checkpoint"
	"github.com/vareth-ml/xgbtree/internal/config"
	"github.com/vareth-ml/xgbtree/internal/observability"
)

var (
	verbose    bool
	configPath string
)

// NewRootCommand builds the xgbtree root command with every subcommand
// attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xgbtree",
		Short: "Load and inspect XGBoost tree-ensemble models",
		Long: `xgbtree parses XGBoost's JSON model format and reshapes each tree into
a recursive, contiguously-indexed layout.

Commands:
  inspect   Load a model file and print a summary
  version   Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: search ./.xgbtree.yaml, ~/.xgbtree.yaml)")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// bootstrap loads configuration and initializes observability providers,
// honoring the --verbose override on top of the config's log level. The
// caller is responsible for invoking the returned shutdown func.
func bootstrap() (*config.Config, observability.Providers, *checkpoint.Cache, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, observability.Providers{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	providers, err := observability.Init(observability.FromAppConfig(cfg))
	if err != nil {
		return nil, observability.Providers{}, nil, nil, fmt.Errorf("init observability: %w", err)
	}

	cache := checkpoint.New(cfg.Checkpoint.Dir)

	shutdown := func() {
		if shutErr := providers.Shutdown(context.Background()); shutErr != nil {
			fmt.Fprintf(os.Stderr, "observability shutdown: %v\n", shutErr)
		}
	}

	return cfg, providers, cache, shutdown, nil
}
