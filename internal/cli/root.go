// Package cli wires the freshtrack command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/freshtrackhq/freshtrack/internal/config"
	"github.com/freshtrackhq/freshtrack/internal/logger"
)

// App carries configuration and the process logger into subcommands.
// Both are populated by the root command's PersistentPreRunE so that
// every subcommand sees the same config file and logging setup.
type App struct {
	Config config.Config
	Log    *slog.Logger
}

// NewRootCmd creates the top-level "freshtrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "freshtrack",
		Short:         "Pantry tracker with expiry reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			app.Config = cfg
			app.Log = logger.New(cfg.App.Env)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	root.AddCommand(
		newServeCmd(app),
		newAgentCmd(app),
		newItemCmd(app),
		newStatsCmd(app),
	)

	return root
}
