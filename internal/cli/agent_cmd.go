package cli

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/notify"
	"github.com/freshtrackhq/freshtrack/internal/pantry"
	"github.com/freshtrackhq/freshtrack/internal/reminder"
	"github.com/freshtrackhq/freshtrack/internal/remote"
)

func newAgentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Run the reminder agent against a pantry store",
		Long: "The agent mirrors the pantry store, classifies item freshness and " +
			"keeps scheduled expiry reminders in sync on every change and day rollover.",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier, err := buildNotifier(app)
			if err != nil {
				return err
			}

			store := remote.NewClient(app.Config.Remote.BaseURL)
			rec := reminder.NewReconciler(notifier, app.Log)
			controller := pantry.NewController(store, rec, clock.System(), app.Log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app.Log.Info("agent started",
				"store", app.Config.Remote.BaseURL,
				"interval", app.Config.Agent.TickInterval,
				"notifier", app.Config.Agent.Notifier)

			return controller.Run(ctx, app.Config.Agent.TickInterval)
		},
	}
}

func buildNotifier(app *App) (notify.Notifier, error) {
	switch app.Config.Agent.Notifier {
	case "telegram":
		return notify.NewTelegramNotifier(app.Config.Telegram.Token, app.Config.Telegram.ChatID, app.Log)
	case "log", "":
		return notify.NewLogNotifier(app.Log), nil
	case "none":
		return notify.Noop{}, nil
	default:
		return nil, errors.New("unknown notifier: " + app.Config.Agent.Notifier)
	}
}
