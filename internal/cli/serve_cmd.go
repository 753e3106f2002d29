package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/db"
	"github.com/freshtrackhq/freshtrack/internal/repository"
	"github.com/freshtrackhq/freshtrack/internal/server"
	"github.com/freshtrackhq/freshtrack/internal/service"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the pantry store HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Open(app.Config.DB.Path)
			if err != nil {
				return err
			}
			defer database.Close()

			itemRepo := repository.NewSQLiteItemRepo(database)
			wasteRepo := repository.NewSQLiteWasteRepo(database)
			userRepo := repository.NewSQLiteUserRepo(database)
			uow := db.NewSQLiteUnitOfWork(database)
			clk := clock.System()

			srv := server.New(app.Config.HTTP.Addr, server.Services{
				Items:   service.NewItemService(itemRepo, uow, clk),
				Stats:   service.NewStatsService(wasteRepo, clk),
				Auth:    service.NewAuthService(userRepo, clk),
				Recipes: service.NewRecipeService(),
			}, app.Config.Metrics.Enabled, app.Log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					app.Log.Error("http server error", "error", err)
					stop()
				}
			}()
			app.Log.Info("pantry store listening", "addr", app.Config.HTTP.Addr)

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			app.Log.Info("graceful shutdown complete")
			return nil
		},
	}
}
