package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/rdmanage/internal/httpapi"
	"github.com/alexanderramin/rdmanage/internal/service"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			database, err := app.openDB()
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			observers := []service.UseCaseObserver{service.NewSlogUseCaseObserver(app.logger)}
			var metrics *httpapi.Metrics
			if cfg.Metrics.Enabled {
				metrics = httpapi.NewMetrics()
				observers = append(observers, metrics)
			}
			handler := httpapi.NewRouter(service.NewServices(database, observers...), httpapi.Options{
				Logger:      app.logger,
				Metrics:     metrics,
				MetricsPath: cfg.Metrics.Path,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app.logger.Info("starting rdmanage",
				"addr", cfg.Server.Addr,
				"database", cfg.Database.Path,
				"metrics", cfg.Metrics.Enabled,
			)
			return httpapi.Run(ctx, httpapi.ServerConfig{
				Addr:            cfg.Server.Addr,
				ReadTimeout:     cfg.Server.ReadTimeout,
				WriteTimeout:    cfg.Server.WriteTimeout,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
			}, handler, app.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.openDB(); err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", app.cfg.Database.Path)
			return nil
		},
	}
}
