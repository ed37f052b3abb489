package cli

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/rdmanage/internal/cli/formatter"
	"github.com/alexanderramin/rdmanage/internal/config"
	"github.com/alexanderramin/rdmanage/internal/db"
	"github.com/alexanderramin/rdmanage/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// App carries the state shared by every command: the effective
// configuration, the logger and a lazily opened database.
type App struct {
	ConfigPath string

	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB
}

// Close releases the database if a command opened it.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *App) openDB() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	database, err := db.OpenDB(a.cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	a.db = database
	return database, nil
}

// services wires the service layer for read-only commands. Use cases are
// logged only at debug level.
func (a *App) services(stderr io.Writer) (*service.Services, error) {
	database, err := a.openDB()
	if err != nil {
		return nil, err
	}
	var observers []service.UseCaseObserver
	if a.logger.Enabled(context.Background(), slog.LevelDebug) {
		observers = append(observers, service.NewLogUseCaseObserver(stderr))
	}
	return service.NewServices(database, observers...), nil
}

// NewRootCmd creates the top-level "rdmanage" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "rdmanage",
		Short:         "Product requirements and task tracking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(app.ConfigPath)
			if err != nil {
				return err
			}
			app.cfg = cfg
			app.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
			formatter.SetColor(colorEnabled(cmd.OutOrStdout()))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Config file (.yaml, .yml or .toml)")

	root.AddCommand(
		newServeCmd(app),
		newMigrateCmd(app),
		newProductCmd(app),
		newModuleCmd(app),
		newVersionCmd(app),
		newRequirementCmd(app),
		newTaskCmd(app),
		newDictCmd(app),
		newImportCmd(app),
	)
	return root
}

// colorEnabled reports whether w is an interactive terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
