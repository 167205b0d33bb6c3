// Package cli consolidates the initialization shared by the command
// surface: env loading, logging, configuration, the session store and
// the service wiring on top of the gateway.
package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/madhawa1206/expense-tracker-frontend/internal/api"
	"github.com/madhawa1206/expense-tracker-frontend/internal/config"
	applog "github.com/madhawa1206/expense-tracker-frontend/internal/log"
	"github.com/madhawa1206/expense-tracker-frontend/internal/services"
	"github.com/madhawa1206/expense-tracker-frontend/internal/session"
)

// App holds the wired components behind the command surface.
type App struct {
	Config    *config.Config
	Log       *applog.Logger
	Store     *session.SQLiteStore
	Gateway   *api.Client
	Session   *session.Manager
	Expenses  *services.ExpenseService
	Dashboard *services.DashboardService

	// SessionReset is flipped by the gateway when the credential was
	// cleared mid-command; the command surface tells the user to log
	// in again instead of showing an error dialog.
	SessionReset bool
}

// LoadEnvFile loads .env for local development. Missing files are
// fine in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging and installs it as the
// process default.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{Level: level, Component: "app"})
	applog.SetDefault(logger)
	return logger
}

// Setup loads configuration and wires every component. The caller
// owns Close.
func Setup() (*App, error) {
	LoadEnvFile()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := cfg.SlogLevel()
	logger := SetupLogger(level)

	store, err := session.NewSQLiteStore(cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	app := &App{
		Config: cfg,
		Log:    logger,
		Store:  store,
	}
	app.Gateway = api.NewClient(cfg.APIBaseURL, store,
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		api.WithSessionReset(func() { app.SessionReset = true }),
	)
	app.Session = session.NewManager(store, app.Gateway, logger)
	app.Expenses = services.NewExpenseService(app.Gateway, logger)
	app.Dashboard = services.NewDashboardService(app.Gateway, logger)
	return app, nil
}

func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
