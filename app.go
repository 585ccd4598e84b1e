package main

import (
	"TUI_playlist_sorter/infrastructure/config"
	"TUI_playlist_sorter/infrastructure/logger"
	"TUI_playlist_sorter/infrastructure/preferences"
	"TUI_playlist_sorter/infrastructure/provider"
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/ports"
	"TUI_playlist_sorter/internal/core/usecases"
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
)

// application is the object graph shared by the TUI and the headless
// commands.
type application struct {
	cfg      *config.Config
	logger   *logger.FileLogger
	prefs    *preferences.Store
	provider *provider.SorterProvider

	session *usecases.SessionManager
	browser *usecases.PlaylistBrowser
	engine  *usecases.SortEngine
	theme   *usecases.ThemeStore
}

// newApplication loads configuration, applies flag overrides and wires the
// use cases to their adapters. alerts receives user-facing messages.
func newApplication(cmd *cli.Command, alerts ports.AlertPort) (*application, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if v := cmd.String("base-url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}

	appLogger, err := logger.NewFileLogger(cfg.Logging.Dir, cfg.Logging.Prefix, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	prefs, err := preferences.NewStore(cfg.Storage.Path)
	if err != nil {
		appLogger.Error("Failed to open preference store, falling back to memory", err, "path", cfg.Storage.Path)
		prefs, _ = preferences.NewStore("")
	}

	sorter, err := provider.NewSorterProvider(provider.Config{
		BaseURL:     cfg.API.BaseURL,
		SessionPath: cfg.API.SessionPath,
		Timeout:     cfg.API.Timeout,
		LongTimeout: cfg.API.LongTimeout,
		RateLimit:   cfg.API.RateLimit,
	}, appLogger)
	if err != nil {
		appLogger.Close()
		prefs.Close()
		return nil, fmt.Errorf("failed to initialize sorter client: %w", err)
	}

	locale, err := language.Parse(cfg.UI.Locale)
	if err != nil {
		appLogger.Warning("Unknown locale, using English collation", "locale", cfg.UI.Locale)
		locale = language.English
	}

	appLogger.Info("Application starting...", "base_url", sorter.BaseURL(), "locale", locale.String())

	return &application{
		cfg:      cfg,
		logger:   appLogger,
		prefs:    prefs,
		provider: sorter,
		session:  usecases.NewSessionManager(sorter, alerts, appLogger),
		browser:  usecases.NewPlaylistBrowser(sorter, appLogger),
		engine:   usecases.NewSortEngine(sorter, alerts, appLogger, locale),
		theme:    usecases.NewThemeStore(prefs, appLogger),
	}, nil
}

func (a *application) Close() {
	if err := a.prefs.Close(); err != nil {
		a.logger.Error("Failed to close preference store", err)
	}
	a.logger.Info("Application finished.")
	a.logger.Close()
}

// ensureSession checks the session and runs the login handshake when there
// is none.
func (a *application) ensureSession(ctx context.Context) error {
	if a.session.CheckSession(ctx) == domain.SessionAuthenticated {
		return nil
	}
	if a.session.Login(ctx) != domain.SessionAuthenticated {
		return fmt.Errorf("not logged in to %s", a.provider.BaseURL())
	}
	return nil
}
