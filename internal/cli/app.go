// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/i18n"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	logFileName   = "tabshell.log"
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 14
)

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme
	Catalog *i18n.Catalog

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	// Logs go to the file only; the shell owns the terminal. Loggers accept
	// every level and the global level filters, so reloads reach live loggers.
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: zerolog.TraceLevel, Format: cfg.Logging.Format, TimeFormat: time.RFC3339},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			Path:       filepath.Join(cfg.Logging.LogDir, logFileName),
			MaxSizeMB:  logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAgeDays: logMaxAgeDays,
			Compress:   true,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	log := logging.FromContext(ctx)

	if logErr != nil {
		log.Warn().Err(logErr).Msg("file logging unavailable")
	}
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg("using default config")
	}
	if mgr != nil && mgr.CreatedFile() != "" {
		log.Info().Str("path", mgr.CreatedFile()).Msg("created default config file")
	}

	catalog, err := i18n.New(cfg.Locale)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("load messages: %w", err)
	}
	log.Debug().Str("locale", catalog.Tag().String()).Msg("messages loaded")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		Catalog:    catalog,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WatchConfig applies log level changes of the config file while the
// shell runs. The schema and theme stay as loaded.
func (a *App) WatchConfig(ctx context.Context) {
	if a.Manager == nil {
		return
	}
	log := logging.FromContext(ctx)

	a.Manager.OnConfigChange(func(cfg *config.Config) {
		level := logging.ParseLevel(cfg.Logging.Level)
		zerolog.SetGlobalLevel(level)
		log.Info().Str("level", level.String()).Msg("log level reloaded")
	})
	if err := a.Manager.Watch(ctx); err != nil {
		log.Debug().Err(err).Msg("config watch disabled")
	}
}

// loadConfig loads configuration from standard locations. The returned
// config is never nil.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
