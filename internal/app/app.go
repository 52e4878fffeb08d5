package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/pinmuxgen/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Logs are written to
// logW with the level and format from cfg.
func NewApp(logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Config returns the application's configuration.
func (a *App) Config() *Config {
	return a.config
}
