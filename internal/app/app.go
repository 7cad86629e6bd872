// Package app provides the main application logic.
package app

import (
	"fmt"

	"toolbar-icons/internal/config"
	"toolbar-icons/internal/icons"
	"toolbar-icons/internal/ui"
	"toolbar-icons/pkg/logger"
)

// App represents the main application.
type App struct {
	configMgr  *config.ConfigManager
	log        *logger.Logger
	factory    *icons.Factory
	mainWindow *ui.MainWindow
}

// New creates a new application instance from the config file at configPath.
// An empty path selects the default location.
func New(configPath string, console bool) (*App, error) {
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	// Initialize config manager
	configMgr, err := config.NewConfigManager(configPath)
	if err != nil {
		return nil, err
	}

	// Initialize logger
	log := logger.GetInstance()
	cfg := configMgr.Get()
	err = log.Initialize(logger.Config{
		LogPath:    cfg.LogPath,
		Level:      cfg.LogLevel,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		Console:    console,
	})
	if err != nil {
		// Log error but continue
		log.Warnf("Failed to initialize file logging: %v", err)
	}
	if err := log.RotateIfNeeded(); err != nil {
		log.Warnf("Failed to rotate log file: %v", err)
	}

	app := &App{
		configMgr: configMgr,
		log:       log,
		factory:   icons.NewFactory(icons.WithLogger(log)),
	}

	return app, nil
}

// Config returns the current configuration.
func (a *App) Config() config.AppConfig {
	return a.configMgr.Get()
}

// Run opens the preview window and blocks until it closes.
func (a *App) Run() {
	a.log.Info("Starting Toolbar Icons")

	a.mainWindow = ui.NewMainWindow(a.configMgr, a.factory)
	a.mainWindow.Run()

	a.cleanup()
}

// ExportRequest overrides configuration values for a headless export.
// Zero values fall back to the configuration.
type ExportRequest struct {
	Dir        string
	Size       int
	Background string
	SVG        bool
}

// Export renders the toolbar set and writes it to disk without a window.
func (a *App) Export(req ExportRequest) ([]string, error) {
	defer a.cleanup()

	cfg := a.configMgr.Get()
	if req.Dir == "" {
		req.Dir = cfg.ExportDir
	}
	if req.Size <= 0 {
		req.Size = cfg.IconSize
	}
	if req.Background == "" {
		req.Background = cfg.Background
	}

	bg, err := icons.ParseColor(req.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	return a.factory.ExportSet(icons.ExportOptions{
		Dir:        req.Dir,
		Size:       req.Size,
		Background: bg,
		SVG:        req.SVG,
	})
}

// cleanup performs cleanup before exit.
func (a *App) cleanup() {
	a.log.Info("Shutting down Toolbar Icons")

	if a.mainWindow != nil {
		a.mainWindow.Cleanup()
	}

	// Close logger
	a.log.Close()
}
