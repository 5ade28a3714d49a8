// Package cli provides the command-line interface layer for tshell: the
// shared context built from configuration, the command runners used by both
// the cobra commands and the interactive menu, and the menu itself.
package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zoro11031/turtleshell/internal/config"
	"github.com/zoro11031/turtleshell/internal/logging"
	"github.com/zoro11031/turtleshell/internal/ui"
	"github.com/zoro11031/turtleshell/pkg/turtleshell"
)

// Options holds command-line overrides applied on top of the configuration.
type Options struct {
	ConfigPath     string
	LogLevel       string
	NoColor        bool
	NonInteractive bool
}

// Context holds all dependencies needed by tshell commands
type Context struct {
	Config   *config.Config
	Settings *config.Settings
	UI       *ui.UI
	Logger   *zap.Logger
	// Shell runs the filesystem operations. ParentsShell is the same facade
	// configured to create missing parent directories (mkdir -p).
	Shell        turtleshell.Facade
	ParentsShell turtleshell.Facade
}

// NewContext creates a new Context with all dependencies initialized
func NewContext(opts Options) (*Context, error) {
	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	settings, err := config.LoadSettings(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings: %w", err)
	}
	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}
	if opts.NoColor {
		settings.NoColor = true
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:       settings.LogLevel,
		Development: settings.LogDev,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(opts.NonInteractive)
	uiInstance.SetNoColor(settings.NoColor)

	shellOpts := turtleshell.Options{
		Concurrency: settings.Concurrency,
		FileMode:    settings.FilePerm(),
		DirMode:     settings.DirPerm(),
		Logger:      logger.Named("turtleshell"),
	}
	shell := turtleshell.New(shellOpts)
	shellOpts.Parents = true
	parentsShell := turtleshell.New(shellOpts)

	logger.Debug("context initialized",
		zap.String("config", cfg.FilePath()),
		zap.Int("concurrency", settings.Concurrency))

	return &Context{
		Config:       cfg,
		Settings:     settings,
		UI:           uiInstance,
		Logger:       logger,
		Shell:        shell,
		ParentsShell: parentsShell,
	}, nil
}

// Facade returns the shell to use, honouring the parents flag of mkdir.
func (c *Context) Facade(parents bool) turtleshell.Facade {
	if parents && c.ParentsShell != nil {
		return c.ParentsShell
	}
	return c.Shell
}

// Close flushes buffered log entries.
func (c *Context) Close() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
