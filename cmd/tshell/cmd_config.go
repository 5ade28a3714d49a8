package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoro11031/turtleshell/internal/common"
	"github.com/zoro11031/turtleshell/internal/config"
	"github.com/zoro11031/turtleshell/internal/logging"
	"github.com/zoro11031/turtleshell/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change the settings stored in the config file.

Settings are resolved from built-in defaults, then the config file, then
TSHELL_* environment variables (for example TSHELL_LOG_LEVEL=debug).`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings and where they come from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openConfig(cmd)
		defer s.close()

		s.out.Header("Settings")
		bold := color.New(color.Bold)
		if globalOpts.NoColor {
			bold.DisableColor()
		}
		for _, key := range config.KnownKeys() {
			value, source := config.Lookup(s.cfg, key)
			if source == config.SourceEnvironment {
				source = config.EnvVar(key)
			}
			s.out.Printf("  %s = %s (%s)", bold.Sprint(key), value, source)
		}
		s.out.Print("")
		s.out.Infof("Configuration file: %s", s.cfg.FilePath())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the value of a setting in effect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openConfig(cmd)
		defer s.close()

		if !slices.Contains(config.KnownKeys(), args[0]) {
			return fmt.Errorf("unknown config key: %s", args[0])
		}
		value, source := config.Lookup(s.cfg, args[0])
		s.log.Debug("config lookup", zap.String("key", args[0]), zap.String("source", source))
		s.out.Lines([]string{value})
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a setting in the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := common.ValidateConfigKey(key); err != nil {
			return err
		}
		if err := config.ValidateValue(key, value); err != nil {
			return err
		}

		s := openConfig(cmd)
		defer s.close()

		if err := s.cfg.Set(key, value); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		s.log.Debug("config value stored", zap.String("key", key), zap.String("file", s.cfg.FilePath()))
		s.out.Successf("%s=%s saved to %s", key, value, s.cfg.FilePath())
		if _, source := config.Lookup(s.cfg, key); source == config.SourceEnvironment {
			s.out.Warningf("%s is set and takes precedence", config.EnvVar(key))
		}
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a setting from the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openConfig(cmd)
		defer s.close()

		if !s.cfg.Exists(args[0]) {
			s.out.Infof("%s is not set", args[0])
			return nil
		}
		if err := s.cfg.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		s.log.Debug("config value removed", zap.String("key", args[0]), zap.String("file", s.cfg.FilePath()))
		s.out.Successf("%s removed", args[0])
		return nil
	},
}

// configSession is what the config subcommands work with. It is built
// without requiring valid settings, so that an invalid stored value can
// still be inspected and fixed.
type configSession struct {
	cfg *config.Config
	out *ui.UI
	log *zap.Logger
}

func openConfig(cmd *cobra.Command) *configSession {
	out := ui.NewWithWriters(cmd.ErrOrStderr(), cmd.OutOrStdout())
	out.SetNoColor(globalOpts.NoColor)
	cfg := config.New(globalOpts.ConfigPath)
	return &configSession{cfg: cfg, out: out, log: configLogger(cfg)}
}

// configLogger returns the logger described by the resolved settings, or
// the default logger when they cannot be resolved.
func configLogger(cfg *config.Config) *zap.Logger {
	settings, err := config.LoadSettings(cfg)
	if err != nil {
		logger := logging.NewDefault()
		logger.Warn("settings are invalid, using default logger", zap.Error(err))
		return logger
	}

	level := settings.LogLevel
	if globalOpts.LogLevel != "" {
		level = globalOpts.LogLevel
	}
	logger, err := logging.New(logging.Config{Level: level, Development: settings.LogDev})
	if err != nil {
		return logging.NewDefault()
	}
	return logger
}

func (s *configSession) close() {
	_ = s.log.Sync()
}

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd, configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}
