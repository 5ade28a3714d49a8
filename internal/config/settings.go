package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/zoro11031/turtleshell/internal/common"
)

// EnvPrefix is the prefix of environment variables that override the
// config file, e.g. TSHELL_LOG_LEVEL.
const EnvPrefix = "tshell"

// Sources reported by Lookup.
const (
	SourceEnvironment = "environment"
	SourceConfigFile  = "config file"
	SourceDefault     = "default"
)

// Settings holds the resolved configuration of a tshell invocation.
type Settings struct {
	LogLevel         string `split_words:"true"`
	LogDev           bool   `split_words:"true"`
	Concurrency      int
	FileMode         string `split_words:"true"`
	DirMode          string `split_words:"true"`
	NoColor          bool   `split_words:"true"`
	ConfirmOverwrite bool   `split_words:"true"`
}

// LoadSettings resolves settings from the Defaults table, then the config
// file, then TSHELL_* environment variables.
func LoadSettings(cfg *Config) (*Settings, error) {
	s := &Settings{}

	for _, key := range KnownKeys() {
		if err := s.apply(key, cfg.GetOrDefault(key, "")); err != nil {
			return nil, fmt.Errorf("invalid value in %s: %w", cfg.FilePath(), err)
		}
	}

	if err := envconfig.Process(EnvPrefix, s); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// apply sets the field for key from its string form.
func (s *Settings) apply(key, value string) error {
	var err error
	switch key {
	case KeyLogLevel:
		s.LogLevel = value
	case KeyLogDev:
		s.LogDev, err = common.ParseBool(value)
	case KeyConcurrency:
		s.Concurrency, err = strconv.Atoi(value)
	case KeyFileMode:
		s.FileMode = value
	case KeyDirMode:
		s.DirMode = value
	case KeyNoColor:
		s.NoColor, err = common.ParseBool(value)
	case KeyConfirmOverwrite:
		s.ConfirmOverwrite, err = common.ParseBool(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// Validate checks every field.
func (s *Settings) Validate() error {
	if err := common.ValidateLogLevel(s.LogLevel); err != nil {
		return err
	}
	if err := common.ValidateConcurrency(strconv.Itoa(s.Concurrency)); err != nil {
		return err
	}
	if err := common.ValidateFileMode(s.FileMode); err != nil {
		return fmt.Errorf("%s: %w", KeyFileMode, err)
	}
	if err := common.ValidateFileMode(s.DirMode); err != nil {
		return fmt.Errorf("%s: %w", KeyDirMode, err)
	}
	return nil
}

// FilePerm returns FileMode as a permission value.
func (s *Settings) FilePerm() os.FileMode {
	mode, err := common.ParseFileMode(s.FileMode)
	if err != nil {
		return 0644
	}
	return mode
}

// DirPerm returns DirMode as a permission value.
func (s *Settings) DirPerm() os.FileMode {
	mode, err := common.ParseFileMode(s.DirMode)
	if err != nil {
		return 0755
	}
	return mode
}

// ValidateValue checks a single key=value pair before it is stored.
func ValidateValue(key, value string) error {
	s := &Settings{}
	if err := s.apply(key, value); err != nil {
		return err
	}
	switch key {
	case KeyLogLevel:
		return common.ValidateLogLevel(value)
	case KeyConcurrency:
		return common.ValidateConcurrency(value)
	case KeyFileMode, KeyDirMode:
		return common.ValidateFileMode(value)
	}
	return nil
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return strings.ToUpper(EnvPrefix) + "_" + key
}

// Lookup returns the value of key in effect and the layer it comes from,
// using the same precedence as LoadSettings.
func Lookup(cfg *Config, key string) (value, source string) {
	if v, ok := os.LookupEnv(EnvVar(key)); ok {
		return v, SourceEnvironment
	}
	if v, err := cfg.Get(key); err == nil {
		return v, SourceConfigFile
	}
	return Defaults[key], SourceDefault
}
