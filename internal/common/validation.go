package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MaxConcurrency is the upper bound accepted for CONCURRENCY.
const MaxConcurrency = 1024

// ValidateLogLevel validates a log level name
func ValidateLogLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level (want debug, info, warn or error): %s", level)
}

// ValidateConcurrency validates a worker count (1-1024)
func ValidateConcurrency(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid concurrency: %s", value)
	}

	if n < 1 || n > MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d, got: %d", MaxConcurrency, n)
	}

	return nil
}

// ParseFileMode parses an octal permission string such as "0644" or "755"
func ParseFileMode(value string) (os.FileMode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("file mode cannot be empty")
	}

	mode, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal file mode: %s", value)
	}

	if mode > 0777 {
		return 0, fmt.Errorf("file mode must only contain permission bits (max 0777): %s", value)
	}

	return os.FileMode(mode), nil
}

// ValidateFileMode validates an octal permission string
func ValidateFileMode(value string) error {
	_, err := ParseFileMode(value)
	return err
}

// ValidateBool validates a boolean string (true/false, yes/no, 1/0)
func ValidateBool(value string) error {
	if _, err := ParseBool(value); err != nil {
		return err
	}
	return nil
}

// ParseBool parses true/false, yes/no, on/off and 1/0
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value: %s", value)
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateConfigKey validates a configuration key (upper case letters, digits, underscore)
func ValidateConfigKey(key string) error {
	if key == "" {
		return fmt.Errorf("config key cannot be empty")
	}

	if key[0] >= '0' && key[0] <= '9' {
		return fmt.Errorf("config key must not start with a digit: %s", key)
	}

	for _, c := range key {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return fmt.Errorf("config key contains invalid character: %s", key)
		}
	}

	return nil
}
