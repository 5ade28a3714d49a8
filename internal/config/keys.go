package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Logging
	KeyLogLevel = "LOG_LEVEL"
	KeyLogDev   = "LOG_DEV"

	// Facade behaviour
	KeyConcurrency = "CONCURRENCY" // Files processed at once by cp, mv and cat
	KeyFileMode    = "FILE_MODE"   // Permission for files created by touch
	KeyDirMode     = "DIR_MODE"    // Permission for directories created by mkdir

	// Terminal output
	KeyNoColor          = "NO_COLOR"
	KeyConfirmOverwrite = "CONFIRM_OVERWRITE" // Ask before cp/mv replace an existing file
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyLogLevel:         "warn",
	KeyLogDev:           "false",
	KeyConcurrency:      "16",
	KeyFileMode:         "0644",
	KeyDirMode:          "0755",
	KeyNoColor:          "false",
	KeyConfirmOverwrite: "false",
}

// KnownKeys returns every key tshell understands, in display order.
func KnownKeys() []string {
	return []string{
		KeyLogLevel,
		KeyLogDev,
		KeyConcurrency,
		KeyFileMode,
		KeyDirMode,
		KeyNoColor,
		KeyConfirmOverwrite,
	}
}
