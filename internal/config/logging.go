package config

import (
	"github.com/rshade/pokecatch/internal/logging"
)

// ToLoggingConfig converts LoggingConfig to logging.Config.
// A configured file switches output to "file"; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global Logging section. Callers apply
// flag overrides (for example --debug) to the copy.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
