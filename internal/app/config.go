package app

import (
	"io"

	"github.com/giantswarm/collabkit/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Silent discards all log output
	Silent bool

	// JSONLogs switches log output to JSON
	JSONLogs bool

	// Custom configuration path (optional)
	// When empty, ~/.config/collabkit is used
	ConfigPath string

	// LogOutput receives log output; defaults to os.Stderr
	LogOutput io.Writer

	// Runtime configuration. When set, no file is loaded.
	RuntimeConfig *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug, silent bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		Silent:     silent,
		ConfigPath: configPath,
	}
}
