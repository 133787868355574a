package config

import (
	"time"

	"github.com/giantswarm/collabkit/internal/api"
)

const (
	// DefaultBaseURL is the platform API endpoint used when none is configured
	DefaultBaseURL = "https://open.example.com"

	// DefaultServiceTimeout is the per-service request timeout
	DefaultServiceTimeout = 30 * time.Second
)

// GetDefaultConfig returns the default configuration. Communication and auth
// are on; the remaining subsystems are opt-in.
func GetDefaultConfig() Config {
	return Config{
		App: AppCredentials{
			BaseURL: DefaultBaseURL,
		},
		Features: map[string]bool{
			api.ServiceAuth:          true,
			api.ServiceCommunication: true,
			api.ServiceHR:            false,
			api.ServiceDocs:          false,
			api.ServiceAI:            false,
		},
		Services:     map[string]ServiceConfig{},
		Dependencies: map[string][]string{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
