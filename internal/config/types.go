package config

import (
	"time"
)

// Config is the top-level configuration consumed by the composition runtime.
// It is treated as immutable once loaded.
type Config struct {
	App AppCredentials `yaml:"app"`

	// Features enables or disables optional subsystems by name.
	Features map[string]bool `yaml:"features,omitempty" validate:"dive,keys,required,endkeys"`

	// Services holds optional per-service configuration blocks.
	Services map[string]ServiceConfig `yaml:"services,omitempty" validate:"dive,keys,required,endkeys"`

	// Dependencies declares extra startup-ordering edges between services,
	// on top of the built-in feature dependencies.
	Dependencies map[string][]string `yaml:"dependencies,omitempty" validate:"dive,keys,required,endkeys,dive,required"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// AppCredentials identifies the application against the platform.
type AppCredentials struct {
	AppID     string `yaml:"appId,omitempty"`
	AppSecret string `yaml:"appSecret,omitempty"`
	BaseURL   string `yaml:"baseUrl,omitempty" validate:"omitempty,url"` // Platform API base URL (default: https://open.example.com)
}

// ServiceConfig is the configuration block of a single service.
type ServiceConfig struct {
	BaseURL  string            `yaml:"baseUrl,omitempty" validate:"omitempty,url"` // Overrides App.BaseURL for this service
	Timeout  time.Duration     `yaml:"timeout,omitempty" validate:"gte=0"`         // Request timeout handed to the transport (default: 30s)
	Settings map[string]string `yaml:"settings,omitempty"`                         // Service-specific keys, e.g. "model" for ai
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`                                       // debug, info, warn, error (default: info)
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=text json"` // text or json (default: text)
}

// FeatureEnabled reports whether the named feature is switched on.
func (c Config) FeatureEnabled(name string) bool {
	return c.Features[name]
}

// ServiceConfigFor returns the configuration block for name with application
// level defaults filled in. The second result reports whether an explicit
// block exists.
func (c Config) ServiceConfigFor(name string) (ServiceConfig, bool) {
	sc, ok := c.Services[name]

	out := ServiceConfig{
		BaseURL:  sc.BaseURL,
		Timeout:  sc.Timeout,
		Settings: make(map[string]string, len(sc.Settings)),
	}
	for k, v := range sc.Settings {
		out.Settings[k] = v
	}
	if out.BaseURL == "" {
		out.BaseURL = c.App.BaseURL
	}
	if out.Timeout == 0 {
		out.Timeout = DefaultServiceTimeout
	}
	return out, ok
}

// Setting returns a service-specific setting.
func (sc ServiceConfig) Setting(key string) (string, bool) {
	v, ok := sc.Settings[key]
	return v, ok && v != ""
}
