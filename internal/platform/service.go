package platform

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/giantswarm/collabkit/internal/config"
)

// Version is reported by every service in this package.
const Version = "1.0.0"

// Configurable is implemented by every service in this package.
type Configurable interface {
	Name() string
	Version() string
	Configure(ctx context.Context, sc config.ServiceConfig) error
	IsConfigured() bool
	Reset()
}

// state holds the readiness shared by all services.
type state struct {
	mu         sync.RWMutex
	name       string
	configured bool
	current    config.ServiceConfig
}

func newState(name string) state {
	return state{name: name}
}

// Name returns the service name.
func (s *state) Name() string {
	return s.name
}

// Version returns the service version.
func (s *state) Version() string {
	return Version
}

// IsConfigured reports whether Configure has succeeded since the last Reset.
func (s *state) IsConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configured
}

// Reset returns the service to its unconfigured state.
func (s *state) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = false
	s.current = config.ServiceConfig{}
}

// Settings returns the configuration the service was configured with.
func (s *state) Settings() config.ServiceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// apply validates the common fields and the required keys, then marks the
// service configured. A failure leaves the previous state untouched.
func (s *state) apply(ctx context.Context, sc config.ServiceConfig, requiredKeys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateCommon(sc); err != nil {
		return err
	}
	for _, key := range requiredKeys {
		if _, ok := sc.Setting(key); !ok {
			return fmt.Errorf("missing required setting %q", key)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sc
	s.configured = true
	return nil
}

func validateCommon(sc config.ServiceConfig) error {
	if sc.BaseURL == "" {
		return fmt.Errorf("base URL is empty")
	}
	u, err := url.Parse(sc.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", sc.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", sc.BaseURL)
	}
	if sc.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
