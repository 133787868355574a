package api

import "context"

// ServiceAdapter is the uniform capability interface exposed by every typed
// facade over a concrete service.
//
// IsAvailable is derived from the wrapped service's own readiness, never
// stored by the dispatcher, so a service can become unavailable without any
// dispatcher-level transition.
type ServiceAdapter interface {
	Name() string
	Version() string
	IsAvailable() bool

	// HealthCheck reports whether the service is healthy. Adapters embedding
	// BaseAdapter get the default of returning IsAvailable().
	HealthCheck(ctx context.Context) bool
}

// BaseAdapter carries the name and version of an adapter and provides the
// default HealthCheck. Embed it and pass the wrapped service's readiness
// predicate.
type BaseAdapter struct {
	name      string
	version   string
	available func() bool
}

// NewBaseAdapter creates a BaseAdapter. A nil available func means the
// adapter is never available.
func NewBaseAdapter(name, version string, available func() bool) BaseAdapter {
	return BaseAdapter{name: name, version: version, available: available}
}

// Name returns the adapter name, used as the dispatcher key.
func (b BaseAdapter) Name() string {
	return b.name
}

// Version returns the adapter version.
func (b BaseAdapter) Version() string {
	return b.version
}

// IsAvailable evaluates the wrapped service's readiness.
func (b BaseAdapter) IsAvailable() bool {
	if b.available == nil {
		return false
	}
	return b.available()
}

// HealthCheck returns IsAvailable().
func (b BaseAdapter) HealthCheck(ctx context.Context) bool {
	return b.IsAvailable()
}
