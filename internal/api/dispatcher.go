package api

import (
	"context"
	"sort"
	"sync"

	"github.com/giantswarm/collabkit/pkg/logging"
)

// Dispatcher is a name-indexed collection of service adapters. Callers use it
// to reach a specific subsystem by name.
//
// Dispatcher.IsServiceAvailable asks the adapter whether its service is ready,
// while the service registry's IsServiceAvailable only checks presence. The
// two answer different questions and are kept separate.
type Dispatcher struct {
	mu       sync.RWMutex
	adapters map[string]ServiceAdapter
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		adapters: make(map[string]ServiceAdapter),
	}
}

// RegisterAdapter stores the adapter under adapter.Name(), replacing any
// previous adapter with the same name. Nil adapters, including typed nil
// pointers whose methods cannot be called, are logged and ignored.
func (d *Dispatcher) RegisterAdapter(adapter ServiceAdapter) {
	name, version, ok := describeAdapter(adapter)
	if !ok {
		logging.Warn("Dispatcher", "Ignoring nil adapter registration")
		return
	}

	d.mu.Lock()
	_, replaced := d.adapters[name]
	d.adapters[name] = adapter
	d.mu.Unlock()

	if replaced {
		logging.Debug("Dispatcher", "Replaced adapter %s", name)
	} else {
		logging.Debug("Dispatcher", "Registered adapter %s (version %s)", name, version)
	}
}

// describeAdapter reads the name and version of adapter. ok is false for a nil
// interface and for a typed nil pointer that panics when asked for its name.
func describeAdapter(adapter ServiceAdapter) (name, version string, ok bool) {
	if adapter == nil {
		return "", "", false
	}
	defer func() {
		if recover() != nil {
			name, version, ok = "", "", false
		}
	}()
	return adapter.Name(), adapter.Version(), true
}

// GetAdapter returns the adapter registered under name.
func (d *Dispatcher) GetAdapter(name string) (ServiceAdapter, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	adapter, ok := d.adapters[name]
	return adapter, ok
}

// MustAdapter returns the adapter registered under name or a NotFoundError.
func (d *Dispatcher) MustAdapter(name string) (ServiceAdapter, error) {
	adapter, ok := d.GetAdapter(name)
	if !ok {
		return nil, NewAdapterNotFoundError(name)
	}
	return adapter, nil
}

// ListServices returns the registered adapter names in lexical order.
func (d *Dispatcher) ListServices() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.adapters))
	for name := range d.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsServiceAvailable delegates to the adapter's IsAvailable. Unknown names
// are unavailable.
func (d *Dispatcher) IsServiceAvailable(name string) bool {
	adapter, ok := d.GetAdapter(name)
	if !ok {
		return false
	}
	return adapter.IsAvailable()
}

// HealthReport runs HealthCheck on every adapter and returns the results by name.
// It is an on-demand snapshot; nothing polls in the background.
func (d *Dispatcher) HealthReport(ctx context.Context) map[string]bool {
	d.mu.RLock()
	adapters := make([]ServiceAdapter, 0, len(d.adapters))
	for _, adapter := range d.adapters {
		adapters = append(adapters, adapter)
	}
	d.mu.RUnlock()

	// Health checks run outside the lock; an adapter may be slow.
	report := make(map[string]bool, len(adapters))
	for _, adapter := range adapters {
		report[adapter.Name()] = adapter.HealthCheck(ctx)
	}
	return report
}
