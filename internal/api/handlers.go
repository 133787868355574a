package api

import (
	"sync"

	"github.com/giantswarm/collabkit/pkg/logging"
)

// Handler registry variables store the registered implementations.
// These variables are protected by handlerMutex for thread-safe access.
var (
	registryHandler ServiceRegistryHandler
	dispatcher      *Dispatcher

	// handlerMutex protects all handler registry operations for thread-safe registration and access.
	handlerMutex sync.RWMutex
)

// RegisterServiceRegistry registers the service registry handler implementation.
// Subsequent registrations replace the previous handler.
//
// Thread-safe: Yes, protected by handlerMutex.
//
// Example:
//
//	adapter := services.NewRegistryAdapter(registry)
//	adapter.Register()
func RegisterServiceRegistry(h ServiceRegistryHandler) {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	logging.Debug("API", "Registering service registry handler: %v", h != nil)
	registryHandler = h
}

// GetServiceRegistry returns the registered service registry handler, or nil
// if none has been registered yet.
//
// Thread-safe: Yes, protected by handlerMutex read lock.
func GetServiceRegistry() ServiceRegistryHandler {
	handlerMutex.RLock()
	defer handlerMutex.RUnlock()
	return registryHandler
}

// RegisterDispatcher registers the adapter dispatcher built during client
// construction. Subsequent registrations replace the previous dispatcher.
func RegisterDispatcher(d *Dispatcher) {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	logging.Debug("API", "Registering dispatcher: %v", d != nil)
	dispatcher = d
}

// GetDispatcher returns the registered dispatcher, or nil.
func GetDispatcher() *Dispatcher {
	handlerMutex.RLock()
	defer handlerMutex.RUnlock()
	return dispatcher
}

// GetAdapter resolves an adapter by name through the registered dispatcher.
//
// Example:
//
//	adapter, err := api.GetAdapter("docs")
//	if err != nil {
//	    return err
//	}
//	if !adapter.IsAvailable() {
//	    return fmt.Errorf("docs service is not configured")
//	}
func GetAdapter(name string) (ServiceAdapter, error) {
	d := GetDispatcher()
	if d == nil {
		return nil, ErrDispatcherNotRegistered
	}
	return d.MustAdapter(name)
}

// resetHandlers clears the locator. Used by tests.
func resetHandlers() {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	registryHandler = nil
	dispatcher = nil
}
