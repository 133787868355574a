// Package api is the shared vocabulary of the collabkit composition runtime.
//
// It holds the error taxonomy, the ServiceAdapter capability interface, the
// adapter Dispatcher and a small service locator through which higher layers
// (the per-endpoint request builders) reach the registry and dispatcher
// built during client construction.
//
// # Service Locator Pattern
//
// The api package imports no other internal package. Implementations live in
// their own packages and register themselves here:
//
//	registryAdapter := services.NewRegistryAdapter(registry)
//	registryAdapter.Register()
//
//	api.RegisterDispatcher(dispatcher)
//
// Consumers then resolve them by name:
//
//	adapter, err := api.GetAdapter("docs")
//
// # Error Taxonomy
//
//   - NotFoundError: an unknown service or adapter. Recoverable.
//   - CircularDependencyError: the dependency graph has a cycle. Fatal to startup.
//   - MissingDependenciesError: a dependency names an unknown service. Fatal to startup.
//   - AlreadyRegisteredError: Register called twice for one name.
//   - TypeMismatchError: a typed lookup asked for the wrong concrete type.
//   - ConfigureError: one service failed to configure. Logged, never fatal.
//
// Each kind has an Is* predicate built on errors.As, so wrapped errors match.
//
// # Availability
//
// Dispatcher.IsServiceAvailable asks the adapter (the service is configured
// and ready). ServiceRegistryHandler.IsServiceAvailable only checks that the
// name is registered. Both are needed and they are not interchangeable.
//
// # Thread Safety
//
// The locator and Dispatcher are guarded by sync.RWMutex and may be used from
// any goroutine.
package api
