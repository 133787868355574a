// Package services provides the name-keyed service registry.
//
// A Service is anything with a Name. The registry stores one Entry per name
// together with an immutable Descriptor (display name, description, version
// and tags) and a registration ID. Entries are kept in registration order and
// are never removed.
//
// # Registration Policy
//
// Register refuses a name that is already taken and returns an
// *api.AlreadyRegisteredError. Replace is the explicit overwrite: it swaps
// the service and descriptor but keeps the original position, so
// DiscoverServices still reflects first-registration order.
//
// # Typed Access
//
// The registry is type-erased. Lookup recovers the concrete type with a
// checked assertion:
//
//	docs, err := services.Lookup[*platform.Docs](registry, "docs")
//	if api.IsTypeMismatch(err) {
//	    // registered under "docs", but not a *platform.Docs
//	}
//
// # Availability
//
// IsServiceAvailable checks presence only. Whether a service is configured
// and usable is answered by its adapter through api.Dispatcher.
//
// # Thread Safety
//
// The registry is guarded by a sync.RWMutex. RegistryAdapter exposes it to
// the api service locator.
package services
