package services

// Service is the capability every registrable service implements. The
// registry stores services behind this interface; typed access goes through
// Lookup, which checks the concrete type instead of trusting the caller.
type Service interface {
	Name() string
}

// Readiness is an optional interface for services that can report whether
// they have been configured. The registry never consults it; adapters do.
type Readiness interface {
	IsConfigured() bool
}

// Versioned is an optional interface for services that report a version.
type Versioned interface {
	Version() string
}

// ServiceRegistry manages all registered services
type ServiceRegistry interface {
	// Register adds a service; it fails with AlreadyRegisteredError if the name is taken
	Register(name string, service Service, descriptor Descriptor) error

	// Replace overwrites the entry under name, registering it if absent
	Replace(name string, service Service, descriptor Descriptor) error

	// Get returns the entry registered under name
	Get(name string) (Entry, error)

	// Descriptor returns the descriptor registered under name
	Descriptor(name string) (Descriptor, error)

	// DiscoverServices returns all registered names in registration order
	DiscoverServices() []string

	// Entries returns a snapshot of all entries in registration order
	Entries() []Entry

	// IsServiceAvailable reports whether name is registered
	IsServiceAvailable(name string) bool

	// Len returns the number of registered services
	Len() int
}
