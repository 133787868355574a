package services

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/metrics"
	"github.com/giantswarm/collabkit/pkg/logging"
)

// Entry is one registered service together with its descriptor.
type Entry struct {
	Name           string
	Service        Service
	Descriptor     Descriptor
	RegistrationID string
	RegisteredAt   time.Time
}

// registry is a simple implementation of ServiceRegistry. Entries are kept in
// registration order; there is no removal.
type registry struct {
	mu       sync.RWMutex
	services map[string]*Entry
	order    []string
	metrics  *metrics.Metrics
}

// RegistryOption configures a registry.
type RegistryOption func(*registry)

// WithMetrics reports the registry size to m.
func WithMetrics(m *metrics.Metrics) RegistryOption {
	return func(r *registry) {
		r.metrics = m
	}
}

// NewRegistry creates a new service registry
func NewRegistry(opts ...RegistryOption) ServiceRegistry {
	r := &registry{
		services: make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func validateRegistration(name string, service Service) error {
	if service == nil {
		return fmt.Errorf("cannot register nil service")
	}
	if name == "" {
		return fmt.Errorf("service has empty name")
	}
	return nil
}

// Register adds a service to the registry
func (r *registry) Register(name string, service Service, descriptor Descriptor) error {
	if err := validateRegistration(name, service); err != nil {
		return err
	}

	r.mu.Lock()
	if _, exists := r.services[name]; exists {
		r.mu.Unlock()
		return &api.AlreadyRegisteredError{Name: name}
	}
	entry := newEntry(name, service, descriptor)
	r.services[name] = entry
	r.order = append(r.order, name)
	size := len(r.services)
	r.mu.Unlock()

	r.metrics.SetRegisteredServices(size)
	logging.Debug("Registry", "Registered service %s (version %s, id %s)", name, descriptor.Version(), entry.RegistrationID)
	return nil
}

// Replace overwrites the entry under name. The name keeps its original
// position in DiscoverServices.
func (r *registry) Replace(name string, service Service, descriptor Descriptor) error {
	if err := validateRegistration(name, service); err != nil {
		return err
	}

	r.mu.Lock()
	_, existed := r.services[name]
	entry := newEntry(name, service, descriptor)
	r.services[name] = entry
	if !existed {
		r.order = append(r.order, name)
	}
	size := len(r.services)
	r.mu.Unlock()

	r.metrics.SetRegisteredServices(size)
	if existed {
		logging.Info("Registry", "Replaced service %s (id %s)", name, entry.RegistrationID)
	} else {
		logging.Debug("Registry", "Registered service %s through replace (id %s)", name, entry.RegistrationID)
	}
	return nil
}

func newEntry(name string, service Service, descriptor Descriptor) *Entry {
	return &Entry{
		Name:           name,
		Service:        service,
		Descriptor:     descriptor,
		RegistrationID: uuid.NewString(),
		RegisteredAt:   time.Now(),
	}
}

// Get returns a service entry by name
func (r *registry) Get(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.services[name]
	if !exists {
		return Entry{}, api.NewServiceNotFoundError(name)
	}
	return *entry, nil
}

// Descriptor returns the descriptor registered under name
func (r *registry) Descriptor(name string) (Descriptor, error) {
	entry, err := r.Get(name)
	if err != nil {
		return Descriptor{}, err
	}
	return entry.Descriptor, nil
}

// DiscoverServices returns all registered names in registration order
func (r *registry) DiscoverServices() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Entries returns all entries in registration order
func (r *registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, *r.services[name])
	}
	return entries
}

// IsServiceAvailable reports presence only
func (r *registry) IsServiceAvailable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.services[name]
	return exists
}

// Len returns the number of registered services
func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.services)
}

// Lookup returns the service registered under name as a T. It fails with a
// NotFoundError when the name is unknown and with a TypeMismatchError when the
// stored service is not a T.
//
// Example:
//
//	docs, err := services.Lookup[*platform.Docs](registry, "docs")
func Lookup[T Service](r ServiceRegistry, name string) (T, error) {
	var zero T

	entry, err := r.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := entry.Service.(T)
	if !ok {
		return zero, &api.TypeMismatchError{
			Name: name,
			Want: reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:  fmt.Sprintf("%T", entry.Service),
		}
	}
	return typed, nil
}
