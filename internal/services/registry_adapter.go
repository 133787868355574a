package services

import (
	"github.com/giantswarm/collabkit/internal/api"
)

// RegistryAdapter adapts the ServiceRegistry to implement api.ServiceRegistryHandler
type RegistryAdapter struct {
	registry ServiceRegistry
}

// NewRegistryAdapter creates a new registry adapter
func NewRegistryAdapter(r ServiceRegistry) *RegistryAdapter {
	return &RegistryAdapter{registry: r}
}

// Get returns a service by name
func (r *RegistryAdapter) Get(name string) (api.ServiceInfo, bool) {
	entry, err := r.registry.Get(name)
	if err != nil {
		return nil, false
	}
	return &serviceInfoAdapter{entry: entry}, true
}

// GetAll returns all registered services in registration order
func (r *RegistryAdapter) GetAll() []api.ServiceInfo {
	entries := r.registry.Entries()
	result := make([]api.ServiceInfo, 0, len(entries))
	for _, entry := range entries {
		result = append(result, &serviceInfoAdapter{entry: entry})
	}
	return result
}

// IsServiceAvailable reports presence, matching ServiceRegistry.IsServiceAvailable
func (r *RegistryAdapter) IsServiceAvailable(name string) bool {
	return r.registry.IsServiceAvailable(name)
}

// Register registers this adapter with the API package
func (r *RegistryAdapter) Register() {
	api.RegisterServiceRegistry(r)
}

// serviceInfoAdapter adapts an Entry to implement api.ServiceInfo
type serviceInfoAdapter struct {
	entry Entry
}

func (s *serviceInfoAdapter) GetName() string {
	return s.entry.Name
}

func (s *serviceInfoAdapter) GetDisplayName() string {
	return s.entry.Descriptor.DisplayName()
}

func (s *serviceInfoAdapter) GetDescription() string {
	return s.entry.Descriptor.Description()
}

func (s *serviceInfoAdapter) GetVersion() string {
	if v := s.entry.Descriptor.Version(); v != "" {
		return v
	}
	if versioned, ok := s.entry.Service.(Versioned); ok {
		return versioned.Version()
	}
	return ""
}

func (s *serviceInfoAdapter) GetTags() []string {
	return s.entry.Descriptor.Tags()
}

func (s *serviceInfoAdapter) GetRegistrationID() string {
	return s.entry.RegistrationID
}
