package api

// ServiceInfo provides read-only information about a registered service.
type ServiceInfo interface {
	GetName() string
	GetDisplayName() string
	GetDescription() string
	GetVersion() string
	GetTags() []string
	GetRegistrationID() string
}

// ServiceRegistryHandler provides access to registered services
type ServiceRegistryHandler interface {
	Get(name string) (ServiceInfo, bool)
	GetAll() []ServiceInfo

	// IsServiceAvailable reports presence only; it does not consult the
	// service's readiness.
	IsServiceAvailable(name string) bool
}

// ServiceStatus is the combined registry and dispatcher view of one service.
type ServiceStatus struct {
	Name        string   `json:"name" yaml:"name"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	Version     string   `json:"version" yaml:"version"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Registered  bool     `json:"registered" yaml:"registered"`
	Available   bool     `json:"available" yaml:"available"`
}

// CollectServiceStatus merges registry presence with dispatcher availability
// for every name known to either side. Either argument may be nil.
func CollectServiceStatus(registry ServiceRegistryHandler, dispatcher *Dispatcher) []ServiceStatus {
	seen := make(map[string]int)
	var statuses []ServiceStatus

	if registry != nil {
		for _, info := range registry.GetAll() {
			seen[info.GetName()] = len(statuses)
			statuses = append(statuses, ServiceStatus{
				Name:        info.GetName(),
				DisplayName: info.GetDisplayName(),
				Version:     info.GetVersion(),
				Tags:        info.GetTags(),
				Registered:  true,
			})
		}
	}

	if dispatcher != nil {
		for _, name := range dispatcher.ListServices() {
			idx, ok := seen[name]
			if !ok {
				idx = len(statuses)
				seen[name] = idx
				statuses = append(statuses, ServiceStatus{Name: name, DisplayName: name})
				if adapter, found := dispatcher.GetAdapter(name); found {
					statuses[idx].Version = adapter.Version()
				}
			}
			statuses[idx].Available = dispatcher.IsServiceAvailable(name)
		}
	}

	return statuses
}
