package features

import (
	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/platform"
)

// Flag describes one feature and whether it is enabled.
type Flag struct {
	Name        string
	DisplayName string
	Description string

	// Dependencies are soft: a disabled dependency produces a warning only.
	Dependencies []string

	// RequiredConfigKeys must be present in the feature's service settings
	// for the service to configure.
	RequiredConfigKeys []string

	Enabled bool
}

// Set is the runtime feature selection, feature name to enabled.
type Set map[string]bool

// catalog lists every known feature in registration-preference order.
var catalog = []Flag{
	{
		Name:        api.ServiceAuth,
		DisplayName: "Authentication",
		Description: "Application credentials and token endpoint configuration",
	},
	{
		Name:        api.ServiceCommunication,
		DisplayName: "Communication",
		Description: "Messages, chats and groups",
	},
	{
		Name:        api.ServiceHR,
		DisplayName: "HR",
		Description: "Employee directory and attendance",
	},
	{
		Name:        api.ServiceDocs,
		DisplayName: "Docs",
		Description: "Documents, sheets and drive",
	},
	{
		Name:         api.ServiceAI,
		DisplayName:  "AI",
		Description:  "Assistant and text generation",
		Dependencies: []string{api.ServiceAuth},
	},
}

// Catalog returns a copy of the known features, all disabled.
func Catalog() []Flag {
	out := make([]Flag, 0, len(catalog))
	for _, f := range catalog {
		out = append(out, f.clone())
	}
	return out
}

func isKnown(name string) bool {
	for _, f := range catalog {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (f Flag) clone() Flag {
	f.Dependencies = append([]string(nil), f.Dependencies...)
	f.RequiredConfigKeys = append([]string(nil), platform.RequiredKeys(f.Name)...)
	return f
}
