package platform

import (
	"context"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
)

// Communication is the messaging subsystem.
type Communication struct{ state }

// NewCommunication creates an unconfigured Communication service.
func NewCommunication() *Communication {
	return &Communication{state: newState(api.ServiceCommunication)}
}

// Configure applies sc.
func (c *Communication) Configure(ctx context.Context, sc config.ServiceConfig) error {
	return c.apply(ctx, sc)
}

// HR is the people directory subsystem.
type HR struct{ state }

// NewHR creates an unconfigured HR service.
func NewHR() *HR {
	return &HR{state: newState(api.ServiceHR)}
}

// Configure applies sc.
func (h *HR) Configure(ctx context.Context, sc config.ServiceConfig) error {
	return h.apply(ctx, sc)
}

// Docs is the documents subsystem.
type Docs struct{ state }

// NewDocs creates an unconfigured Docs service.
func NewDocs() *Docs {
	return &Docs{state: newState(api.ServiceDocs)}
}

// Configure applies sc.
func (d *Docs) Configure(ctx context.Context, sc config.ServiceConfig) error {
	return d.apply(ctx, sc)
}

// AISettingModel names the model used by the AI service.
const AISettingModel = "model"

// AI is the assistant subsystem. It needs a model setting.
type AI struct{ state }

// NewAI creates an unconfigured AI service.
func NewAI() *AI {
	return &AI{state: newState(api.ServiceAI)}
}

// Configure applies sc. The "model" setting is required.
func (a *AI) Configure(ctx context.Context, sc config.ServiceConfig) error {
	return a.apply(ctx, sc, AISettingModel)
}

// Model returns the configured model, or "" when unconfigured.
func (a *AI) Model() string {
	return a.Settings().Settings[AISettingModel]
}

// RequiredKeys returns the settings each service refuses to configure without.
func RequiredKeys(name string) []string {
	switch name {
	case api.ServiceAI:
		return []string{AISettingModel}
	default:
		return nil
	}
}
