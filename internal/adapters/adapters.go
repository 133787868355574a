package adapters

import (
	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
	"github.com/giantswarm/collabkit/internal/platform"
)

// CommunicationAdapter exposes the communication service.
type CommunicationAdapter struct {
	api.BaseAdapter
	service *platform.Communication
}

// NewCommunicationAdapter wraps svc.
func NewCommunicationAdapter(svc *platform.Communication) *CommunicationAdapter {
	return &CommunicationAdapter{
		BaseAdapter: api.NewBaseAdapter(svc.Name(), svc.Version(), svc.IsConfigured),
		service:     svc,
	}
}

// Service returns the wrapped service.
func (a *CommunicationAdapter) Service() *platform.Communication { return a.service }

// HRAdapter exposes the HR service.
type HRAdapter struct {
	api.BaseAdapter
	service *platform.HR
}

// NewHRAdapter wraps svc.
func NewHRAdapter(svc *platform.HR) *HRAdapter {
	return &HRAdapter{
		BaseAdapter: api.NewBaseAdapter(svc.Name(), svc.Version(), svc.IsConfigured),
		service:     svc,
	}
}

// Service returns the wrapped service.
func (a *HRAdapter) Service() *platform.HR { return a.service }

// DocsAdapter exposes the docs service.
type DocsAdapter struct {
	api.BaseAdapter
	service *platform.Docs
}

// NewDocsAdapter wraps svc.
func NewDocsAdapter(svc *platform.Docs) *DocsAdapter {
	return &DocsAdapter{
		BaseAdapter: api.NewBaseAdapter(svc.Name(), svc.Version(), svc.IsConfigured),
		service:     svc,
	}
}

// Service returns the wrapped service.
func (a *DocsAdapter) Service() *platform.Docs { return a.service }

// AIAdapter exposes the AI service.
type AIAdapter struct {
	api.BaseAdapter
	service *platform.AI
}

// NewAIAdapter wraps svc.
func NewAIAdapter(svc *platform.AI) *AIAdapter {
	return &AIAdapter{
		BaseAdapter: api.NewBaseAdapter(svc.Name(), svc.Version(), svc.IsConfigured),
		service:     svc,
	}
}

// Service returns the wrapped service.
func (a *AIAdapter) Service() *platform.AI { return a.service }

// AuthAdapter exposes the auth service.
type AuthAdapter struct {
	api.BaseAdapter
	service *platform.Auth
}

// NewAuthAdapter wraps svc.
func NewAuthAdapter(svc *platform.Auth) *AuthAdapter {
	return &AuthAdapter{
		BaseAdapter: api.NewBaseAdapter(svc.Name(), svc.Version(), svc.IsConfigured),
		service:     svc,
	}
}

// Service returns the wrapped service.
func (a *AuthAdapter) Service() *platform.Auth { return a.service }

// newAdapter builds a fresh, unconfigured service for name and returns it
// with its adapter.
func newAdapter(name string, creds config.AppCredentials) (platform.Configurable, api.ServiceAdapter, error) {
	svc, err := platform.New(name, creds)
	if err != nil {
		return nil, nil, err
	}

	switch s := svc.(type) {
	case *platform.Communication:
		return s, NewCommunicationAdapter(s), nil
	case *platform.HR:
		return s, NewHRAdapter(s), nil
	case *platform.Docs:
		return s, NewDocsAdapter(s), nil
	case *platform.AI:
		return s, NewAIAdapter(s), nil
	case *platform.Auth:
		return s, NewAuthAdapter(s), nil
	default:
		return nil, nil, api.NewAdapterNotFoundError(name)
	}
}
