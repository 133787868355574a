package platform

import (
	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
)

// New returns an unconfigured instance of the named service, or a NotFoundError.
func New(name string, creds config.AppCredentials) (Configurable, error) {
	switch name {
	case api.ServiceCommunication:
		return NewCommunication(), nil
	case api.ServiceHR:
		return NewHR(), nil
	case api.ServiceDocs:
		return NewDocs(), nil
	case api.ServiceAI:
		return NewAI(), nil
	case api.ServiceAuth:
		return NewAuth(creds), nil
	default:
		return nil, api.NewServiceNotFoundError(name)
	}
}
