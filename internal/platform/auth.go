package platform

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
)

const (
	// AuthSettingTokenPath overrides the token endpoint path.
	AuthSettingTokenPath = "tokenPath"
	// AuthSettingScopes is a space separated scope list.
	AuthSettingScopes = "scopes"

	defaultTokenPath = "/open-apis/auth/v3/app_access_token"
)

// ErrMissingCredentials is returned by Auth.Configure without app credentials.
var ErrMissingCredentials = errors.New("app id and app secret are required")

// Auth holds the client-credentials configuration of the application. It does
// not fetch or cache tokens.
type Auth struct {
	state

	creds config.AppCredentials

	oauthMu sync.RWMutex
	oauth   *clientcredentials.Config
}

// NewAuth creates an unconfigured Auth service for the given credentials.
func NewAuth(creds config.AppCredentials) *Auth {
	return &Auth{
		state: newState(api.ServiceAuth),
		creds: creds,
	}
}

// Configure validates the credentials and builds the OAuth2 client-credentials
// configuration against sc.BaseURL.
func (a *Auth) Configure(ctx context.Context, sc config.ServiceConfig) error {
	if a.creds.AppID == "" || a.creds.AppSecret == "" {
		return ErrMissingCredentials
	}
	if err := a.apply(ctx, sc); err != nil {
		return err
	}

	tokenPath := defaultTokenPath
	if p, ok := sc.Setting(AuthSettingTokenPath); ok {
		tokenPath = "/" + strings.TrimPrefix(p, "/")
	}
	var scopes []string
	if s, ok := sc.Setting(AuthSettingScopes); ok {
		scopes = strings.Fields(s)
	}

	a.oauthMu.Lock()
	a.oauth = &clientcredentials.Config{
		ClientID:     a.creds.AppID,
		ClientSecret: a.creds.AppSecret,
		TokenURL:     strings.TrimSuffix(sc.BaseURL, "/") + tokenPath,
		Scopes:       scopes,
	}
	a.oauthMu.Unlock()
	return nil
}

// OAuthConfig returns a copy of the client-credentials configuration, or nil
// when the service is not configured.
func (a *Auth) OAuthConfig() *clientcredentials.Config {
	if !a.IsConfigured() {
		return nil
	}
	a.oauthMu.RLock()
	defer a.oauthMu.RUnlock()
	if a.oauth == nil {
		return nil
	}
	cp := *a.oauth
	cp.Scopes = append([]string(nil), a.oauth.Scopes...)
	return &cp
}

// Reset drops the OAuth configuration and marks the service unconfigured.
func (a *Auth) Reset() {
	a.state.Reset()
	a.oauthMu.Lock()
	a.oauth = nil
	a.oauthMu.Unlock()
}
