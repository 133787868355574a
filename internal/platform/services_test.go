package platform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
)

func validConfig() config.ServiceConfig {
	return config.ServiceConfig{
		BaseURL:  "https://open.example.com",
		Timeout:  10 * time.Second,
		Settings: map[string]string{},
	}
}

func TestNew(t *testing.T) {
	for _, name := range api.KnownServices() {
		svc, err := New(name, config.AppCredentials{})
		require.NoError(t, err, name)
		assert.Equal(t, name, svc.Name())
		assert.Equal(t, Version, svc.Version())
		assert.False(t, svc.IsConfigured())
	}

	_, err := New("calendar", config.AppCredentials{})
	assert.True(t, api.IsNotFound(err))
}

func TestConfigureLifecycle(t *testing.T) {
	ctx := context.Background()
	services := []Configurable{NewCommunication(), NewHR(), NewDocs()}

	for _, svc := range services {
		t.Run(svc.Name(), func(t *testing.T) {
			require.NoError(t, svc.Configure(ctx, validConfig()))
			assert.True(t, svc.IsConfigured())

			svc.Reset()
			assert.False(t, svc.IsConfigured())
		})
	}
}

func TestConfigure_InvalidBaseURL(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"no scheme", "open.example.com"},
		{"ftp", "ftp://open.example.com"},
		{"unparseable", "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDocs()
			sc := validConfig()
			sc.BaseURL = tt.baseURL
			assert.Error(t, svc.Configure(ctx, sc))
			assert.False(t, svc.IsConfigured())
		})
	}
}

func TestConfigure_FailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	svc := NewHR()
	require.NoError(t, svc.Configure(ctx, validConfig()))

	bad := validConfig()
	bad.Timeout = -time.Second
	assert.Error(t, svc.Configure(ctx, bad))
	assert.True(t, svc.IsConfigured())
	assert.Equal(t, 10*time.Second, svc.Settings().Timeout)
}

func TestConfigure_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewCommunication()
	err := svc.Configure(ctx, validConfig())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, svc.IsConfigured())
}

func TestAI_RequiresModel(t *testing.T) {
	ctx := context.Background()
	ai := NewAI()

	err := ai.Configure(ctx, validConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"model"`)
	assert.False(t, ai.IsConfigured())
	assert.Equal(t, "", ai.Model())

	sc := validConfig()
	sc.Settings[AISettingModel] = "large"
	require.NoError(t, ai.Configure(ctx, sc))
	assert.True(t, ai.IsConfigured())
	assert.Equal(t, "large", ai.Model())

	assert.Equal(t, []string{AISettingModel}, RequiredKeys(api.ServiceAI))
	assert.Nil(t, RequiredKeys(api.ServiceDocs))
}

func TestAuth_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credentials", func(t *testing.T) {
		auth := NewAuth(config.AppCredentials{AppID: "cli_1"})
		err := auth.Configure(ctx, validConfig())
		assert.ErrorIs(t, err, ErrMissingCredentials)
		assert.False(t, auth.IsConfigured())
		assert.Nil(t, auth.OAuthConfig())
	})

	t.Run("builds client credentials config", func(t *testing.T) {
		auth := NewAuth(config.AppCredentials{AppID: "cli_1", AppSecret: "s"})
		sc := validConfig()
		sc.BaseURL = "https://open.example.com/"
		sc.Settings[AuthSettingScopes] = "contact:read  im:write"

		require.NoError(t, auth.Configure(ctx, sc))
		assert.True(t, auth.IsConfigured())

		oc := auth.OAuthConfig()
		require.NotNil(t, oc)
		assert.Equal(t, "cli_1", oc.ClientID)
		assert.Equal(t, "s", oc.ClientSecret)
		assert.Equal(t, "https://open.example.com"+defaultTokenPath, oc.TokenURL)
		assert.Equal(t, []string{"contact:read", "im:write"}, oc.Scopes)

		// Returned config is a copy.
		oc.Scopes[0] = "changed"
		assert.Equal(t, "contact:read", auth.OAuthConfig().Scopes[0])
	})

	t.Run("custom token path", func(t *testing.T) {
		auth := NewAuth(config.AppCredentials{AppID: "cli_1", AppSecret: "s"})
		sc := validConfig()
		sc.Settings[AuthSettingTokenPath] = "oauth/token"

		require.NoError(t, auth.Configure(ctx, sc))
		assert.Equal(t, "https://open.example.com/oauth/token", auth.OAuthConfig().TokenURL)
	})

	t.Run("reset clears oauth config", func(t *testing.T) {
		auth := NewAuth(config.AppCredentials{AppID: "cli_1", AppSecret: "s"})
		require.NoError(t, auth.Configure(ctx, validConfig()))

		auth.Reset()
		assert.False(t, auth.IsConfigured())
		assert.Nil(t, auth.OAuthConfig())
	})
}
