package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceConfigFor(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Services = map[string]ServiceConfig{
		"ai": {
			Timeout:  5 * time.Second,
			Settings: map[string]string{"model": "small"},
		},
		"docs": {BaseURL: "https://docs.example.com"},
	}

	t.Run("explicit block keeps its values", func(t *testing.T) {
		sc, ok := cfg.ServiceConfigFor("ai")
		assert.True(t, ok)
		assert.Equal(t, 5*time.Second, sc.Timeout)
		assert.Equal(t, DefaultBaseURL, sc.BaseURL)
		model, ok := sc.Setting("model")
		assert.True(t, ok)
		assert.Equal(t, "small", model)
	})

	t.Run("base url override", func(t *testing.T) {
		sc, ok := cfg.ServiceConfigFor("docs")
		assert.True(t, ok)
		assert.Equal(t, "https://docs.example.com", sc.BaseURL)
		assert.Equal(t, DefaultServiceTimeout, sc.Timeout)
	})

	t.Run("missing block gets defaults", func(t *testing.T) {
		sc, ok := cfg.ServiceConfigFor("hr")
		assert.False(t, ok)
		assert.Equal(t, DefaultBaseURL, sc.BaseURL)
		assert.Equal(t, DefaultServiceTimeout, sc.Timeout)
		assert.NotNil(t, sc.Settings)
	})

	t.Run("settings are copied", func(t *testing.T) {
		sc, _ := cfg.ServiceConfigFor("ai")
		sc.Settings["model"] = "changed"
		assert.Equal(t, "small", cfg.Services["ai"].Settings["model"])
	})
}

func TestServiceConfig_SettingEmptyValue(t *testing.T) {
	sc := ServiceConfig{Settings: map[string]string{"model": ""}}
	_, ok := sc.Setting("model")
	assert.False(t, ok)
}
