package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/giantswarm/collabkit/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/collabkit"
	configFileName = "config.yaml"

	// Environment variables that override credentials from the file.
	EnvAppID     = "COLLABKIT_APP_ID"
	EnvAppSecret = "COLLABKIT_APP_SECRET"
	EnvBaseURL   = "COLLABKIT_BASE_URL"
	// EnvFeatures is a comma separated list; "ai" enables, "-ai" disables.
	EnvFeatures = "COLLABKIT_FEATURES"
)

// osUserHomeDir is a package variable so tests can redirect it.
var osUserHomeDir = os.UserHomeDir

// GetDefaultConfigPath returns the user configuration directory.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads configuration from a single specified directory.
// The directory should contain config.yaml; a missing file yields the defaults.
// Environment overrides are applied last.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)

	config, err := LoadConfigFile(configFilePath)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfigFile loads a single YAML file on top of the defaults.
func LoadConfigFile(configFilePath string) (Config, error) {
	config := GetDefaultConfig() // Start with default config

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			applyEnvOverrides(&config)
			return config, nil
		}
		logging.Error("ConfigLoader", err, "Error loading config from %s", configFilePath)
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}

	config, err = Parse(data)
	if err != nil {
		return Config{}, NewParseError(configFilePath, err)
	}

	applyEnvOverrides(&config)
	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}

// Parse decodes YAML data on top of the defaults. Feature maps are merged so
// a file only needs to mention the features it changes.
func Parse(data []byte) (Config, error) {
	config := GetDefaultConfig()
	defaultFeatures := config.Features

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return Config{}, err
	}

	if fromFile.App.AppID != "" {
		config.App.AppID = fromFile.App.AppID
	}
	if fromFile.App.AppSecret != "" {
		config.App.AppSecret = fromFile.App.AppSecret
	}
	if fromFile.App.BaseURL != "" {
		config.App.BaseURL = fromFile.App.BaseURL
	}

	config.Features = make(map[string]bool, len(defaultFeatures)+len(fromFile.Features))
	for name, enabled := range defaultFeatures {
		config.Features[name] = enabled
	}
	for name, enabled := range fromFile.Features {
		config.Features[name] = enabled
	}

	if fromFile.Services != nil {
		config.Services = fromFile.Services
	}
	if fromFile.Dependencies != nil {
		config.Dependencies = fromFile.Dependencies
	}
	if fromFile.Logging.Level != "" {
		config.Logging.Level = fromFile.Logging.Level
	}
	if fromFile.Logging.Format != "" {
		config.Logging.Format = fromFile.Logging.Format
	}

	return config, nil
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv(EnvAppID); v != "" {
		config.App.AppID = v
	}
	if v := os.Getenv(EnvAppSecret); v != "" {
		config.App.AppSecret = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		config.App.BaseURL = v
	}
	if v := os.Getenv(EnvFeatures); v != "" {
		if config.Features == nil {
			config.Features = make(map[string]bool)
		}
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if strings.HasPrefix(item, "-") {
				config.Features[strings.TrimPrefix(item, "-")] = false
			} else {
				config.Features[item] = true
			}
		}
		logging.Debug("ConfigLoader", "Applied feature overrides from %s", EnvFeatures)
	}
}
