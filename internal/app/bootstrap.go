package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/metrics"
	"github.com/giantswarm/collabkit/internal/services"
	"github.com/giantswarm/collabkit/pkg/logging"
)

// Application is a composed runtime: configuration loaded, services
// registered in dependency order and adapters available through the
// dispatcher.
//
// Example usage:
//
//	cfg := app.NewConfig(false, false, "")
//	application, err := app.NewApplication(ctx, cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	adapter, _ := application.Dispatcher().GetAdapter("docs")
type Application struct {
	config    *Config
	appConfig config.Config
	services  *Services
}

// NewApplication creates and initializes a new application instance with the provided configuration.
// This function performs the complete bootstrap sequence:
//
//  1. Configures logging based on debug settings
//  2. Loads configuration from cfg.ConfigPath (or uses cfg.RuntimeConfig)
//  3. Validates the configuration
//  4. Initializes services, adapters and API handlers
//
// The function returns an error if configuration loading or validation
// fails, or if the service dependencies cannot be resolved.
func NewApplication(ctx context.Context, cfg *Config) (*Application, error) {
	initLogging(cfg, "", "")

	appCfg, err := loadRuntimeConfig(cfg)
	if err != nil {
		return nil, err
	}

	// The file may ask for a different level or format; flags win.
	initLogging(cfg, appCfg.Logging.Level, appCfg.Logging.Format)

	if err := appCfg.Validate(); err != nil {
		logging.Error("Bootstrap", err, "Invalid configuration")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	svcs, err := InitializeServices(ctx, appCfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:    cfg,
		appConfig: appCfg,
		services:  svcs,
	}, nil
}

func loadRuntimeConfig(cfg *Config) (config.Config, error) {
	if cfg.RuntimeConfig != nil {
		return *cfg.RuntimeConfig, nil
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		var err error
		configPath, err = config.GetDefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	appCfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", configPath)
		return config.Config{}, fmt.Errorf("failed to load configuration from path %s: %w", configPath, err)
	}
	return appCfg, nil
}

func initLogging(cfg *Config, level, format string) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	} else if parsed, ok := logging.ParseLevel(level); ok {
		appLogLevel = parsed
	}

	var logOutput io.Writer = os.Stderr
	if cfg.LogOutput != nil {
		logOutput = cfg.LogOutput
	}
	if cfg.Silent {
		logOutput = io.Discard
	}

	if cfg.JSONLogs || format == string(logging.FormatJSON) {
		logging.InitJSON(appLogLevel, logOutput)
		return
	}
	logging.InitForCLI(appLogLevel, logOutput)
}

// Registry returns the service registry.
func (a *Application) Registry() services.ServiceRegistry {
	return a.services.Registry
}

// Dispatcher returns the adapter dispatcher.
func (a *Application) Dispatcher() *api.Dispatcher {
	return a.services.Dispatcher
}

// StartupOrder returns a copy of the resolved startup order.
func (a *Application) StartupOrder() []string {
	return append([]string(nil), a.services.StartupOrder...)
}

// Report returns the dependency report of the enabled services.
func (a *Application) Report() *dependency.Report {
	return a.services.Report
}

// RuntimeConfig returns the loaded configuration.
func (a *Application) RuntimeConfig() config.Config {
	return a.appConfig
}

// Services returns everything InitializeServices produced.
func (a *Application) Services() *Services {
	return a.services
}

// Metrics returns the application's collectors.
func (a *Application) Metrics() *metrics.Metrics {
	return a.services.Metrics
}

// Status returns the combined registry and dispatcher view of every service.
func (a *Application) Status() []api.ServiceStatus {
	return api.CollectServiceStatus(services.NewRegistryAdapter(a.services.Registry), a.services.Dispatcher)
}
