package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/giantswarm/collabkit/internal/adapters"
	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/features"
	"github.com/giantswarm/collabkit/internal/metrics"
	"github.com/giantswarm/collabkit/internal/services"
	"github.com/giantswarm/collabkit/pkg/logging"
)

// Services holds all initialized services and APIs used by the application.
type Services struct {
	// Registry holds the enabled services in startup order.
	Registry services.ServiceRegistry

	// Dispatcher holds one adapter per enabled service.
	Dispatcher *api.Dispatcher

	// Loader is the feature selection the registry was built from.
	Loader *features.Loader

	// Resolver is shared by the loader and the report.
	Resolver *dependency.Resolver

	Metrics *metrics.Metrics

	// StartupOrder is the resolved dependency order of the enabled services.
	StartupOrder []string

	// Report describes the dependency graph the services were started from.
	Report *dependency.Report

	// Issues are the soft feature dependency warnings.
	Issues []features.DependencyIssue

	// Warnings are non-fatal failures: services that failed to configure and
	// are registered in a degraded state.
	Warnings []error
}

// InitializeServices creates and registers all services for cfg.
//
// Initialization Sequence:
//  1. Feature selection and soft dependency warnings
//  2. Dependency resolution over the enabled features plus cfg.Dependencies
//  3. Service registration, wave by wave
//  4. Adapter creation and configuration
//  5. API locator registration
//
// Cycles and missing dependencies abort initialization. Configure failures
// are collected in Warnings.
func InitializeServices(ctx context.Context, cfg config.Config) (*Services, error) {
	m := metrics.New()
	resolver := dependency.NewResolver(dependency.WithCache(0), dependency.WithMetrics(m))

	loader := features.New(features.Set(cfg.Features),
		features.WithResolver(resolver),
		features.WithMetrics(m),
	)

	issues := loader.ValidateFeatureDependencies()
	for _, issue := range issues {
		logging.Warn("Bootstrap", "Feature dependency issue: %s", issue.Message)
	}
	for name, keys := range loader.MissingConfigKeys(cfg) {
		logging.Warn("Bootstrap", "Service %s is missing settings %v and will stay unconfigured", name, keys)
	}

	graph := loader.StartupGraph(cfg)
	order, err := resolver.Resolve(graph)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to resolve service dependencies")
		return nil, fmt.Errorf("failed to resolve service dependencies: %w", err)
	}
	report, err := resolver.Report(graph)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency report: %w", err)
	}
	logging.Info("Bootstrap", "Startup order: %v", order)

	registry := services.NewRegistry(services.WithMetrics(m))

	var warnings []error
	if err := loader.LoadServices(ctx, cfg, registry); err != nil {
		if api.IsCircularDependency(err) || api.IsMissingDependencies(err) || isCancelled(ctx, err) {
			return nil, fmt.Errorf("failed to load services: %w", err)
		}
		logging.WarnErr("Bootstrap", err, "Some services loaded in a degraded state")
		warnings = append(warnings, err)
	}

	factory := adapters.NewFactory(m)
	dispatcher, adapterErrs := factory.CreateAdaptersFromConfig(ctx, cfg)
	warnings = append(warnings, adapterErrs...)

	services.NewRegistryAdapter(registry).Register()
	api.RegisterDispatcher(dispatcher)

	return &Services{
		Registry:     registry,
		Dispatcher:   dispatcher,
		Loader:       loader,
		Resolver:     resolver,
		Metrics:      m,
		StartupOrder: order,
		Report:       report,
		Issues:       issues,
		Warnings:     warnings,
	}, nil
}

func isCancelled(ctx context.Context, err error) bool {
	ctxErr := ctx.Err()
	return ctxErr != nil && errors.Is(err, ctxErr)
}
