package features

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/metrics"
	"github.com/giantswarm/collabkit/internal/platform"
	"github.com/giantswarm/collabkit/internal/services"
	"github.com/giantswarm/collabkit/pkg/logging"
)

// SeverityWarning is the only severity a DependencyIssue currently carries.
const SeverityWarning = "warning"

// DependencyIssue reports an enabled feature whose soft dependency is disabled.
type DependencyIssue struct {
	Feature    string
	Dependency string
	Severity   string
	Message    string
}

// String renders the issue as "ai → auth".
func (i DependencyIssue) String() string {
	return fmt.Sprintf("%s → %s", i.Feature, i.Dependency)
}

// Factory builds the service instance of one feature. It may return a
// non-nil service together with an error, in which case the service is
// registered in its degraded state and the error is reported.
type Factory func(ctx context.Context, name string, cfg config.Config) (services.Service, error)

// Loader holds the resolved feature flags.
type Loader struct {
	flags    []Flag
	unknown  []string
	resolver *dependency.Resolver
	factory  Factory
	metrics  *metrics.Metrics
}

// Option configures a Loader.
type Option func(*Loader)

// WithResolver sets the resolver used to order registration.
func WithResolver(r *dependency.Resolver) Option {
	return func(l *Loader) {
		l.resolver = r
	}
}

// WithFactory replaces the default platform factory.
func WithFactory(f Factory) Option {
	return func(l *Loader) {
		l.factory = f
	}
}

// WithMetrics records feature load errors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loader) {
		l.metrics = m
	}
}

// New creates a Loader from the runtime selection. Names in set that are not
// in the catalog are logged and otherwise ignored.
func New(set Set, opts ...Option) *Loader {
	l := &Loader{
		resolver: dependency.NewResolver(),
		factory:  PlatformFactory,
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, f := range Catalog() {
		f.Enabled = set[f.Name]
		l.flags = append(l.flags, f)
	}

	for name := range set {
		if !isKnown(name) {
			l.unknown = append(l.unknown, name)
		}
	}
	sort.Strings(l.unknown)
	for _, name := range l.unknown {
		logging.Warn("FeatureLoader", "Ignoring unknown feature %q", name)
	}

	return l
}

// Flags returns a copy of all flags in catalog order.
func (l *Loader) Flags() []Flag {
	out := make([]Flag, 0, len(l.flags))
	for _, f := range l.flags {
		out = append(out, f.clone())
	}
	return out
}

// UnknownFeatures returns the names from the selection that are not in the catalog.
func (l *Loader) UnknownFeatures() []string {
	return append([]string(nil), l.unknown...)
}

// EnabledServices returns the enabled feature names in catalog order.
func (l *Loader) EnabledServices() []string {
	var names []string
	for _, f := range l.flags {
		if f.Enabled {
			names = append(names, f.Name)
		}
	}
	return names
}

// IsFeatureEnabled reports whether name is a known, enabled feature.
func (l *Loader) IsFeatureEnabled(name string) bool {
	f, ok := l.flag(name)
	return ok && f.Enabled
}

func (l *Loader) flag(name string) (Flag, bool) {
	for _, f := range l.flags {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}

// ValidateFeatureDependencies returns one warning per enabled feature whose
// soft dependency is disabled. It never fails.
func (l *Loader) ValidateFeatureDependencies() []DependencyIssue {
	var issues []DependencyIssue
	for _, f := range l.flags {
		if !f.Enabled {
			continue
		}
		for _, dep := range f.Dependencies {
			if l.IsFeatureEnabled(dep) {
				continue
			}
			issues = append(issues, DependencyIssue{
				Feature:    f.Name,
				Dependency: dep,
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("feature %s depends on %s, which is disabled", f.Name, dep),
			})
		}
	}
	return issues
}

// MissingConfigKeys returns, per enabled feature, the required settings that
// are absent from its service configuration. Features with nothing missing
// are omitted.
func (l *Loader) MissingConfigKeys(cfg config.Config) map[string][]string {
	missing := make(map[string][]string)
	for _, f := range l.flags {
		if !f.Enabled || len(f.RequiredConfigKeys) == 0 {
			continue
		}
		sc, _ := cfg.ServiceConfigFor(f.Name)
		for _, key := range f.RequiredConfigKeys {
			if _, ok := sc.Setting(key); !ok {
				missing[f.Name] = append(missing[f.Name], key)
			}
		}
	}
	return missing
}

// Graph returns the dependency graph of the enabled features. Soft
// dependencies on disabled features are dropped.
func (l *Loader) Graph() dependency.Graph {
	g := make(dependency.Graph)
	for _, f := range l.flags {
		if !f.Enabled {
			continue
		}
		deps := []string{}
		for _, dep := range f.Dependencies {
			if l.IsFeatureEnabled(dep) {
				deps = append(deps, dep)
			}
		}
		g[f.Name] = deps
	}
	return g
}

// StartupGraph is Graph merged with the configured extra dependencies of
// enabled features. Entries for services that are not enabled are ignored;
// their dependencies are kept verbatim and may therefore be reported missing.
func (l *Loader) StartupGraph(cfg config.Config) dependency.Graph {
	g := l.Graph()
	extra := make(dependency.Graph)
	for name, deps := range cfg.Dependencies {
		if !g.Has(name) {
			logging.Debug("FeatureLoader", "Ignoring dependencies of disabled service %s", name)
			continue
		}
		extra[name] = deps
	}
	return g.Merge(extra)
}

// LoadServices builds every enabled service and registers it into registry
// in dependency order. Cycles and missing dependencies abort before anything
// is registered. Per-service failures are logged, collected and returned
// together once every service has been attempted.
func (l *Loader) LoadServices(ctx context.Context, cfg config.Config, registry services.ServiceRegistry) error {
	batches, err := l.resolver.StartupBatches(l.StartupGraph(cfg))
	if err != nil {
		return fmt.Errorf("failed to order feature services: %w", err)
	}

	var (
		mu     sync.Mutex
		result *multierror.Error
	)
	// collect records err. Only failures that leave the feature unregistered
	// count towards the load error metric.
	collect := func(name string, err error, unregistered bool) {
		mu.Lock()
		defer mu.Unlock()
		result = multierror.Append(result, err)
		if unregistered {
			l.metrics.RecordFeatureLoadError(name)
		}
	}

	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return multierror.Append(result, err).ErrorOrNil()
		}
		logging.Debug("FeatureLoader", "Loading wave %d: %v", i, batch)

		built := make([]services.Service, len(batch))
		var g errgroup.Group
		for j, name := range batch {
			j, name := j, name
			g.Go(func() error {
				svc, err := l.factory(ctx, name, cfg)
				if svc == nil && err == nil {
					err = fmt.Errorf("factory returned no service for %s", name)
				}
				if err != nil {
					logging.WarnErr("FeatureLoader", err, "Service %s did not load cleanly", name)
					collect(name, err, svc == nil)
				}
				built[j] = svc
				return nil
			})
		}
		_ = g.Wait()

		// Registration happens in wave order so the registry order is stable.
		for j, name := range batch {
			svc := built[j]
			if svc == nil {
				// Already reported above.
				continue
			}
			if err := registry.Register(name, svc, l.descriptor(name, svc)); err != nil {
				logging.WarnErr("FeatureLoader", err, "Failed to register service %s", name)
				collect(name, err, true)
				continue
			}
			logging.Debug("FeatureLoader", "Registered service %s", name)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	logging.Info("FeatureLoader", "Loaded %d services", registry.Len())
	return nil
}

func (l *Loader) descriptor(name string, svc services.Service) services.Descriptor {
	f, _ := l.flag(name)

	version := ""
	if v, ok := svc.(services.Versioned); ok {
		version = v.Version()
	}

	tags := []string{"feature"}
	if len(f.Dependencies) > 0 {
		tags = append(tags, "has-dependencies")
	}
	return services.NewDescriptor(name, f.DisplayName, f.Description, version, tags...)
}

// PlatformFactory builds the platform implementation of name and configures
// it from cfg. A configure failure returns the unconfigured service together
// with an *api.ConfigureError.
func PlatformFactory(ctx context.Context, name string, cfg config.Config) (services.Service, error) {
	svc, err := platform.New(name, cfg.App)
	if err != nil {
		return nil, err
	}
	sc, _ := cfg.ServiceConfigFor(name)
	if err := svc.Configure(ctx, sc); err != nil {
		return svc, &api.ConfigureError{Service: name, Err: err}
	}
	return svc, nil
}
