package adapters

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
	"github.com/giantswarm/collabkit/internal/metrics"
	"github.com/giantswarm/collabkit/pkg/logging"
)

// Factory creates dispatchers populated with adapters.
type Factory struct {
	metrics *metrics.Metrics
}

// NewFactory creates a Factory. m may be nil.
func NewFactory(m *metrics.Metrics) *Factory {
	return &Factory{metrics: m}
}

// CreateDefaultAdapters returns a dispatcher holding one unconfigured adapter
// for every known service.
func (f *Factory) CreateDefaultAdapters() *api.Dispatcher {
	dispatcher := api.NewDispatcher()
	for _, name := range api.KnownServices() {
		_, adapter, err := newAdapter(name, config.AppCredentials{})
		if err != nil {
			logging.Error("AdapterFactory", err, "Failed to create adapter %s", name)
			continue
		}
		dispatcher.RegisterAdapter(adapter)
	}
	return dispatcher
}

// CreateAdaptersFromConfig returns a dispatcher holding an adapter for every
// enabled feature of cfg, together with the failures met on the way. Services
// are configured concurrently. A service that fails to configure is logged and
// still registered, unavailable.
func (f *Factory) CreateAdaptersFromConfig(ctx context.Context, cfg config.Config) (*api.Dispatcher, []error) {
	dispatcher := api.NewDispatcher()

	var (
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}

	var g errgroup.Group
	for _, name := range api.KnownServices() {
		if !cfg.FeatureEnabled(name) {
			continue
		}

		svc, adapter, err := newAdapter(name, cfg.App)
		if err != nil {
			logging.Error("AdapterFactory", err, "Failed to create adapter %s", name)
			record(err)
			continue
		}

		name := name
		g.Go(func() error {
			sc, _ := cfg.ServiceConfigFor(name)
			if err := svc.Configure(ctx, sc); err != nil {
				configureErr := &api.ConfigureError{Service: name, Err: err}
				logging.WarnErr("AdapterFactory", configureErr, "Adapter %s registered unconfigured", name)
				f.metrics.RecordConfigureFailure(name)
				record(configureErr)
			}
			dispatcher.RegisterAdapter(adapter)
			return nil
		})
	}
	_ = g.Wait()

	logging.Info("AdapterFactory", "Created %d adapters", len(dispatcher.ListServices()))
	return dispatcher, errs
}
