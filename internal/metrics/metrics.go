// Package metrics holds the Prometheus collectors of the composition runtime.
//
// Collectors live on a private registry so that embedding applications decide
// whether and where to expose them. All recording methods are nil-safe: a nil
// *Metrics records nothing, which keeps metrics optional for library callers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "collabkit"

// Resolution outcomes recorded by RecordResolution.
const (
	ResultOK       = "ok"
	ResultCycle    = "circular"
	ResultMissing  = "missing"
	ResultCacheHit = "cache_hit"
)

// Metrics contains the runtime collectors.
type Metrics struct {
	registry *prometheus.Registry

	RegisteredServices prometheus.Gauge
	ConfigureFailures  *prometheus.CounterVec
	Resolutions        *prometheus.CounterVec
	FeatureLoadErrors  *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RegisteredServices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "registered_services",
			Help:      "Number of services currently held by the service registry",
		}),

		ConfigureFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "adapters",
				Name:      "configure_failures_total",
				Help:      "Service configuration failures; the adapter stays registered unconfigured",
			},
			[]string{"service"},
		),

		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dependency",
				Name:      "resolutions_total",
				Help:      "Dependency resolutions by result",
			},
			[]string{"result"},
		),

		FeatureLoadErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "features",
				Name:      "load_errors_total",
				Help:      "Enabled features left unregistered by LoadServices; degraded registrations are not counted",
			},
			[]string{"feature"},
		),
	}

	m.registry.MustRegister(
		m.RegisteredServices,
		m.ConfigureFailures,
		m.Resolutions,
		m.FeatureLoadErrors,
	)

	return m
}

// Registry returns the Prometheus registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// SetRegisteredServices records the current registry size.
func (m *Metrics) SetRegisteredServices(n int) {
	if m == nil {
		return
	}
	m.RegisteredServices.Set(float64(n))
}

// RecordConfigureFailure counts one failed service configuration.
func (m *Metrics) RecordConfigureFailure(service string) {
	if m == nil {
		return
	}
	m.ConfigureFailures.WithLabelValues(service).Inc()
}

// RecordResolution counts one dependency resolution outcome.
func (m *Metrics) RecordResolution(result string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(result).Inc()
}

// RecordFeatureLoadError counts one enabled feature left unregistered.
func (m *Metrics) RecordFeatureLoadError(feature string) {
	if m == nil {
		return
	}
	m.FeatureLoadErrors.WithLabelValues(feature).Inc()
}
