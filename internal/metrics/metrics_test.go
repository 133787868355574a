package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New()
	require.NotNil(t, m.Registry())

	m.SetRegisteredServices(3)
	m.RecordConfigureFailure("ai")
	m.RecordResolution(ResultOK)
	m.RecordFeatureLoadError("docs")

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["collabkit_registry_registered_services"])
	assert.True(t, names["collabkit_adapters_configure_failures_total"])
	assert.True(t, names["collabkit_dependency_resolutions_total"])
	assert.True(t, names["collabkit_features_load_errors_total"])
}

func TestRecording(t *testing.T) {
	m := New()

	m.SetRegisteredServices(5)
	m.RecordConfigureFailure("ai")
	m.RecordConfigureFailure("ai")
	m.RecordResolution(ResultCycle)

	assert.Equal(t, float64(5), testutil.ToFloat64(m.RegisteredServices))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ConfigureFailures.WithLabelValues("ai")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Resolutions.WithLabelValues(ResultCycle)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.Resolutions.WithLabelValues(ResultOK)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SetRegisteredServices(1)
		m.RecordConfigureFailure("auth")
		m.RecordResolution(ResultMissing)
		m.RecordFeatureLoadError("hr")
	})
	assert.Nil(t, m.Registry())
}
