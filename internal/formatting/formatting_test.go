package formatting

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/features"
)

func sampleStatuses() []api.ServiceStatus {
	return []api.ServiceStatus{
		{Name: "auth", DisplayName: "Authentication", Version: "1.0.0", Registered: true, Available: true},
		{Name: "ai", DisplayName: "AI", Version: "1.0.0", Registered: true, Available: false},
	}
}

func sampleReport(t *testing.T) *dependency.Report {
	t.Helper()
	report, err := dependency.NewResolver().Report(dependency.Graph{
		"auth": {},
		"ai":   {"auth"},
	})
	require.NoError(t, err)
	return report
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "json", "yaml"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(s), f)
	}

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, New(Options{Format: FormatJSON}))
	assert.IsType(t, &YAMLFormatter{}, New(Options{Format: FormatYAML}))
	assert.IsType(t, &TableFormatter{}, New(Options{Format: FormatTable}))
	assert.IsType(t, &TableFormatter{}, New(Options{}))
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter(Options{})

	t.Run("services", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.FormatServices(&buf, sampleStatuses()))

		var decoded []api.ServiceStatus
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, sampleStatuses(), decoded)
	})

	t.Run("no services is an empty array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.FormatServices(&buf, nil))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("report", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.FormatReport(&buf, sampleReport(t)))
		assert.Contains(t, buf.String(), `"sortedServices": [`)
		assert.Contains(t, buf.String(), `"hasCircularDependencies": false`)
	})

	t.Run("issues", func(t *testing.T) {
		var buf bytes.Buffer
		issues := []features.DependencyIssue{{Feature: "ai", Dependency: "auth", Severity: features.SeverityWarning, Message: "m"}}
		require.NoError(t, f.FormatIssues(&buf, issues))
		assert.Contains(t, buf.String(), `"feature": "ai"`)
		assert.Contains(t, buf.String(), `"severity": "warning"`)
	})
}

func TestYAMLFormatter(t *testing.T) {
	f := NewYAMLFormatter(Options{})

	var buf bytes.Buffer
	require.NoError(t, f.FormatReport(&buf, sampleReport(t)))

	var decoded dependency.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"auth", "ai"}, decoded.SortedServices)
	assert.Equal(t, 1, decoded.Services["ai"].Priority)
}

func TestTableFormatter(t *testing.T) {
	f := NewTableFormatter(Options{})

	t.Run("services", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.FormatServices(&buf, sampleStatuses()))
		out := buf.String()
		assert.Contains(t, out, "Authentication")
		assert.Contains(t, out, "1/2 available")
	})

	t.Run("empty services", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.FormatServices(&buf, nil))
		assert.Contains(t, buf.String(), "No services registered")
	})

	t.Run("report", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.FormatReport(&buf, sampleReport(t)))
		out := buf.String()
		assert.Contains(t, out, "auth -> ai")
		assert.Contains(t, out, "PRIORITY")
	})

	t.Run("cyclic report", func(t *testing.T) {
		report, err := dependency.NewResolver().Report(dependency.Graph{"a": {"b"}, "b": {"a"}})
		require.Error(t, err)

		var buf bytes.Buffer
		require.NoError(t, f.FormatReport(&buf, report))
		assert.Contains(t, buf.String(), "Circular dependencies: yes")
	})

	t.Run("no issues", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.FormatIssues(&buf, nil))
		assert.Contains(t, buf.String(), "All feature dependencies satisfied")
	})
}

func TestReportNames(t *testing.T) {
	report := &dependency.Report{
		Services: map[string]dependency.ServiceReport{"b": {}, "a": {}},
	}
	assert.Equal(t, []string{"a", "b"}, reportNames(report))
	assert.Equal(t, "-", joinOrDash(nil))
	assert.Equal(t, "a, b", joinOrDash([]string{"a", "b"}))
}
