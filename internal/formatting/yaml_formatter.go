package formatting

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/features"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatServices writes the statuses as a YAML sequence.
func (f *YAMLFormatter) FormatServices(w io.Writer, statuses []api.ServiceStatus) error {
	if statuses == nil {
		statuses = []api.ServiceStatus{}
	}
	return f.encode(w, statuses)
}

// FormatReport writes the report as a YAML mapping.
func (f *YAMLFormatter) FormatReport(w io.Writer, report *dependency.Report) error {
	return f.encode(w, report)
}

// FormatIssues writes the issues as a YAML sequence.
func (f *YAMLFormatter) FormatIssues(w io.Writer, issues []features.DependencyIssue) error {
	out := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		out = append(out, newIssueView(issue))
	}
	return f.encode(w, out)
}

func (f *YAMLFormatter) encode(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
