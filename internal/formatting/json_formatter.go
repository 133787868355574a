package formatting

import (
	"encoding/json"
	"io"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/features"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatServices writes the statuses as a JSON array.
func (f *JSONFormatter) FormatServices(w io.Writer, statuses []api.ServiceStatus) error {
	if statuses == nil {
		statuses = []api.ServiceStatus{}
	}
	return f.encode(w, statuses)
}

// FormatReport writes the report as a JSON object.
func (f *JSONFormatter) FormatReport(w io.Writer, report *dependency.Report) error {
	return f.encode(w, report)
}

// FormatIssues writes the issues as a JSON array.
func (f *JSONFormatter) FormatIssues(w io.Writer, issues []features.DependencyIssue) error {
	out := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		out = append(out, newIssueView(issue))
	}
	return f.encode(w, out)
}

func (f *JSONFormatter) encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
