// Package formatting renders runtime state for the CLI.
//
// The same data can be written as a table, JSON or YAML; the table formatter
// is the default for terminals, the others are meant for scripts.
package formatting

import (
	"fmt"
	"io"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/features"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // Rich table output
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
)

// ParseFormat validates a --output flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", s)
	}
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements
}

// Formatter writes runtime state in one output format.
type Formatter interface {
	FormatServices(w io.Writer, statuses []api.ServiceStatus) error
	FormatReport(w io.Writer, report *dependency.Report) error
	FormatIssues(w io.Writer, issues []features.DependencyIssue) error
}

// New returns the formatter for options.Format. Unknown formats fall back to
// the table formatter.
func New(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	default:
		return NewTableFormatter(options)
	}
}
