package formatting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/features"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatServices renders one row per service.
func (f *TableFormatter) FormatServices(w io.Writer, statuses []api.ServiceStatus) error {
	if len(statuses) == 0 {
		return f.writeEmptyMessage(w, "No services registered")
	}

	t := f.createTable(w)
	t.AppendHeader(f.header("NAME", "DISPLAY NAME", "VERSION", "REGISTERED", "AVAILABLE"))
	available := 0
	for _, s := range statuses {
		if s.Available {
			available++
		}
		t.AppendRow(table.Row{
			text.FgHiCyan.Sprint(s.Name),
			s.DisplayName,
			s.Version,
			yesNo(s.Registered),
			f.availability(s.Available),
		})
	}
	t.Render()

	if !f.options.Quiet {
		_, err := fmt.Fprintf(w, "\n%s %d/%d available\n", text.FgHiBlue.Sprint("Total:"), available, len(statuses))
		return err
	}
	return nil
}

// FormatReport renders the startup order followed by one row per service.
func (f *TableFormatter) FormatReport(w io.Writer, report *dependency.Report) error {
	if report == nil || report.TotalServices == 0 {
		return f.writeEmptyMessage(w, "No services to order")
	}

	if report.HasCircularDependencies {
		if _, err := fmt.Fprintf(w, "%s\n", text.FgRed.Sprint("Circular dependencies: yes")); err != nil {
			return err
		}
	} else if !f.options.Quiet {
		if _, err := fmt.Fprintf(w, "%s %s\n", text.FgHiBlue.Sprint("Startup order:"), strings.Join(report.SortedServices, " -> ")); err != nil {
			return err
		}
	}

	t := f.createTable(w)
	t.AppendHeader(f.header("PRIORITY", "SERVICE", "DIRECT", "ALL"))
	for _, name := range reportNames(report) {
		sr := report.Services[name]
		priority := "-"
		if sr.Priority >= 0 {
			priority = fmt.Sprintf("%d", sr.Priority)
		}
		t.AppendRow(table.Row{
			priority,
			text.FgHiCyan.Sprint(name),
			joinOrDash(sr.DirectDependencies),
			joinOrDash(sr.AllDependencies),
		})
	}
	t.Render()
	return nil
}

// FormatIssues renders one row per dependency issue.
func (f *TableFormatter) FormatIssues(w io.Writer, issues []features.DependencyIssue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintf(w, "%s\n", text.FgGreen.Sprint("All feature dependencies satisfied"))
		return err
	}

	t := f.createTable(w)
	t.AppendHeader(f.header("SEVERITY", "FEATURE", "DEPENDENCY", "MESSAGE"))
	for _, issue := range issues {
		t.AppendRow(table.Row{
			text.FgYellow.Sprint(issue.Severity),
			issue.Feature,
			issue.Dependency,
			issue.Message,
		})
	}
	t.Render()
	return nil
}

// Helper methods

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(columns ...string) table.Row {
	row := make(table.Row, 0, len(columns))
	for _, c := range columns {
		row = append(row, text.FgHiCyan.Sprint(c))
	}
	return row
}

func (f *TableFormatter) availability(ok bool) string {
	if ok {
		return text.FgGreen.Sprint("yes")
	}
	return text.FgRed.Sprint("no")
}

// writeEmptyMessage formats empty result messages
func (f *TableFormatter) writeEmptyMessage(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "%s\n", text.FgYellow.Sprint(message))
	return err
}
