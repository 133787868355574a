package dependency

import (
	"fmt"
	"io"
	"strings"

	"github.com/giantswarm/collabkit/internal/api"
)

// ServiceReport is the per-service part of a Report.
type ServiceReport struct {
	DirectDependencies []string `json:"directDependencies" yaml:"directDependencies"`
	// AllDependencies is the sorted transitive closure, excluding the service itself.
	AllDependencies []string `json:"allDependencies" yaml:"allDependencies"`
	Priority        int      `json:"priority" yaml:"priority"`
}

// Report summarizes a dependency graph.
type Report struct {
	TotalServices           int                      `json:"totalServices" yaml:"totalServices"`
	SortedServices          []string                 `json:"sortedServices" yaml:"sortedServices"`
	Services                map[string]ServiceReport `json:"services" yaml:"services"`
	HasCircularDependencies bool                     `json:"hasCircularDependencies" yaml:"hasCircularDependencies"`
}

// Report resolves g and composes the order, priorities and per-service
// dependency sets into one structure.
//
// A cyclic graph still produces a report (with HasCircularDependencies set and
// no order or priorities) together with the CircularDependencyError, so that
// callers can render what is known. Missing dependencies return only the error.
func (r *Resolver) Report(g Graph) (*Report, error) {
	order, err := r.Resolve(g)
	if err != nil && !api.IsCircularDependency(err) {
		return nil, err
	}

	report := &Report{
		TotalServices:           len(g),
		SortedServices:          order,
		Services:                make(map[string]ServiceReport, len(g)),
		HasCircularDependencies: err != nil,
	}

	priorities := make(map[string]int, len(order))
	for i, name := range order {
		priorities[name] = i
	}

	for _, name := range g.Nodes() {
		direct, _ := r.DirectDependencies(name, g)
		priority, ok := priorities[name]
		if !ok {
			priority = -1
		}
		report.Services[name] = ServiceReport{
			DirectDependencies: direct,
			AllDependencies:    r.AllDependenciesSorted(name, g),
			Priority:           priority,
		}
	}

	return report, err
}

// Render writes a plain-text summary of the report to w.
func (rep *Report) Render(w io.Writer) error {
	_, err := io.WriteString(w, rep.String())
	return err
}

// String returns the plain-text summary written by Render.
func (rep *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dependency report: %d services\n", rep.TotalServices)
	if rep.HasCircularDependencies {
		b.WriteString("Circular dependencies: yes (no startup order)\n")
	} else {
		fmt.Fprintf(&b, "Startup order: %s\n", strings.Join(rep.SortedServices, " -> "))
	}

	names := make([]string, 0, len(rep.Services))
	if len(rep.SortedServices) == len(rep.Services) {
		names = append(names, rep.SortedServices...)
	} else {
		for name := range rep.Services {
			names = append(names, name)
		}
		names = NewSet(names...).Sorted()
	}

	for _, name := range names {
		svc := rep.Services[name]
		fmt.Fprintf(&b, "  [%d] %s\n", svc.Priority, name)
		fmt.Fprintf(&b, "      direct: %s\n", joinOrNone(svc.DirectDependencies))
		fmt.Fprintf(&b, "      all:    %s\n", joinOrNone(svc.AllDependencies))
	}

	return b.String()
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
