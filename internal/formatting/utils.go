package formatting

import (
	"sort"
	"strings"

	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/features"
)

// issueView is the serialized shape of a features.DependencyIssue.
type issueView struct {
	Feature    string `json:"feature" yaml:"feature"`
	Dependency string `json:"dependency" yaml:"dependency"`
	Severity   string `json:"severity" yaml:"severity"`
	Message    string `json:"message" yaml:"message"`
}

func newIssueView(issue features.DependencyIssue) issueView {
	return issueView{
		Feature:    issue.Feature,
		Dependency: issue.Dependency,
		Severity:   issue.Severity,
		Message:    issue.Message,
	}
}

// reportNames returns the report's services in startup order, or lexically
// when there is no order.
func reportNames(report *dependency.Report) []string {
	if len(report.SortedServices) == len(report.Services) {
		return report.SortedServices
	}
	names := make([]string, 0, len(report.Services))
	for name := range report.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
