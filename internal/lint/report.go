package lint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reflectoring/blogkit/pkg/interfaces"
)

// FormatText renders a report in the one-finding-per-line shape used by the
// CLI: path:line severity rule message.
func FormatText(report *interfaces.Report) string {
	if report == nil {
		return ""
	}
	var b strings.Builder
	for _, finding := range report.Findings {
		location := finding.Path
		if finding.Line > 0 {
			location = fmt.Sprintf("%s:%d", finding.Path, finding.Line)
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", location, finding.Severity, finding.Rule, finding.Message)
	}
	fmt.Fprintf(&b, "checked %d articles: %d errors, %d warnings\n",
		report.Checked, report.Errors(), report.Warnings())
	return b.String()
}

// FormatJSON renders the report as indented JSON for machine consumers.
func FormatJSON(report *interfaces.Report) (string, error) {
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("lint: encode report: %w", err)
	}
	return string(encoded), nil
}
