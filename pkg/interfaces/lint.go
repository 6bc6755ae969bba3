package interfaces

// Severity grades a lint finding. Errors fail the run, warnings and infos
// are advisory unless the linter is configured to fail on warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding records a single rule violation for one article.
type Finding struct {
	Path     string   `json:"path"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"`
}

// Report aggregates the findings of a lint run over a corpus.
type Report struct {
	Checked  int       `json:"checked"`
	Findings []Finding `json:"findings"`
}

// Errors returns the number of error-severity findings.
func (r *Report) Errors() int { return r.count(SeverityError) }

// Warnings returns the number of warning-severity findings.
func (r *Report) Warnings() int { return r.count(SeverityWarning) }

// Failed reports whether the run contained at least one error finding.
func (r *Report) Failed() bool { return r.Errors() > 0 }

func (r *Report) count(severity Severity) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}
