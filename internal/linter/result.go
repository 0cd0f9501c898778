package linter

import "fmt"

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one normalized issue reported by a linter. Path, line and
// column are absent for configuration-level diagnostics that carry no source
// location.
type Diagnostic struct {
	Severity  Severity `json:"severity"`
	Path      string   `json:"path,omitempty"`
	FirstLine int      `json:"first_line,omitempty"`
	LastLine  int      `json:"last_line,omitempty"`
	Column    int      `json:"column,omitempty"`
	Code      string   `json:"code,omitempty"`
	Message   string   `json:"message"`
}

// Result is the normalized outcome of a single lint invocation. IsSuccess
// mirrors the tool's exit status — a clean exit with warnings is still a
// success. Every diagnostic lands in exactly one bucket, partitioned by
// severity, in input order.
type Result struct {
	IsSuccess bool         `json:"is_success"`
	Errors    []Diagnostic `json:"errors"`
	Warnings  []Diagnostic `json:"warnings"`
}

// Add places d in the bucket matching its severity.
func (r *Result) Add(d Diagnostic) {
	if d.Severity == SeverityWarning {
		r.Warnings = append(r.Warnings, d)
	} else {
		r.Errors = append(r.Errors, d)
	}
}

// Summary returns a short human-readable digest of the result.
func (r *Result) Summary() string {
	if len(r.Errors) == 0 && len(r.Warnings) == 0 {
		return "no issues"
	}
	return fmt.Sprintf("%d errors, %d warnings", len(r.Errors), len(r.Warnings))
}
