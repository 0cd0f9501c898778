package linter

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ExcludePaths drops diagnostics whose path matches any of the given glob
// patterns (doublestar syntax, e.g. "**/dist/**"). Global diagnostics with
// no path are always kept. Order within each bucket is preserved.
func ExcludePaths(res Result, patterns []string) Result {
	if len(patterns) == 0 {
		return res
	}
	res.Errors = filterDiagnostics(res.Errors, patterns)
	res.Warnings = filterDiagnostics(res.Warnings, patterns)
	return res
}

func filterDiagnostics(diags []Diagnostic, patterns []string) []Diagnostic {
	var kept []Diagnostic
	for _, d := range diags {
		if d.Path != "" && matchesAny(d.Path, patterns) {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

func matchesAny(path string, patterns []string) bool {
	path = filepath.ToSlash(path)
	for _, p := range patterns {
		// Invalid patterns are rejected by config validation; a stray one
		// here just never matches.
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}
