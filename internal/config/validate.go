package config

import (
	"fmt"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidationError represents a single validation issue with a config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// recognizedLinters is the set of valid linter names.
var recognizedLinters = map[string]bool{
	"tsc": true,
}

// Validate checks a Config for structural and semantic errors. It returns a
// slice of all validation errors found (empty if valid).
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError
	l := cfg.Lint

	if len(l.Linters) == 0 {
		errs = append(errs, ValidationError{Field: "lint.linters", Message: "at least one linter is required"})
	}

	for name, lc := range l.Linters {
		prefix := fmt.Sprintf("lint.linters.%s", name)
		if !recognizedLinters[name] {
			errs = append(errs, ValidationError{
				Field:   prefix,
				Message: fmt.Sprintf("unrecognized linter %q", name),
			})
		}
		if lc.Timeout != "" {
			if _, err := time.ParseDuration(lc.Timeout); err != nil {
				errs = append(errs, ValidationError{
					Field:   prefix + ".timeout",
					Message: fmt.Sprintf("invalid duration %q", lc.Timeout),
				})
			}
		}
	}

	if l.Defaults.Timeout != "" {
		if _, err := time.ParseDuration(l.Defaults.Timeout); err != nil {
			errs = append(errs, ValidationError{
				Field:   "lint.defaults.timeout",
				Message: fmt.Sprintf("invalid duration %q", l.Defaults.Timeout),
			})
		}
	}

	for i, pattern := range l.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("lint.exclude[%d]", i),
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}

	return errs
}
