package linter

import (
	"context"
	"sort"

	"github.com/madethis/lint-action/internal/command"
)

// LintOptions configures a single lint invocation.
type LintOptions struct {
	// Args are extra arguments appended to the tool command line.
	Args string
	// Fix requests auto-fixing. Tools without fixing capability ignore it
	// with an advisory notice.
	Fix bool
	// Prefix is an opaque command prefix used to invoke locally installed
	// tooling (e.g. "npx --no-install").
	Prefix string
}

// Linter adapts one external analysis tool to a uniform capability set:
// verify the tool is usable, invoke it, and normalize its raw output.
type Linter interface {
	Name() string
	// VerifySetup checks that the tool and its package manager are usable
	// in dir. Fails with ErrDependencyMissing or ErrToolNotInstalled.
	VerifySetup(ctx context.Context, dir string, prefix string) error
	// Lint runs the tool in dir and returns its raw output. A non-zero exit
	// is not an error; it signals that diagnostics exist.
	Lint(ctx context.Context, dir string, opts LintOptions) (command.Output, error)
	// ParseOutput normalizes raw tool output into a Result.
	ParseOutput(dir string, out command.Output) Result
}

// WarnFunc receives advisory notices from linters (e.g. an ignored fix
// request). A nil WarnFunc discards notices.
type WarnFunc func(format string, args ...any)

// Registry holds the supported linters keyed by name.
type Registry struct {
	linters map[string]Linter
}

// NewRegistry creates a registry with all supported linters wired to the
// given command runner.
func NewRegistry(cmd command.Runner, warn WarnFunc) *Registry {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Registry{
		linters: map[string]Linter{
			"tsc": NewTSC(cmd, warn),
		},
	}
}

// Get returns the linter registered under name.
func (r *Registry) Get(name string) (Linter, bool) {
	l, ok := r.linters[name]
	return l, ok
}

// Names returns all registered linter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.linters))
	for name := range r.linters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
