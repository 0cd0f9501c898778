package linter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/madethis/lint-action/internal/command"
)

const tsconfigFile = "tsconfig.json"

// TSC runs the TypeScript compiler as a type-checking linter.
type TSC struct {
	cmd  command.Runner
	warn WarnFunc
}

// NewTSC creates a TSC linter using the given command runner.
func NewTSC(cmd command.Runner, warn WarnFunc) *TSC {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &TSC{cmd: cmd, warn: warn}
}

func (t *TSC) Name() string { return "tsc" }

// DetectBuildMode reports whether the project at dir uses a composite build:
// a solution-style tsconfig whose only top-level keys are "files" and
// "references". A missing or malformed tsconfig is a normal negative signal,
// not an error — detection falls back to a simple single-unit build.
func DetectBuildMode(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, tsconfigFile))
	if err != nil {
		return false
	}
	var cfg map[string]json.RawMessage
	if err := json.Unmarshal(data, &cfg); err != nil {
		return false
	}
	if len(cfg) != 2 {
		return false
	}
	_, hasFiles := cfg["files"]
	_, hasRefs := cfg["references"]
	return hasFiles && hasRefs
}

// VerifySetup probes npm and the tsc binary.
func (t *TSC) VerifySetup(ctx context.Context, dir string, prefix string) error {
	if !t.cmd.Exists("npm") {
		return fmt.Errorf("verify tsc setup: %w", ErrDependencyMissing)
	}
	out, err := t.cmd.Run(ctx, dir, command.Join(prefix, "tsc", "-v"))
	if err != nil || out.ExitCode != 0 {
		return fmt.Errorf("verify tsc setup: %w", ErrToolNotInstalled)
	}
	return nil
}

// Lint type-checks the project. Composite projects are built incrementally
// with --build; simple projects are checked with --noEmit. Output formatting
// is pinned to the stable non-pretty form so it stays parseable.
func (t *TSC) Lint(ctx context.Context, dir string, opts LintOptions) (command.Output, error) {
	if opts.Fix {
		t.warn("tsc does not support auto-fixing; ignoring fix request")
	}

	modeArg := "--noEmit"
	if DetectBuildMode(dir) {
		modeArg = "--build"
	}

	cmdStr := command.Join(opts.Prefix, "tsc", modeArg, "--pretty", "false", opts.Args)
	out, err := t.cmd.Run(ctx, dir, cmdStr)
	if err != nil {
		return out, fmt.Errorf("run tsc: %w", err)
	}
	return out, nil
}

// ParseOutput normalizes raw tsc output. The build mode is re-detected here
// rather than threaded through from Lint so both entry points stay
// independently callable; detection is a cheap file read.
func (t *TSC) ParseOutput(dir string, out command.Output) Result {
	res := Result{IsSuccess: out.ExitCode == 0}
	if DetectBuildMode(dir) {
		parseBuildOutput(&res, out.Stdout)
	} else {
		parseFlatOutput(&res, out.Stdout)
	}
	return res
}

// globalErrorPrefix marks build-mode diagnostics with no source location,
// e.g. `error TS2688: Cannot find type definition file for 'node'`.
const globalErrorPrefix = "error TS"

// parseBuildOutput handles --build mode: one diagnostic per non-empty line.
func parseBuildOutput(res *Result, stdout string) {
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, globalErrorPrefix) {
			msg := line
			if i := strings.Index(line, " "); i >= 0 {
				msg = line[i+1:]
			}
			res.Add(Diagnostic{Severity: SeverityError, Message: msg})
			continue
		}
		if d, ok := parseBuildLine(line); ok {
			res.Add(d)
		}
	}
}

// parseBuildLine parses `<path>(<line>,<col>): <kind> <code>: <message>` by
// locating delimiters left to right. Partially formed lines are skipped
// rather than reported; tsc also emits progress noise in build mode.
func parseBuildLine(line string) (Diagnostic, bool) {
	open := strings.Index(line, "(")
	if open < 0 {
		return Diagnostic{}, false
	}
	path := line[:open]
	rest := line[open+1:]

	comma := strings.Index(rest, ",")
	if comma < 0 {
		return Diagnostic{}, false
	}
	lineNo, err := strconv.Atoi(rest[:comma])
	if err != nil {
		return Diagnostic{}, false
	}
	rest = rest[comma+1:]

	closing := strings.Index(rest, ")")
	if closing < 0 {
		return Diagnostic{}, false
	}
	col, err := strconv.Atoi(rest[:closing])
	if err != nil {
		return Diagnostic{}, false
	}
	rest = rest[closing+1:]

	// After the position comes ": <kind> <code>: <message>".
	sp := strings.Index(rest, " ")
	if sp < 0 {
		return Diagnostic{}, false
	}
	rest = rest[sp+1:]

	sp = strings.Index(rest, " ")
	if sp < 0 {
		return Diagnostic{}, false
	}
	kind := rest[:sp]
	rest = rest[sp+1:]

	sp = strings.Index(rest, " ")
	if sp < 0 {
		return Diagnostic{}, false
	}
	code := strings.TrimSuffix(rest[:sp], ":")
	msg := rest[sp+1:]

	// Anything that is not literally "warning" counts as an error.
	sev := SeverityError
	if kind == "warning" {
		sev = SeverityWarning
	}

	return Diagnostic{
		Severity:  sev,
		Path:      path,
		FirstLine: lineNo,
		LastLine:  lineNo,
		Column:    col,
		Code:      code,
		Message:   msg,
	}, true
}

// flatDiagnosticRe matches `<file>(<line>,<column>): <code> <message>` in
// --noEmit mode output. File paths containing a literal "(" are not
// supported by this grammar.
var flatDiagnosticRe = regexp.MustCompile(`(?m)^(.+?)\((\d+),(\d+)\): (\w+):? (.+?)\r?$`)

// parseFlatOutput handles --noEmit mode. This grammar has no warning
// channel: every match is an error.
func parseFlatOutput(res *Result, stdout string) {
	for _, m := range flatDiagnosticRe.FindAllStringSubmatch(stdout, -1) {
		lineNo, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])
		res.Add(Diagnostic{
			Severity:  SeverityError,
			Path:      m[1],
			FirstLine: lineNo,
			LastLine:  lineNo,
			Column:    col,
			Code:      m[4],
			Message:   strings.TrimSuffix(m[5], "."),
		})
	}
}
