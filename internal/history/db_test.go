package history

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/madethis/lint-action/internal/linter"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	if err := d.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return d
}

func sampleResult() linter.Result {
	return linter.Result{
		IsSuccess: false,
		Errors: []linter.Diagnostic{
			{Severity: linter.SeverityError, Path: "a.ts", FirstLine: 1, LastLine: 1, Column: 2, Code: "TS1", Message: "bad"},
		},
		Warnings: []linter.Diagnostic{
			{Severity: linter.SeverityWarning, Path: "b.ts", FirstLine: 3, LastLine: 3, Message: "meh"},
		},
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	d := openTestDB(t)
	if err := d.Migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestLogRunAndRuns(t *testing.T) {
	d := openTestDB(t)

	if err := d.LogRun("/proj", "tsc", sampleResult(), 2, 340); err != nil {
		t.Fatalf("log run: %v", err)
	}
	if err := d.LogRun("/proj", "tsc", linter.Result{IsSuccess: true}, 0, 120); err != nil {
		t.Fatalf("log run: %v", err)
	}

	runs, err := d.Runs("", 0)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Newest first.
	if !runs[0].IsSuccess {
		t.Error("expected newest run first (the passing one)")
	}
	older := runs[1]
	if older.Errors != 1 || older.Warnings != 1 {
		t.Errorf("expected 1 error and 1 warning, got %d/%d", older.Errors, older.Warnings)
	}
	if older.ExitCode != 2 {
		t.Errorf("expected exit code 2, got %d", older.ExitCode)
	}
	if older.Summary != "1 errors, 1 warnings" {
		t.Errorf("unexpected summary: %q", older.Summary)
	}
	if !strings.Contains(older.Diagnostics, `"path":"a.ts"`) {
		t.Errorf("expected diagnostics JSON to carry paths, got %q", older.Diagnostics)
	}
}

func TestRuns_FilterAndLimit(t *testing.T) {
	d := openTestDB(t)
	if err := d.LogRun("/proj", "tsc", linter.Result{IsSuccess: true}, 0, 10); err != nil {
		t.Fatalf("log run: %v", err)
	}
	if err := d.LogRun("/proj", "other", linter.Result{IsSuccess: true}, 0, 10); err != nil {
		t.Fatalf("log run: %v", err)
	}

	runs, err := d.Runs("tsc", 0)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 || runs[0].Linter != "tsc" {
		t.Errorf("expected only tsc runs, got %+v", runs)
	}

	runs, err = d.Runs("", 1)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected limit=1 to return 1 run, got %d", len(runs))
	}
}

func TestLatest(t *testing.T) {
	d := openTestDB(t)

	run, err := d.Latest("/proj", "tsc")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if run != nil {
		t.Fatalf("expected nil for empty history, got %+v", run)
	}

	if err := d.LogRun("/proj", "tsc", sampleResult(), 2, 50); err != nil {
		t.Fatalf("log run: %v", err)
	}
	run, err = d.Latest("/proj", "tsc")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if run == nil || run.Dir != "/proj" || run.Linter != "tsc" {
		t.Errorf("unexpected latest run: %+v", run)
	}
}

func TestReset(t *testing.T) {
	d := openTestDB(t)
	if err := d.LogRun("/proj", "tsc", sampleResult(), 2, 50); err != nil {
		t.Fatalf("log run: %v", err)
	}
	if err := d.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	runs, err := d.Runs("", 0)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty history after reset, got %d runs", len(runs))
	}
}
