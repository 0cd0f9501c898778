package command

import (
	"context"
	"strings"
	"testing"
)

func TestExecRunner_CapturesStdout(t *testing.T) {
	r := &ExecRunner{}
	out, err := r.Run(context.Background(), t.TempDir(), "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Errorf("expected stdout=hello, got %q", out.Stdout)
	}
	if out.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", out.ExitCode)
	}
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	r := &ExecRunner{}
	out, err := r.Run(context.Background(), t.TempDir(), "echo issues found; exit 3")
	if err != nil {
		t.Fatalf("expected no error for non-zero exit, got %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", out.ExitCode)
	}
	if strings.TrimSpace(out.Stdout) != "issues found" {
		t.Errorf("expected stdout captured on failure, got %q", out.Stdout)
	}
}

func TestExecRunner_CapturesStderr(t *testing.T) {
	r := &ExecRunner{}
	out, err := r.Run(context.Background(), t.TempDir(), "echo oops >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out.Stderr) != "oops" {
		t.Errorf("expected stderr=oops, got %q", out.Stderr)
	}
}

func TestExecRunner_RunsInDir(t *testing.T) {
	dir := t.TempDir()
	r := &ExecRunner{}
	out, err := r.Run(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Stdout, dir) {
		t.Errorf("expected pwd output to contain %q, got %q", dir, out.Stdout)
	}
}

func TestExecRunner_Exists(t *testing.T) {
	r := &ExecRunner{}
	if !r.Exists("sh") {
		t.Error("expected sh to exist")
	}
	if r.Exists("definitely-not-a-real-binary-12345") {
		t.Error("expected nonsense binary to not exist")
	}
}
