package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Output captures the result of a completed command invocation. A non-zero
// ExitCode is a legitimate outcome (linters exit non-zero when they find
// issues), not a failure.
type Output struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// Runner abstracts command execution for testability.
type Runner interface {
	// Run executes a shell command in dir and returns its captured output.
	// It returns an error only when the command could not be started or was
	// killed; a non-zero exit status is reported via Output.ExitCode.
	Run(ctx context.Context, dir string, command string) (Output, error)
	// Exists reports whether an executable is available on PATH.
	Exists(name string) bool
}

// ExecRunner implements Runner by shelling out.
type ExecRunner struct{}

func (e *ExecRunner) Run(ctx context.Context, dir string, command string) (Output, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf strings.Builder
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	out := Output{Stdout: stdoutBuf.String(), Stderr: stderrBuf.String()}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		out.ExitCode = -1
		return out, fmt.Errorf("exec: %w", err)
	}
	return out, nil
}

func (e *ExecRunner) Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
