package github

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/madethis/lint-action/internal/linter"
)

// CmdRunner provides gh command execution. Interface for testing.
type CmdRunner interface {
	Run(args ...string) (string, error)
}

// ExecRunner runs gh commands via exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(args ...string) (string, error) {
	cmd := exec.Command("gh", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return strings.TrimSpace(string(out)), fmt.Errorf("gh %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// maxAnnotations is the per-request annotation cap imposed by the GitHub
// checks API.
const maxAnnotations = 50

// Annotation is one check-run annotation in the shape the checks API expects.
type Annotation struct {
	Path            string `json:"path"`
	StartLine       int    `json:"start_line"`
	EndLine         int    `json:"end_line"`
	StartColumn     int    `json:"start_column,omitempty"`
	EndColumn       int    `json:"end_column,omitempty"`
	AnnotationLevel string `json:"annotation_level"`
	Message         string `json:"message"`
	Title           string `json:"title,omitempty"`
}

// checkRunOutput is the nested output object of a check-run payload.
type checkRunOutput struct {
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// checkRunPayload is the request body for creating a check run.
type checkRunPayload struct {
	Name       string         `json:"name"`
	HeadSHA    string         `json:"head_sha"`
	Status     string         `json:"status"`
	Conclusion string         `json:"conclusion"`
	Output     checkRunOutput `json:"output"`
}

// FromResult converts a normalized lint result into check-run annotations.
// Diagnostics with no file path cannot be annotated; they surface in the
// check-run summary instead. At most maxAnnotations entries are returned.
func FromResult(linterName string, res linter.Result) []Annotation {
	var anns []Annotation
	for _, d := range append(append([]linter.Diagnostic{}, res.Errors...), res.Warnings...) {
		if d.Path == "" {
			continue
		}
		level := "failure"
		if d.Severity == linter.SeverityWarning {
			level = "warning"
		}
		title := linterName
		if d.Code != "" {
			title = fmt.Sprintf("%s (%s)", linterName, d.Code)
		}
		anns = append(anns, Annotation{
			Path:            d.Path,
			StartLine:       d.FirstLine,
			EndLine:         d.LastLine,
			StartColumn:     d.Column,
			EndColumn:       d.Column,
			AnnotationLevel: level,
			Message:         d.Message,
			Title:           title,
		})
		if len(anns) == maxAnnotations {
			break
		}
	}
	return anns
}

// Client posts lint results to GitHub as check runs.
type Client struct {
	cmd CmdRunner
}

// NewClient creates a GitHub client.
func NewClient(cmd CmdRunner) *Client {
	return &Client{cmd: cmd}
}

// CreateCheckRun creates a completed check run on repo at sha carrying the
// result's diagnostics as annotations.
func (c *Client) CreateCheckRun(repo, sha, linterName string, res linter.Result) error {
	conclusion := "success"
	if !res.IsSuccess {
		conclusion = "failure"
	}

	summary := res.Summary()
	for _, d := range res.Errors {
		// Location-less diagnostics go into the summary text.
		if d.Path == "" {
			summary += "\n- " + d.Message
		}
	}

	payload := checkRunPayload{
		Name:       linterName,
		HeadSHA:    sha,
		Status:     "completed",
		Conclusion: conclusion,
		Output: checkRunOutput{
			Title:       fmt.Sprintf("%s results", linterName),
			Summary:     summary,
			Annotations: FromResult(linterName, res),
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal check run payload: %w", err)
	}

	tmp, err := os.CreateTemp("", "check-run-*.json")
	if err != nil {
		return fmt.Errorf("create payload file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write payload file: %w", err)
	}
	tmp.Close()

	_, err = c.cmd.Run("api", fmt.Sprintf("repos/%s/check-runs", repo), "-X", "POST", "--input", tmp.Name())
	if err != nil {
		return fmt.Errorf("create check run: %w", err)
	}
	return nil
}
