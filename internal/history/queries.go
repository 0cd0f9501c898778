package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/madethis/lint-action/internal/linter"
)

// Run represents a row in the lint_runs table.
type Run struct {
	ID         int
	Dir        string
	Linter     string
	IsSuccess  bool
	Errors     int
	Warnings   int
	ExitCode   int
	DurationMs int
	Summary    string
	// Diagnostics holds the full result as JSON.
	Diagnostics string
	Timestamp   string
}

// LogRun records one completed lint invocation.
func (d *DB) LogRun(dir, linterName string, res linter.Result, exitCode, durationMs int) error {
	diagJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal diagnostics: %w", err)
	}
	_, err = d.conn.Exec(
		`INSERT INTO lint_runs (dir, linter, is_success, errors, warnings, exit_code, duration_ms, summary, diagnostics)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		dir, linterName, res.IsSuccess, len(res.Errors), len(res.Warnings),
		exitCode, durationMs, res.Summary(), string(diagJSON),
	)
	if err != nil {
		return fmt.Errorf("log lint run: %w", err)
	}
	return nil
}

// Runs returns the most recent runs, newest first. A non-empty linterName
// filters to one linter; limit <= 0 means no limit.
func (d *DB) Runs(linterName string, limit int) ([]Run, error) {
	query := `SELECT id, dir, linter, is_success, errors, warnings, exit_code, duration_ms, summary, diagnostics, timestamp
	          FROM lint_runs`
	var args []any
	if linterName != "" {
		query += ` WHERE linter = ?`
		args = append(args, linterName)
	}
	query += ` ORDER BY timestamp DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lint runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Latest returns the most recent run for a directory and linter, or nil if
// none is recorded.
func (d *DB) Latest(dir, linterName string) (*Run, error) {
	rows, err := d.conn.Query(
		`SELECT id, dir, linter, is_success, errors, warnings, exit_code, duration_ms, summary, diagnostics, timestamp
		 FROM lint_runs WHERE dir = ? AND linter = ?
		 ORDER BY timestamp DESC, id DESC LIMIT 1`,
		dir, linterName,
	)
	if err != nil {
		return nil, fmt.Errorf("query latest run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	r, err := scanRun(rows)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var r Run
	var exitCode, durationMs sql.NullInt64
	var summary, diagnostics sql.NullString
	err := rows.Scan(&r.ID, &r.Dir, &r.Linter, &r.IsSuccess, &r.Errors, &r.Warnings,
		&exitCode, &durationMs, &summary, &diagnostics, &r.Timestamp)
	if err != nil {
		return Run{}, fmt.Errorf("scan lint run: %w", err)
	}
	r.ExitCode = int(exitCode.Int64)
	r.DurationMs = int(durationMs.Int64)
	r.Summary = summary.String
	r.Diagnostics = diagnostics.String
	return r, nil
}
