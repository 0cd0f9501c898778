package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/madethis/lint-action/internal/command"
	"github.com/madethis/lint-action/internal/config"
	"github.com/madethis/lint-action/internal/github"
	"github.com/madethis/lint-action/internal/history"
	"github.com/madethis/lint-action/internal/linter"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [linters...]",
	Short: "Run linters and report normalized diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dirFlag, _ := cmd.Flags().GetString("dir")
		configPath, _ := cmd.Flags().GetString("config")
		fix, _ := cmd.Flags().GetBool("fix")
		cont, _ := cmd.Flags().GetBool("continue")
		format, _ := cmd.Flags().GetString("format")
		annotate, _ := cmd.Flags().GetBool("annotate")
		repo, _ := cmd.Flags().GetString("repo")
		sha, _ := cmd.Flags().GetString("sha")
		noLog, _ := cmd.Flags().GetBool("no-log")

		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		dir := cfg.Lint.ProjectDir
		if dirFlag != "" {
			dir = dirFlag
		}
		prefix := cfg.Lint.Prefix
		if prefix == "" {
			prefix = command.ResolvePrefix(dir)
		}

		names := args
		if len(names) == 0 {
			for name := range cfg.Lint.Linters {
				names = append(names, name)
			}
			sort.Strings(names)
		}

		if annotate && (repo == "" || sha == "") {
			return fmt.Errorf("--annotate requires --repo and --sha")
		}

		warn := func(f string, a ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: "+f+"\n", a...)
		}
		reg := linter.NewRegistry(&command.ExecRunner{}, warn)

		var store *history.DB
		if !noLog {
			store, err = openHistory()
			if err != nil {
				return err
			}
			defer store.Close()
		}

		results := make(map[string]linter.Result)
		var firstErr error

		for _, name := range names {
			l, ok := reg.Get(name)
			if !ok {
				return fmt.Errorf("linter %q is not supported", name)
			}
			lc := cfg.Lint.Linters[name]

			timeout := parseDuration(lc.Timeout, 2*time.Minute)
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)

			start := time.Now()
			out, err := l.Lint(ctx, dir, linter.LintOptions{
				Args:   lc.Args,
				Fix:    fix && lc.AutoFix,
				Prefix: prefix,
			})
			cancel()
			durationMs := int(time.Since(start).Milliseconds())
			if err != nil {
				return fmt.Errorf("run linter %q: %w", name, err)
			}

			res := l.ParseOutput(dir, out)
			res = linter.ExcludePaths(res, cfg.Lint.Exclude)
			results[name] = res

			if store != nil {
				if err := store.LogRun(dir, name, res, out.ExitCode, durationMs); err != nil {
					return fmt.Errorf("log lint run: %w", err)
				}
			}

			if format != "json" {
				statusIcon := "PASS"
				if !res.IsSuccess {
					statusIcon = "FAIL"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s — %s (%dms)\n", statusIcon, name, res.Summary(), durationMs)
				printDiagnostics(cmd, res)
			}

			if annotate {
				gh := github.NewClient(&github.ExecRunner{})
				if err := gh.CreateCheckRun(repo, sha, name, res); err != nil {
					return err
				}
			}

			if !res.IsSuccess {
				if firstErr == nil {
					firstErr = fmt.Errorf("linter %q reported issues", name)
				}
				if !cont {
					break
				}
			}
		}

		if format == "json" {
			data, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}

		if firstErr != nil {
			cmd.SilenceUsage = true
			return firstErr
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().String("dir", "", "Project directory (overrides config)")
	checkCmd.Flags().String("config", "", "Path to lint config YAML")
	checkCmd.Flags().Bool("fix", false, "Ask linters to auto-fix where supported")
	checkCmd.Flags().Bool("continue", false, "Keep running linters after failures")
	checkCmd.Flags().String("format", "text", "Output format: text or json")
	checkCmd.Flags().Bool("annotate", false, "Post results as GitHub check-run annotations")
	checkCmd.Flags().String("repo", "", "GitHub repository (owner/name) for --annotate")
	checkCmd.Flags().String("sha", "", "Commit SHA for --annotate")
	checkCmd.Flags().Bool("no-log", false, "Skip recording the run in history")
}

// printDiagnostics lists each diagnostic under the per-linter status line.
func printDiagnostics(cmd *cobra.Command, res linter.Result) {
	w := cmd.OutOrStdout()
	for _, buckets := range [][]linter.Diagnostic{res.Errors, res.Warnings} {
		for _, d := range buckets {
			loc := ""
			if d.Path != "" {
				loc = fmt.Sprintf("%s(%d,%d): ", d.Path, d.FirstLine, d.Column)
			}
			code := ""
			if d.Code != "" {
				code = d.Code + ": "
			}
			fmt.Fprintf(w, "  %s: %s%s%s\n", d.Severity, loc, code, d.Message)
		}
	}
}

// loadConfig loads the config at path, or searches default locations when
// path is empty, and rejects invalid configs.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", errs[0].Error())
	}
	return cfg, nil
}

// openHistory opens and migrates the run-history store.
func openHistory() (*history.DB, error) {
	path, err := history.DefaultPath()
	if err != nil {
		return nil, err
	}
	d, err := history.Open(path)
	if err != nil {
		return nil, err
	}
	if err := d.Migrate(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// parseDuration parses a duration string, falling back to a default.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
