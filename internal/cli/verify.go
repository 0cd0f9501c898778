package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/madethis/lint-action/internal/command"
	"github.com/madethis/lint-action/internal/linter"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [linters...]",
	Short: "Verify that linters and their package manager are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		dirFlag, _ := cmd.Flags().GetString("dir")
		configPath, _ := cmd.Flags().GetString("config")

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

		reg := linter.NewRegistry(&command.ExecRunner{}, nil)
		var firstErr error

		for _, name := range names {
			l, ok := reg.Get(name)
			if !ok {
				return fmt.Errorf("linter %q is not supported", name)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			err := l.VerifySetup(ctx, dir, prefix)
			cancel()

			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "[OK] %s\n", name)
			case errors.Is(err, linter.ErrDependencyMissing):
				fmt.Fprintf(cmd.OutOrStdout(), "[FAIL] %s — npm is not installed\n", name)
			case errors.Is(err, linter.ErrToolNotInstalled):
				fmt.Fprintf(cmd.OutOrStdout(), "[FAIL] %s — not installed in %s\n", name, dir)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "[FAIL] %s — %v\n", name, err)
			}
			if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("verify %q: %w", name, err)
			}
		}

		if firstErr != nil {
			cmd.SilenceUsage = true
			return firstErr
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().String("dir", "", "Project directory (overrides config)")
	verifyCmd.Flags().String("config", "", "Path to lint config YAML")
}
