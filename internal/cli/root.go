package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "lint-action",
	Short: "lint-action — run linters and normalize their diagnostics",
	Long: `lint-action runs static-analysis tools against a project, normalizes
their heterogeneous output into structured error/warning diagnostics, and
reports the results — to the terminal, as GitHub check-run annotations, or
into a local run history (SQLite in ~/.lint-action/).`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(historyCmd)
}
