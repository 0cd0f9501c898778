package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded lint runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		linterFilter, _ := cmd.Flags().GetString("linter")
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Runs(linterFilter, limit)
		if err != nil {
			return fmt.Errorf("get lint history: %w", err)
		}

		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No lint runs found.")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-6s %-10s %-6s %-8s %-8s %-8s %s\n",
			"ID", "LINTER", "RESULT", "ERRORS", "WARNINGS", "DURATION", "DIR")
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 70))

		for _, r := range runs {
			result := "FAIL"
			if r.IsSuccess {
				result = "PASS"
			}
			fmt.Fprintf(w, "%-6d %-10s %-6s %-8d %-8d %-8s %s\n",
				r.ID, r.Linter, result, r.Errors, r.Warnings,
				fmt.Sprintf("%dms", r.DurationMs), r.Dir)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().String("linter", "", "Filter by linter name")
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to show (0 = all)")
}
