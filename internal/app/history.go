package app

import (
	"fmt"

	"github.com/blackwell-systems/bundlescope/internal/output"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyID    int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded analysis runs",
	Long: `List past analysis runs recorded by 'bundlescope analyze', newest first,
with their bundle totals and estimated savings.

Use --id to print the ranked recommendations recorded for one run.`,
	Example: `  # Last ten runs
  bundlescope history

  # Everything
  bundlescope history --limit 0

  # Recommendations recorded for run 3
  bundlescope history --id 3`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum runs to list (0 = all)")
	historyCmd.Flags().Int64Var(&historyID, "id", 0, "Show recommendations recorded for one run")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyLimit < 0 {
		return fmt.Errorf("invalid --limit value %d: must be >= 0", historyLimit)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if historyID > 0 {
		recs, err := st.GetRecommendations(historyID)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			return fmt.Errorf("no recommendations recorded for run %d", historyID)
		}
		fmt.Print(output.RenderRecommendationDetail(recs))
		return nil
	}

	reports, err := st.ListReports(historyLimit)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderHistoryTable(reports))
	return nil
}
