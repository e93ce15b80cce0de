package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/bundlescope/internal/output"
	"github.com/spf13/cobra"
)

var (
	analyzeTop     int
	analyzeVerbose bool
	analyzeNoSave  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze build output and print ranked recommendations",
	Long: `Run the full analysis pipeline: classify build-output modules, assess
declared dependencies, and generate ranked optimization recommendations.

Recommendations are sorted by priority (high first), ties broken by
estimated savings. Use --verbose to see step-by-step instructions for
each recommendation.

Each completed run is recorded in the history database unless --no-save
is given. Compare runs with 'bundlescope history'.`,
	Example: `  # Analyze a build directory
  bundlescope analyze --dist ./dist

  # Analyze from a bundler stats export, show all steps
  bundlescope analyze --stats ./stats.json --verbose

  # Top three recommendations only, without recording the run
  bundlescope analyze --dist ./dist --top 3 --no-save`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "Show only the top N recommendations (0 = all)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Show step-by-step instructions for each recommendation")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "Do not record this run in the history database")

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeTop < 0 {
		return fmt.Errorf("invalid --top value %d: must be >= 0", analyzeTop)
	}

	facts, err := collectFacts()
	if err != nil {
		return err
	}

	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	report := a.Analyze(cmd.Context(), facts)

	recs := report.Recommendations
	if analyzeTop > 0 && analyzeTop < len(recs) {
		recs = recs[:analyzeTop]
	}

	fmt.Println(output.RenderReportSummary(report))
	fmt.Println()
	if analyzeVerbose {
		fmt.Print(output.RenderRecommendationDetail(recs))
	} else {
		fmt.Print(output.RenderRecommendationTable(recs))
	}
	fmt.Println()
	fmt.Println(output.RenderSavingsFooter(report))

	if analyzeNoSave {
		return nil
	}

	st, err := openStore()
	if err != nil {
		// Recording is best-effort; the analysis itself succeeded.
		fmt.Fprintf(os.Stderr, "warning: run not recorded: %v\n", err)
		return nil
	}
	defer st.Close()

	if _, err := st.InsertReport(report); err != nil {
		fmt.Fprintf(os.Stderr, "warning: run not recorded: %v\n", err)
	}

	return nil
}
