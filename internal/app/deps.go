package app

import (
	"fmt"

	"github.com/blackwell-systems/bundlescope/internal/output"
	"github.com/spf13/cobra"
)

var depsDevOnly bool

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show dependency assessments with replacement candidates",
	Long: `Assess each declared dependency: estimated size, usage frequency, and
known lighter-weight alternatives.

Declarations come from the dev server (--manifest-url) or a local
package.json (--manifest). Packages missing from the heuristic tables are
assumed small, low-usage, and non-replaceable rather than failing the run.`,
	Example: `  # Assess dependencies from a local package.json
  bundlescope deps --manifest ./package.json

  # Assess dependencies served by the dev server
  bundlescope deps --manifest-url http://localhost:3000/package.json

  # Development declarations only
  bundlescope deps --manifest ./package.json --dev`,
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().BoolVar(&depsDevOnly, "dev", false, "Show only devDependencies")

	RootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	m := manifestSource().Load(cmd.Context())
	records := a.AnalyzeDependencies(m.Dependencies, m.DevDependencies)

	if depsDevOnly {
		filtered := records[:0]
		for _, r := range records {
			if r.DevOnly {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	fmt.Print(output.RenderDependencyTable(records))
	return nil
}
