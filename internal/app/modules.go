package app

import (
	"fmt"

	"github.com/blackwell-systems/bundlescope/internal/output"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Show classified build-output modules",
	Long: `Classify each build-output module and show its size, estimated gzip
size, category, splittability, and optimization potential.

Categories are derived from the module name: vendor chunks, shared chunks,
dynamically loaded chunks, and application code. Optimization potential is
a pure function of raw size (high above 200 KB, medium above 50 KB).`,
	Example: `  # Classify chunks in a build directory
  bundlescope modules --dist ./dist

  # Classify modules from a stats export
  bundlescope modules --stats ./stats.json`,
	RunE: runModules,
}

func init() {
	RootCmd.AddCommand(modulesCmd)
}

func runModules(cmd *cobra.Command, args []string) error {
	facts, err := collectFacts()
	if err != nil {
		return err
	}

	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	fmt.Print(output.RenderModuleTable(a.AnalyzeModules(facts)))
	return nil
}
