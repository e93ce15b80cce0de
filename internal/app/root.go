package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath         string
	statsPath      string
	distDir        string
	manifestURL    string
	manifestPath   string
	heuristicsPath string

	// RootCmd is the root command for bundlescope
	RootCmd = &cobra.Command{
		Use:   "bundlescope",
		Short: "Heuristic bundle size analysis with optimization recommendations",
		Long: `bundlescope inspects a JavaScript build's output and dependency manifest
and produces ranked optimization recommendations with estimated byte savings.

Build output comes from either a bundler stats file (--stats) or a dist
directory (--dist). Dependency declarations are fetched from a dev server
(--manifest-url) or read from a local package.json (--manifest); when the
fetch fails, a built-in fallback dataset keeps the analysis running.

All scoring is heuristic: sizes for well-known packages, usage tiers, and
replacement candidates come from static tables you can override with
--heuristics.

Quick Start:
  1. bundlescope analyze --dist ./dist
  2. bundlescope deps --manifest ./package.json
  3. bundlescope watch --dist ./dist   # re-analyze on every build

Examples:
  # Analyze a build directory
  bundlescope analyze --dist ./dist

  # Analyze from a bundler stats export
  bundlescope analyze --stats ./stats.json

  # Show module classifications only
  bundlescope modules --dist ./dist

  # Show dependency assessments with replacement candidates
  bundlescope deps --manifest ./package.json

  # List past analysis runs
  bundlescope history

  # Re-analyze whenever the bundler writes new output
  bundlescope watch --dist ./dist`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("bundlescope: heuristic bundle size analysis")
			fmt.Println()
			fmt.Println("Tip: Run 'bundlescope analyze --dist ./dist' to analyze a build.")
			fmt.Println("     Run 'bundlescope history' to review past runs.")
			fmt.Println("     Run 'bundlescope --help' for all commands.")
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.bundlescope/bundlescope.db)")
	RootCmd.PersistentFlags().StringVar(&statsPath, "stats", "", "bundler stats JSON file to analyze")
	RootCmd.PersistentFlags().StringVar(&distDir, "dist", "", "build output directory to analyze")
	RootCmd.PersistentFlags().StringVar(&manifestURL, "manifest-url", "http://localhost:3000/package.json", "dev-server endpoint serving package.json")
	RootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "local package.json (overrides --manifest-url)")
	RootCmd.PersistentFlags().StringVar(&heuristicsPath, "heuristics", "", "heuristic tables TOML file (default: built-in tables)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Create .bundlescope directory if it doesn't exist
	scopeDir := filepath.Join(home, ".bundlescope")
	if err := os.MkdirAll(scopeDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create bundlescope directory: %w", err)
	}

	return filepath.Join(scopeDir, "bundlescope.db"), nil
}
