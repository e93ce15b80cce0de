package app

import (
	"fmt"

	"github.com/blackwell-systems/bundlescope/internal/analyzer"
	"github.com/blackwell-systems/bundlescope/internal/heuristics"
	"github.com/blackwell-systems/bundlescope/internal/manifest"
	"github.com/blackwell-systems/bundlescope/internal/scanner"
	"github.com/blackwell-systems/bundlescope/internal/store"
)

// collectFacts gathers build-output facts from whichever input flag was
// given. Exactly one of --stats and --dist is required.
func collectFacts() ([]analyzer.ModuleFact, error) {
	switch {
	case statsPath != "" && distDir != "":
		return nil, fmt.Errorf("--stats and --dist cannot be used together")
	case statsPath != "":
		return scanner.ReadStatsFile(statsPath)
	case distDir != "":
		return scanner.ScanDist(distDir)
	default:
		return nil, fmt.Errorf("either --stats or --dist is required")
	}
}

// loadTables returns the heuristic tables: the --heuristics file when
// given, the embedded defaults otherwise.
func loadTables() (*heuristics.Tables, error) {
	if heuristicsPath != "" {
		return heuristics.LoadFromFile(heuristicsPath)
	}
	return heuristics.Default()
}

// manifestSource returns the dependency-declaration source selected by the
// manifest flags. A local file takes precedence over the URL.
func manifestSource() manifest.Source {
	if manifestPath != "" {
		return &manifest.FileSource{Path: manifestPath}
	}
	return &manifest.HTTPSource{URL: manifestURL}
}

// newAnalyzer assembles an analyzer from the global flags.
func newAnalyzer() (*analyzer.Analyzer, error) {
	tables, err := loadTables()
	if err != nil {
		return nil, err
	}
	return analyzer.New(manifestSource(), tables)
}

// openStore opens the history database and ensures the schema exists.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, err
	}

	return st, nil
}
