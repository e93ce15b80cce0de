// Package scanner collects raw build-output facts for analysis: one
// (name, size) observation per emitted chunk. Facts come from a bundler
// stats file or from walking a build output directory.
package scanner

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/bundlescope/internal/analyzer"
)

// chunkExtensions are the file extensions counted as build-output chunks
// when walking a dist directory.
var chunkExtensions = map[string]bool{
	".js":  true,
	".mjs": true,
	".cjs": true,
	".css": true,
}

// statsFile is the structured shape of a bundler stats export.
type statsFile struct {
	Modules []struct {
		Name      string `json:"name"`
		SizeBytes int64  `json:"size"`
	} `json:"modules"`
}

// ReadStatsFile parses build-output facts from a stats JSON file. Two
// shapes are accepted: {"modules": [{"name":..., "size":...}, ...]} as
// emitted by bundler stats plugins, and a flat {"name": size, ...} object.
func ReadStatsFile(path string) ([]analyzer.ModuleFact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	var structured statsFile
	if err := json.Unmarshal(data, &structured); err == nil && len(structured.Modules) > 0 {
		facts := make([]analyzer.ModuleFact, 0, len(structured.Modules))
		for _, m := range structured.Modules {
			facts = append(facts, analyzer.ModuleFact{Name: m.Name, SizeBytes: m.SizeBytes})
		}
		return facts, nil
	}

	var flat map[string]int64
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("failed to parse stats file %s: %w", path, err)
	}

	facts := make([]analyzer.ModuleFact, 0, len(flat))
	for name, size := range flat {
		facts = append(facts, analyzer.ModuleFact{Name: name, SizeBytes: size})
	}
	return facts, nil
}

// ScanDist walks a build output directory and returns one fact per emitted
// chunk (.js, .mjs, .cjs, .css), named by its path relative to the
// directory. Source maps and other assets are ignored.
func ScanDist(dir string) ([]analyzer.ModuleFact, error) {
	var facts []analyzer.ModuleFact

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !chunkExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		facts = append(facts, analyzer.ModuleFact{
			Name:      filepath.ToSlash(rel),
			SizeBytes: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan build output in %s: %w", dir, err)
	}

	if len(facts) == 0 {
		fmt.Fprintf(os.Stderr, "scanner: no build output chunks found in %s\n", dir)
	}

	return facts, nil
}
