// Package heuristics provides the static lookup tables the analyzer scores
// against: name markers for module classification, estimated sizes for
// well-known packages, usage-frequency lists, and known lighter-weight
// alternatives.
//
// The tables ship embedded as TOML defaults and can be replaced wholesale
// with a local file, so the scoring data can be swapped without rebuilding.
package heuristics

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default_heuristics.toml
var embeddedTables []byte

// Tables holds all heuristic lookup data used during analysis.
type Tables struct {
	Modules      ModuleTables     `toml:"modules"`
	Dependencies DependencyTables `toml:"dependencies"`
}

// ModuleTables holds name markers for classifying build-output modules.
type ModuleTables struct {
	VendorMarkers  []string `toml:"vendor_markers"`
	SharedMarkers  []string `toml:"shared_markers"`
	DynamicMarkers []string `toml:"dynamic_markers"`
	HeavyLibraries []string `toml:"heavy_libraries"`
}

// DependencyTables holds size estimates and replaceability data for
// declared packages.
type DependencyTables struct {
	DefaultSize  int64               `toml:"default_size"`
	HighUsage    []string            `toml:"high_usage"`
	MediumUsage  []string            `toml:"medium_usage"`
	Replaceable  []string            `toml:"replaceable"`
	Sizes        map[string]int64    `toml:"sizes"`
	Alternatives map[string][]string `toml:"alternatives"`
}

// Default returns the embedded heuristic tables.
func Default() (*Tables, error) {
	var t Tables
	if err := toml.Unmarshal(embeddedTables, &t); err != nil {
		return nil, fmt.Errorf("failed to parse embedded heuristics: %w", err)
	}
	return &t, nil
}

// LoadFromFile loads heuristic tables from a TOML file, replacing the
// embedded defaults entirely.
func LoadFromFile(path string) (*Tables, error) {
	var t Tables
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("failed to load heuristics from %s: %w", path, err)
	}
	return &t, nil
}

// SizeOf returns the estimated size in bytes for a declared package.
// Unknown packages get the default estimate ("unknown, assume small").
func (t *Tables) SizeOf(name string) int64 {
	if size, ok := t.Dependencies.Sizes[name]; ok {
		return size
	}
	return t.Dependencies.DefaultSize
}

// UsageOf returns the usage-frequency tier ("high", "medium", "low") for a
// declared package. Packages on neither list are low.
func (t *Tables) UsageOf(name string) string {
	for _, n := range t.Dependencies.HighUsage {
		if n == name {
			return "high"
		}
	}
	for _, n := range t.Dependencies.MediumUsage {
		if n == name {
			return "medium"
		}
	}
	return "low"
}

// IsReplaceable reports whether a package has a known smaller substitute.
func (t *Tables) IsReplaceable(name string) bool {
	for _, n := range t.Dependencies.Replaceable {
		if n == name {
			return true
		}
	}
	return false
}

// AlternativesFor returns the known replacement candidates for a package,
// in preference order. Returns nil if none are known.
func (t *Tables) AlternativesFor(name string) []string {
	return t.Dependencies.Alternatives[name]
}

// containsAny reports whether name contains any of the given markers.
func containsAny(name string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// IsVendorModule reports whether a module name carries a vendor marker.
func (t *Tables) IsVendorModule(name string) bool {
	return containsAny(name, t.Modules.VendorMarkers)
}

// IsSharedModule reports whether a module name carries a shared-chunk marker.
func (t *Tables) IsSharedModule(name string) bool {
	return containsAny(name, t.Modules.SharedMarkers)
}

// IsDynamicModule reports whether a module name indicates deferred loading.
func (t *Tables) IsDynamicModule(name string) bool {
	return containsAny(name, t.Modules.DynamicMarkers)
}

// IsHeavyLibrary reports whether a module name matches a known large library.
func (t *Tables) IsHeavyLibrary(name string) bool {
	return containsAny(name, t.Modules.HeavyLibraries)
}
