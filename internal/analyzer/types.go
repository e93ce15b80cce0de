package analyzer

import "time"

// ModuleFact is one raw build-output observation: a named chunk and its
// on-disk size. Facts are collected by the scanner and consumed as-is;
// the analyzer does not validate them.
type ModuleFact struct {
	Name      string
	SizeBytes int64
}

// ModuleRecord describes one unit of compiled build output after
// classification.
type ModuleRecord struct {
	Name               string
	SizeBytes          int64
	CompressedEstimate int64  // estimated gzip size, 0.3x of raw
	Category           string // "vendor", "application", "shared", "dynamic"
	Splittable         bool   // candidate for separate, deferred loading
	Potential          string // "high", "medium", "low"
}

// DependencyRecord describes one declared package with its replaceability
// assessment.
type DependencyRecord struct {
	Name         string
	Version      string
	SizeBytes    int64  // estimated, from the heuristic size table
	DevOnly      bool   // declared under devDependencies
	Usage        string // "high", "medium", "low"
	Replaceable  bool
	Alternatives []string // candidate replacements, preference order
}

// Recommendation is one actionable optimization suggestion.
type Recommendation struct {
	Kind             string // "tree-shaking", "code-splitting", "lazy-loading", "compression", "dependency-replacement"
	Description      string
	EstimatedSavings int64  // bytes
	Difficulty       string // "easy", "medium", "hard"
	Priority         string // "high", "medium", "low"
	Steps            []string
}

// Report is the aggregate result of one analysis run. Reports are immutable
// once produced; the analyzer caches the first one and hands it back on
// subsequent calls until the cache is cleared.
type Report struct {
	TotalSizeBytes       int64
	TotalCompressedBytes int64
	Modules              []ModuleRecord
	Dependencies         []DependencyRecord
	Recommendations      []Recommendation
	CreatedAt            time.Time
}

// EstimatedSavings returns the sum of savings estimates across all
// recommendations in the report.
func (r *Report) EstimatedSavings() int64 {
	var total int64
	for _, rec := range r.Recommendations {
		total += rec.EstimatedSavings
	}
	return total
}
