package analyzer

import "sort"

// Heuristic policy thresholds. These are fixed policy values, not measured
// quantities: they encode the project's working definition of "large enough
// to care about", and tests pin them exactly.
const (
	// highPotentialBytes is the raw size above which a module is worth
	// aggressive optimization effort.
	highPotentialBytes = 200 * 1024

	// mediumPotentialBytes is the raw size above which a module is worth
	// a look but not a rework.
	mediumPotentialBytes = 50 * 1024

	// splitCandidateBytes is the minimum raw size for a code-splitting
	// recommendation. Splitting smaller chunks costs more in request
	// overhead than it saves.
	splitCandidateBytes = 50 * 1024

	// highPriorityDepBytes is the estimated dependency size above which a
	// replacement recommendation is promoted to high priority.
	highPriorityDepBytes = 100000
)

// fraction returns size*num/den, the exact floor for non-negative sizes.
// Savings ratios are integer rationals rather than floats so estimates are
// exact and platform independent.
func fraction(size, num, den int64) int64 {
	return size * num / den
}

// compressedEstimate returns the estimated gzip size for a raw size,
// a fixed 0.3 ratio.
func compressedEstimate(size int64) int64 {
	return fraction(size, 3, 10)
}

// AnalyzeModules classifies raw build-output facts into module records,
// sorted by raw size descending. Malformed facts (negative sizes, empty
// names) are carried through as-is: this is a best-effort heuristic tool,
// not a validating pipeline.
func (a *Analyzer) AnalyzeModules(facts []ModuleFact) []ModuleRecord {
	records := make([]ModuleRecord, 0, len(facts))

	for _, f := range facts {
		rec := ModuleRecord{
			Name:               f.Name,
			SizeBytes:          f.SizeBytes,
			CompressedEstimate: compressedEstimate(f.SizeBytes),
			Category:           a.classifyModule(f.Name),
			Potential:          potentialFor(f.SizeBytes),
		}
		rec.Splittable = a.isSplittable(rec.Category, f.Name)
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SizeBytes > records[j].SizeBytes
	})

	return records
}

// classifyModule derives a module's category from its name. Precedence:
// vendor markers win over shared markers, which win over deferred-loading
// markers; everything else is application code.
func (a *Analyzer) classifyModule(name string) string {
	switch {
	case a.tables.IsVendorModule(name):
		return "vendor"
	case a.tables.IsSharedModule(name):
		return "shared"
	case a.tables.IsDynamicModule(name):
		return "dynamic"
	default:
		return "application"
	}
}

// isSplittable reports whether a module is a candidate for separate,
// deferred loading. Vendor chunks are never split further; modules already
// marked for deferred loading and known-heavy libraries always are.
func (a *Analyzer) isSplittable(category, name string) bool {
	if category == "vendor" {
		return false
	}
	if a.tables.IsDynamicModule(name) {
		return true
	}
	if a.tables.IsHeavyLibrary(name) {
		return true
	}
	return false
}

// potentialFor derives the optimization-potential tier from raw size alone.
func potentialFor(size int64) string {
	if size > highPotentialBytes {
		return "high"
	}
	if size > mediumPotentialBytes {
		return "medium"
	}
	return "low"
}
