package analyzer

import "sort"

// AnalyzeDependencies builds dependency records from production and
// development declarations, sorted by estimated size descending.
//
// Every lookup degrades gracefully: a name missing from the size table gets
// the default estimate, a name on no usage list is low-usage, and a name
// with no known alternatives is simply not replaceable. Unknown packages
// are reported as "unknown, assume small" rather than failing the run.
func (a *Analyzer) AnalyzeDependencies(deps, devDeps map[string]string) []DependencyRecord {
	records := make([]DependencyRecord, 0, len(deps)+len(devDeps))

	for name, version := range deps {
		records = append(records, a.assessDependency(name, version, false))
	}
	for name, version := range devDeps {
		records = append(records, a.assessDependency(name, version, true))
	}

	// Size descending, name ascending on ties so map iteration order
	// never leaks into the output.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].SizeBytes != records[j].SizeBytes {
			return records[i].SizeBytes > records[j].SizeBytes
		}
		return records[i].Name < records[j].Name
	})

	return records
}

// assessDependency resolves one declared package against the heuristic
// tables.
func (a *Analyzer) assessDependency(name, version string, devOnly bool) DependencyRecord {
	return DependencyRecord{
		Name:         name,
		Version:      version,
		SizeBytes:    a.tables.SizeOf(name),
		DevOnly:      devOnly,
		Usage:        a.tables.UsageOf(name),
		Replaceable:  a.tables.IsReplaceable(name),
		Alternatives: a.tables.AlternativesFor(name),
	}
}
