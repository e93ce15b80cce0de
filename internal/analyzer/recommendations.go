package analyzer

import (
	"fmt"
	"sort"
)

// Recommendation kinds.
const (
	KindTreeShaking           = "tree-shaking"
	KindCodeSplitting         = "code-splitting"
	KindLazyLoading           = "lazy-loading"
	KindCompression           = "compression"
	KindDependencyReplacement = "dependency-replacement"
)

// GenerateRecommendations produces the ranked optimization suggestions for
// one run. Four independent passes are concatenated, then stable-sorted by
// priority (high first) with ties broken by estimated savings descending:
//
//   - code-splitting, per splittable module above the size floor (0.8x)
//   - dependency-replacement, per replaceable production dependency (0.6x)
//   - one tree-shaking suggestion over the whole bundle (0.1x of raw)
//   - one compression suggestion over the whole bundle (0.2x of compressed)
//
// The tree-shaking and compression entries are always emitted, even for an
// empty bundle, so the report is never silent about baseline wins.
func (a *Analyzer) GenerateRecommendations(modules []ModuleRecord, deps []DependencyRecord) []Recommendation {
	var recs []Recommendation

	recs = append(recs, codeSplittingPass(modules)...)
	recs = append(recs, dependencyReplacementPass(deps)...)
	recs = append(recs, treeShakingPass(modules))
	recs = append(recs, compressionPass(modules))

	sort.SliceStable(recs, func(i, j int) bool {
		wi, wj := priorityWeight(recs[i].Priority), priorityWeight(recs[j].Priority)
		if wi != wj {
			return wi > wj
		}
		return recs[i].EstimatedSavings > recs[j].EstimatedSavings
	})

	return recs
}

// priorityWeight maps a priority tier to its sort weight.
func priorityWeight(priority string) int {
	switch priority {
	case "high":
		return 3
	case "medium":
		return 2
	default:
		return 1
	}
}

// codeSplittingPass emits one recommendation per splittable module large
// enough to be worth a separate chunk. Savings estimate: 0.8x of raw size,
// the share assumed to move out of the critical loading path.
func codeSplittingPass(modules []ModuleRecord) []Recommendation {
	var recs []Recommendation

	for _, m := range modules {
		if !m.Splittable || m.SizeBytes <= splitCandidateBytes {
			continue
		}

		recs = append(recs, Recommendation{
			Kind:             KindCodeSplitting,
			Description:      fmt.Sprintf("Split %s into a separately loaded chunk", m.Name),
			EstimatedSavings: fraction(m.SizeBytes, 4, 5),
			Difficulty:       "medium",
			Priority:         "high",
			Steps: []string{
				fmt.Sprintf("Identify the entry points that import %s", m.Name),
				"Convert static imports to dynamic import() calls",
				fmt.Sprintf("Configure the bundler to emit %s as its own chunk", m.Name),
				"Verify the chunk loads on demand in the browser network panel",
			},
		})
	}

	return recs
}

// dependencyReplacementPass emits one recommendation per replaceable
// production dependency with known alternatives. Savings estimate: 0.6x of
// the dependency's estimated size. Large dependencies get high priority.
func dependencyReplacementPass(deps []DependencyRecord) []Recommendation {
	var recs []Recommendation

	for _, d := range deps {
		if d.DevOnly || !d.Replaceable || len(d.Alternatives) == 0 {
			continue
		}

		priority := "medium"
		if d.SizeBytes > highPriorityDepBytes {
			priority = "high"
		}

		steps := []string{
			fmt.Sprintf("Audit how %s is used across the codebase", d.Name),
		}
		for _, alt := range d.Alternatives {
			steps = append(steps, fmt.Sprintf("Evaluate %s as a replacement", alt))
		}
		steps = append(steps, "Re-run the analysis to confirm the size reduction")

		recs = append(recs, Recommendation{
			Kind:             KindDependencyReplacement,
			Description:      fmt.Sprintf("Replace %s with a lighter alternative", d.Name),
			EstimatedSavings: fraction(d.SizeBytes, 3, 5),
			Difficulty:       "medium",
			Priority:         priority,
			Steps:            steps,
		})
	}

	return recs
}

// treeShakingPass emits the single whole-bundle tree-shaking suggestion.
// Savings estimate: 0.1x of total raw size.
func treeShakingPass(modules []ModuleRecord) Recommendation {
	var total int64
	for _, m := range modules {
		total += m.SizeBytes
	}

	return Recommendation{
		Kind:             KindTreeShaking,
		Description:      "Enable tree shaking to drop unused exports",
		EstimatedSavings: fraction(total, 1, 10),
		Difficulty:       "easy",
		Priority:         "medium",
		Steps: []string{
			"Ensure all modules use ES module import/export syntax",
			"Mark packages as side-effect free where that is accurate",
			"Enable production minification in the bundler",
			"Compare output sizes before and after",
		},
	}
}

// compressionPass emits the single whole-bundle compression suggestion.
// Savings estimate: 0.2x of the total compressed estimate, the typical
// Brotli improvement over gzip.
func compressionPass(modules []ModuleRecord) Recommendation {
	var total int64
	for _, m := range modules {
		total += m.CompressedEstimate
	}

	return Recommendation{
		Kind:             KindCompression,
		Description:      "Serve build output with Brotli compression",
		EstimatedSavings: fraction(total, 1, 5),
		Difficulty:       "easy",
		Priority:         "high",
		Steps: []string{
			"Enable Brotli in the server or CDN configuration",
			"Precompress static assets at build time",
			"Verify Content-Encoding headers on deployed assets",
		},
	}
}
