package analyzer

import (
	"strings"
	"testing"
)

func TestGenerateRecommendations_EmptyInputs(t *testing.T) {
	a := setupAnalyzer(t, nil)

	recs := a.GenerateRecommendations(nil, nil)

	// Tree-shaking and compression are always emitted, even for an empty
	// bundle.
	if len(recs) != 2 {
		t.Fatalf("expected exactly 2 recommendations, got %d", len(recs))
	}

	if recs[0].Kind != KindCompression {
		t.Errorf("expected compression first (high priority), got %s", recs[0].Kind)
	}
	if recs[1].Kind != KindTreeShaking {
		t.Errorf("expected tree-shaking second, got %s", recs[1].Kind)
	}
	for _, rec := range recs {
		if rec.EstimatedSavings != 0 {
			t.Errorf("%s: expected zero savings for empty bundle, got %d", rec.Kind, rec.EstimatedSavings)
		}
	}
}

func TestGenerateRecommendations_CodeSplitting(t *testing.T) {
	a := setupAnalyzer(t, nil)

	modules := a.AnalyzeModules([]ModuleFact{
		{Name: "routes/lazy-chart.js", SizeBytes: 100 * 1024},
		{Name: "routes/lazy-small.js", SizeBytes: 50 * 1024}, // at the floor, not above
		{Name: "vendor-huge.js", SizeBytes: 900 * 1024},      // vendor, never split
	})

	recs := a.GenerateRecommendations(modules, nil)

	var split []Recommendation
	for _, rec := range recs {
		if rec.Kind == KindCodeSplitting {
			split = append(split, rec)
		}
	}

	if len(split) != 1 {
		t.Fatalf("expected 1 code-splitting recommendation, got %d", len(split))
	}

	rec := split[0]
	if want := int64(100*1024) * 4 / 5; rec.EstimatedSavings != want {
		t.Errorf("expected savings %d, got %d", want, rec.EstimatedSavings)
	}
	if rec.Difficulty != "medium" || rec.Priority != "high" {
		t.Errorf("expected medium/high, got %s/%s", rec.Difficulty, rec.Priority)
	}
	if len(rec.Steps) != 4 {
		t.Errorf("expected 4 steps, got %d", len(rec.Steps))
	}
	if !strings.Contains(rec.Description, "routes/lazy-chart.js") {
		t.Errorf("expected description to name the module, got %q", rec.Description)
	}
}

func TestGenerateRecommendations_DependencyReplacement(t *testing.T) {
	a := setupAnalyzer(t, nil)

	deps := a.AnalyzeDependencies(
		map[string]string{
			"lucide-react": "^0.356.0", // 150000 bytes, above the high-priority line
			"axios":        "^1.6.0",   // 53000 bytes, below it
		},
		map[string]string{
			"lodash": "^4.17.21", // replaceable, but dev-only declarations are skipped
		},
	)

	recs := a.GenerateRecommendations(nil, deps)

	replacements := make(map[string]Recommendation)
	for _, rec := range recs {
		if rec.Kind == KindDependencyReplacement {
			for name := range map[string]bool{"lucide-react": true, "axios": true, "lodash": true} {
				if strings.Contains(rec.Description, name) {
					replacements[name] = rec
				}
			}
		}
	}

	if len(replacements) != 2 {
		t.Fatalf("expected replacement recommendations for lucide-react and axios, got %d", len(replacements))
	}
	if _, ok := replacements["lodash"]; ok {
		t.Error("expected no replacement recommendation for dev-only lodash")
	}

	lucide := replacements["lucide-react"]
	if lucide.Priority != "high" {
		t.Errorf("expected high priority for lucide-react, got %s", lucide.Priority)
	}
	if lucide.EstimatedSavings != 90000 {
		t.Errorf("expected savings 90000, got %d", lucide.EstimatedSavings)
	}

	axios := replacements["axios"]
	if axios.Priority != "medium" {
		t.Errorf("expected medium priority for axios, got %s", axios.Priority)
	}
	if want := int64(53000) * 3 / 5; axios.EstimatedSavings != want {
		t.Errorf("expected savings %d, got %d", want, axios.EstimatedSavings)
	}

	// Steps must list the replacement candidates.
	foundAlt := false
	for _, step := range lucide.Steps {
		if strings.Contains(step, "react-icons") {
			foundAlt = true
		}
	}
	if !foundAlt {
		t.Error("expected steps to mention a replacement candidate")
	}
}

func TestGenerateRecommendations_WholeBundlePasses(t *testing.T) {
	a := setupAnalyzer(t, nil)

	modules := a.AnalyzeModules([]ModuleFact{
		{Name: "entry.client.js", SizeBytes: 40000},
		{Name: "routes/index.js", SizeBytes: 10000},
	})

	recs := a.GenerateRecommendations(modules, nil)

	var treeShake, compress *Recommendation
	for i := range recs {
		switch recs[i].Kind {
		case KindTreeShaking:
			treeShake = &recs[i]
		case KindCompression:
			compress = &recs[i]
		}
	}

	if treeShake == nil || compress == nil {
		t.Fatal("expected both tree-shaking and compression recommendations")
	}

	// 0.1x of total raw size (50000)
	if treeShake.EstimatedSavings != 5000 {
		t.Errorf("expected tree-shaking savings 5000, got %d", treeShake.EstimatedSavings)
	}
	if treeShake.Difficulty != "easy" || treeShake.Priority != "medium" {
		t.Errorf("expected easy/medium, got %s/%s", treeShake.Difficulty, treeShake.Priority)
	}

	// 0.2x of total compressed estimate (12000 + 3000)
	if compress.EstimatedSavings != 3000 {
		t.Errorf("expected compression savings 3000, got %d", compress.EstimatedSavings)
	}
	if compress.Difficulty != "easy" || compress.Priority != "high" {
		t.Errorf("expected easy/high, got %s/%s", compress.Difficulty, compress.Priority)
	}
}

func TestGenerateRecommendations_Ordering(t *testing.T) {
	a := setupAnalyzer(t, nil)

	modules := a.AnalyzeModules([]ModuleFact{
		{Name: "routes/lazy-editor.js", SizeBytes: 300 * 1024},
		{Name: "routes/lazy-viewer.js", SizeBytes: 60 * 1024},
		{Name: "vendor.js", SizeBytes: 500 * 1024},
	})
	deps := a.AnalyzeDependencies(map[string]string{
		"lucide-react": "^0.356.0",
		"axios":        "^1.6.0",
	}, nil)

	recs := a.GenerateRecommendations(modules, deps)

	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		pw, cw := priorityWeight(prev.Priority), priorityWeight(cur.Priority)
		if cw > pw {
			t.Fatalf("priority order violated at index %d: %s after %s", i, cur.Priority, prev.Priority)
		}
		if cw == pw && cur.EstimatedSavings > prev.EstimatedSavings {
			t.Fatalf("savings tie-break violated at index %d: %d after %d",
				i, cur.EstimatedSavings, prev.EstimatedSavings)
		}
	}
}
