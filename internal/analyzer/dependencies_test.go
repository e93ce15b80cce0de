package analyzer

import "testing"

func TestAnalyzeDependencies_KnownReplaceablePackage(t *testing.T) {
	a := setupAnalyzer(t, nil)

	records := a.AnalyzeDependencies(map[string]string{"lucide-react": "^0.356.0"}, nil)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.SizeBytes != 150000 {
		t.Errorf("expected estimated size 150000, got %d", rec.SizeBytes)
	}
	if !rec.Replaceable {
		t.Error("expected lucide-react to be replaceable")
	}
	if len(rec.Alternatives) == 0 {
		t.Error("expected non-empty alternatives for lucide-react")
	}
	if rec.Usage != "medium" {
		t.Errorf("expected usage medium, got %s", rec.Usage)
	}
	if rec.DevOnly {
		t.Error("expected production dependency, got dev")
	}
}

func TestAnalyzeDependencies_UnknownPackageDegradesGracefully(t *testing.T) {
	a := setupAnalyzer(t, nil)

	records := a.AnalyzeDependencies(map[string]string{"left-pad": "^1.3.0"}, nil)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.SizeBytes != 50000 {
		t.Errorf("expected default size estimate 50000, got %d", rec.SizeBytes)
	}
	if rec.Usage != "low" {
		t.Errorf("expected usage low, got %s", rec.Usage)
	}
	if rec.Replaceable {
		t.Error("expected unknown package to not be replaceable")
	}
	if len(rec.Alternatives) != 0 {
		t.Errorf("expected no alternatives, got %v", rec.Alternatives)
	}
}

func TestAnalyzeDependencies_DevDeclarationsFlagged(t *testing.T) {
	a := setupAnalyzer(t, nil)

	records := a.AnalyzeDependencies(
		map[string]string{"react": "^18.2.0"},
		map[string]string{"typescript": "^5.4.3"},
	)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	for _, rec := range records {
		switch rec.Name {
		case "react":
			if rec.DevOnly {
				t.Error("expected react to be a production dependency")
			}
		case "typescript":
			if !rec.DevOnly {
				t.Error("expected typescript to be a dev dependency")
			}
		default:
			t.Errorf("unexpected record %s", rec.Name)
		}
	}
}

func TestAnalyzeDependencies_SortedBySizeDescending(t *testing.T) {
	a := setupAnalyzer(t, nil)

	records := a.AnalyzeDependencies(
		map[string]string{
			"lodash": "^4.17.21",
			"clsx":   "^2.1.0",
			"react":  "^18.2.0",
		},
		map[string]string{"vite": "^5.2.6"},
	)

	for i := 1; i < len(records); i++ {
		if records[i].SizeBytes > records[i-1].SizeBytes {
			t.Fatalf("records not sorted descending at index %d: %s=%d > %s=%d",
				i, records[i].Name, records[i].SizeBytes, records[i-1].Name, records[i-1].SizeBytes)
		}
	}

	if records[0].Name != "lodash" {
		t.Errorf("expected lodash first (largest), got %s", records[0].Name)
	}
}

func TestAnalyzeDependencies_EqualSizesOrderedByName(t *testing.T) {
	a := setupAnalyzer(t, nil)

	// Two unknown packages share the default size estimate; the tie must
	// break deterministically regardless of map iteration order.
	records := a.AnalyzeDependencies(map[string]string{
		"zeta-lib":  "^1.0.0",
		"alpha-lib": "^1.0.0",
	}, nil)

	if records[0].Name != "alpha-lib" || records[1].Name != "zeta-lib" {
		t.Errorf("expected name-ordered tie break, got %s, %s", records[0].Name, records[1].Name)
	}
}
