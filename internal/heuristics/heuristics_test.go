package heuristics

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_EmbeddedTables(t *testing.T) {
	tables, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if got := tables.SizeOf("lucide-react"); got != 150000 {
		t.Errorf("expected lucide-react size 150000, got %d", got)
	}
	if got := tables.SizeOf("some-unknown-package"); got != 50000 {
		t.Errorf("expected default size 50000, got %d", got)
	}

	if got := tables.UsageOf("react"); got != "high" {
		t.Errorf("expected react usage high, got %s", got)
	}
	if got := tables.UsageOf("marked"); got != "medium" {
		t.Errorf("expected marked usage medium, got %s", got)
	}
	if got := tables.UsageOf("some-unknown-package"); got != "low" {
		t.Errorf("expected unknown usage low, got %s", got)
	}

	if !tables.IsReplaceable("moment") {
		t.Error("expected moment to be replaceable")
	}
	if tables.IsReplaceable("react") {
		t.Error("expected react to not be replaceable")
	}

	alts := tables.AlternativesFor("lodash")
	if len(alts) == 0 {
		t.Error("expected alternatives for lodash")
	}
	if got := tables.AlternativesFor("react"); got != nil {
		t.Errorf("expected no alternatives for react, got %v", got)
	}
}

func TestDefault_ModuleMarkers(t *testing.T) {
	tables, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if !tables.IsVendorModule("vendor-a1b2.js") {
		t.Error("expected vendor marker match")
	}
	if !tables.IsVendorModule("node_modules/react/index.js") {
		t.Error("expected node_modules marker match")
	}
	if !tables.IsSharedModule("shared/utils.js") {
		t.Error("expected shared marker match")
	}
	if !tables.IsDynamicModule("routes/lazy-editor.js") {
		t.Error("expected lazy marker match")
	}
	if !tables.IsHeavyLibrary("mermaid-bundle.js") {
		t.Error("expected heavy-library match")
	}
	if tables.IsVendorModule("entry.client.js") || tables.IsHeavyLibrary("entry.client.js") {
		t.Error("expected no marker match for application code")
	}
}

func TestLoadFromFile_ReplacesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.toml")

	content := `
[modules]
vendor_markers = ["thirdparty"]

[dependencies]
default_size = 1234
replaceable = ["tiny-lib"]

[dependencies.sizes]
"tiny-lib" = 99

[dependencies.alternatives]
"tiny-lib" = ["tinier-lib"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write tables file: %v", err)
	}

	tables, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if !tables.IsVendorModule("thirdparty/lib.js") {
		t.Error("expected override vendor marker to match")
	}
	if tables.IsVendorModule("vendor-a1b2.js") {
		t.Error("expected default vendor marker to be replaced")
	}
	if got := tables.SizeOf("tiny-lib"); got != 99 {
		t.Errorf("expected size 99, got %d", got)
	}
	if got := tables.SizeOf("anything-else"); got != 1234 {
		t.Errorf("expected default size 1234, got %d", got)
	}
	if got := tables.AlternativesFor("tiny-lib"); len(got) != 1 || got[0] != "tinier-lib" {
		t.Errorf("expected [tinier-lib], got %v", got)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
