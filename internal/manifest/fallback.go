package manifest

// FallbackManifest returns the built-in dependency dataset used when no
// manifest can be fetched. It describes a typical small web-tooling app and
// is versioned with the declarations it was captured from; update it when
// the reference app's package.json changes meaningfully.
//
// A fresh copy is returned on every call so callers can never mutate the
// dataset out from under each other.
func FallbackManifest() *Manifest {
	return &Manifest{
		Name:    "devtools-suite",
		Version: "1.4.2",
		Dependencies: map[string]string{
			"react":            "^18.2.0",
			"react-dom":        "^18.2.0",
			"@remix-run/react": "^2.8.1",
			"lucide-react":     "^0.356.0",
			"mermaid":          "^10.9.0",
			"marked":           "^12.0.1",
			"clsx":             "^2.1.0",
		},
		DevDependencies: map[string]string{
			"typescript":   "^5.4.3",
			"vite":         "^5.2.6",
			"eslint":       "^8.57.0",
			"tailwindcss":  "^3.4.1",
			"@types/react": "^18.2.67",
			"vitest":       "^1.4.0",
		},
	}
}
