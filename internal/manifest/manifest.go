// Package manifest resolves the dependency declarations (package.json) the
// analyzer scores against.
//
// Resolution is deliberately two-step: FetchRemote surfaces fetch problems
// as errors so they are independently testable, and Load swallows them by
// substituting the built-in fallback dataset. Analysis never fails because
// a manifest could not be retrieved.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Manifest mirrors the dependency declarations of a package.json file.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Source yields dependency declarations for an analysis run. Load must not
// fail: implementations substitute a fallback dataset when their backing
// data is unavailable.
type Source interface {
	Load(ctx context.Context) *Manifest
}

// maxManifestBytes caps how much of a response body is read. A manifest
// larger than this is malformed by definition.
const maxManifestBytes = 1 << 20

// HTTPSource fetches the manifest from a dev-server endpoint.
type HTTPSource struct {
	// URL is the full endpoint returning the package.json payload.
	URL string

	// Client is the HTTP client to use. A default client with a 10s
	// timeout is used when nil.
	Client *http.Client

	// Fallback overrides the built-in fallback dataset when non-nil.
	Fallback *Manifest
}

// FetchRemote performs the HTTP GET and decodes the response. A network
// error, non-2xx status, or undecodable body is returned as an error.
func (s *HTTPSource) FetchRemote(ctx context.Context) (*Manifest, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("manifest endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest response: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest response: %w", err)
	}

	return &m, nil
}

// Load resolves the manifest, substituting the fallback dataset on any
// fetch failure. The failure is noted on stderr and otherwise swallowed.
func (s *HTTPSource) Load(ctx context.Context) *Manifest {
	m, err := s.FetchRemote(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "manifest: using fallback dataset: %v\n", err)
		if s.Fallback != nil {
			return s.Fallback
		}
		return FallbackManifest()
	}
	return m
}

// FileSource reads the manifest from a local package.json file.
type FileSource struct {
	Path string

	// Fallback overrides the built-in fallback dataset when non-nil.
	Fallback *Manifest
}

// Load reads and parses the file, substituting the fallback dataset on any
// read or parse failure.
func (s *FileSource) Load(_ context.Context) *Manifest {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "manifest: using fallback dataset: %v\n", err)
		if s.Fallback != nil {
			return s.Fallback
		}
		return FallbackManifest()
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		fmt.Fprintf(os.Stderr, "manifest: using fallback dataset: failed to parse %s: %v\n", s.Path, err)
		if s.Fallback != nil {
			return s.Fallback
		}
		return FallbackManifest()
	}

	return &m
}

// StaticSource serves a fixed manifest. Useful in tests.
type StaticSource struct {
	Manifest *Manifest
}

// Load returns the fixed manifest, or the built-in fallback when nil.
func (s *StaticSource) Load(_ context.Context) *Manifest {
	if s.Manifest == nil {
		return FallbackManifest()
	}
	return s.Manifest
}
