package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New("", 0, func() {}); err == nil {
		t.Error("expected error for empty directory")
	}
	if _, err := New(t.TempDir(), 0, nil); err == nil {
		t.Error("expected error for nil callback")
	}
}

func TestNew_DefaultDebounce(t *testing.T) {
	w, err := New(t.TempDir(), 0, func() {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if w.debounce != DefaultDebounce {
		t.Errorf("expected default debounce %s, got %s", DefaultDebounce, w.debounce)
	}
}

func TestWatcher_FiresAfterChange(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan struct{}, 1)
	w, err := New(dir, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "entry.client.js"), []byte("export {}"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change callback to fire")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), 0, func() {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Start(); err == nil {
		w.Stop()
		t.Error("expected Start to fail for missing directory")
	}
}

func TestWatcher_StopWithoutEvents(t *testing.T) {
	w, err := New(t.TempDir(), 50*time.Millisecond, func() {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
