package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "healthbars.yaml")
	if err := os.WriteFile(path, []byte("healthbar:\n  size: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Replace the file the way editors do, so the watcher sees it complete.
	tmp := filepath.Join(dir, "healthbars.yaml.tmp")
	if err := os.WriteFile(tmp, []byte("healthbar:\n  size: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-w.Events:
		if f.HealthBar == nil || f.HealthBar.Size == nil || *f.HealthBar.Size != 24 {
			t.Errorf("unexpected reload %+v", f)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a reload")
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "healthbars.yaml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

// nextReload waits for a reloaded file, failing on watcher errors.
func nextReload(t *testing.T, w *Watcher, timeout time.Duration) (*File, bool) {
	t.Helper()
	select {
	case f, ok := <-w.Events:
		if !ok {
			t.Fatal("events closed while the watcher was running")
		}
		return f, true
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(timeout):
	}
	return nil, false
}

func TestWatcher_TwoStepSaveDeliversFinalContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "healthbars.yaml")
	if err := os.WriteFile(path, []byte("healthbar:\n  size: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Truncate, then write the real contents shortly after.
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("healthbar:\n  size: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, ok := nextReload(t, w, 5*time.Second)
	if !ok {
		t.Fatal("timed out waiting for a reload")
	}
	if f.HealthBar == nil || f.HealthBar.Size == nil || *f.HealthBar.Size != 24 {
		t.Fatalf("first reload saw intermediate contents %+v", f)
	}

	if extra, ok := nextReload(t, w, 3*settleDelay); ok {
		t.Errorf("one save produced a second reload %+v", extra)
	}
}

func waitClosed[T any](t *testing.T, name string, ch <-chan T) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("%s not closed after Close", name)
		}
	}
}

func TestWatcher_CloseClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "healthbars.yaml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	waitClosed[*File](t, "Events", w.Events)
	waitClosed[error](t, "Errors", w.Errors)
}
