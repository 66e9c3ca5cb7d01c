package events

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsBurstOnceAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(path, []byte("player:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(reloadDebounce / 4)
	if err := os.WriteFile(path, []byte("player:\n  Dash:\n    - type: Cancel\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	lastWrite := time.Now()

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("Expected %s, got %s", path, got)
		}
		if waited := time.Since(lastWrite); waited < reloadDebounce/2 {
			t.Errorf("Expected the report after a quiet interval, got it after %v", waited)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a change report")
	}

	select {
	case got := <-w.Events:
		t.Errorf("Expected one report for the burst, got another for %s", got)
	case <-time.After(3 * reloadDebounce):
	}
}

func TestWatcherCloseEndsEvents(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Expected Events to be closed")
	}
	if err := w.Close(); err != nil {
		t.Errorf("Expected a second Close to be a no-op, got %v", err)
	}
}
