package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncedCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	if err := os.WriteFile(path, []byte("solid a\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fw, err := NewFileWatcher(100*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	var calls atomic.Int32
	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(p string) {
		calls.Add(1)
		changed <- p
	}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("solid b\n"), 0o644); err != nil {
			t.Fatalf("failed to rewrite file: %v", err)
		}
	}

	select {
	case p := <-changed:
		abs, _ := filepath.Abs(path)
		if p != abs {
			t.Errorf("callback path failed: expected %s, got %s", abs, p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not called")
	}

	time.Sleep(400 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("expected a single debounced call, got %d", n)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.stl")
	other := filepath.Join(dir, "other.stl")
	if err := os.WriteFile(watched, nil, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	var calls atomic.Int32
	if err := fw.Watch([]string{watched}, func(string) { calls.Add(1) }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	go func() {
		_ = os.WriteFile(other, []byte("x"), 0o644)
	}()
	_ = fw.Run(ctx)

	if n := calls.Load(); n != 0 {
		t.Errorf("expected no calls for an unwatched file, got %d", n)
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(0, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	missing := filepath.Join(t.TempDir(), "nope", "model.stl")
	if err := fw.Watch([]string{missing}, func(string) {}); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestFilesAndRemoveAll(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWatcher(0, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	b := filepath.Join(dir, "b.stl")
	a := filepath.Join(dir, "a.stl")
	if err := fw.Watch([]string{b, a}, func(string) {}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	files := fw.Files()
	if len(files) != 2 || filepath.Base(files[0]) != "a.stl" {
		t.Errorf("Files failed: got %v", files)
	}

	if err := fw.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	if len(fw.Files()) != 0 {
		t.Errorf("expected no files after RemoveAll, got %v", fw.Files())
	}
}
