package openscad

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), `use <lib/shapes.scad>
include <./params.scad>
// use <ignored.scad>
cube(size);
`)
	writeFile(t, filepath.Join(dir, "lib", "shapes.scad"), "include <../params.scad>\nmodule s() {}\n")
	writeFile(t, filepath.Join(dir, "params.scad"), "size = 3;\n")

	r := NewRenderer(dir, nil)
	deps, err := r.ResolveDependencies("main.scad")
	if err != nil {
		t.Fatalf("ResolveDependencies failed: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "main.scad"),
		filepath.Join(dir, "lib", "shapes.scad"),
		filepath.Join(dir, "params.scad"),
	}
	if len(deps) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, deps)
	}
	for i := range expected {
		if deps[i] != expected[i] {
			t.Errorf("dependency %d: expected %s, got %s", i, expected[i], deps[i])
		}
	}
}

func TestResolveDependenciesCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.scad"), "use <b.scad>\n")
	writeFile(t, filepath.Join(dir, "b.scad"), "use <a.scad>\n")

	deps, err := NewRenderer(dir, nil).ResolveDependencies("a.scad")
	if err != nil {
		t.Fatalf("ResolveDependencies failed: %v", err)
	}
	if len(deps) != 2 {
		t.Errorf("expected 2 files, got %v", deps)
	}
}

func TestResolveDependenciesMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), "use <gone.scad>\n")

	if _, err := NewRenderer(dir, nil).ResolveDependencies("main.scad"); err == nil {
		t.Error("expected an error for a missing dependency")
	}
}

func TestRenderWithoutBinary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), "cube(1);\n")

	r := NewRenderer(dir, nil).WithBinary("openscad-does-not-exist")
	_, err := r.RenderMesh(context.Background(), "main.scad", 0)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected a not found error, got %v", err)
	}
}

func TestIsSource(t *testing.T) {
	if !IsSource("part.SCAD") || IsSource("part.stl") {
		t.Error("IsSource failed")
	}
}
