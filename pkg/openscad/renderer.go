// Package openscad turns OpenSCAD sources into meshes by running the
// openscad binary.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/philipparndt/gocontour/pkg/mesh"
	"github.com/philipparndt/gocontour/pkg/stl"
)

// DefaultBinary is the executable looked up in PATH
const DefaultBinary = "openscad"

// Matches: use <file.scad>, include <file.scad>, use <./file.scad>, etc.
var dependencyRegex = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// IsSource reports whether filename looks like an OpenSCAD source
func IsSource(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".scad")
}

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	workDir string
	binary  string
	log     *zap.Logger
}

// NewRenderer creates a new OpenSCAD renderer. Relative paths are resolved
// against workDir. A nil logger disables logging.
func NewRenderer(workDir string, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		workDir: workDir,
		binary:  DefaultBinary,
		log:     log,
	}
}

// WithBinary returns a copy of r that runs binary instead of openscad
func (r *Renderer) WithBinary(binary string) *Renderer {
	c := *r
	c.binary = binary
	return &c
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	absScadFile := r.abs(scadFile)

	if _, err := exec.LookPath(r.binary); err != nil {
		return fmt.Errorf("%s not found in PATH. Please install OpenSCAD from https://openscad.org/", r.binary)
	}

	started := time.Now()
	cmd := exec.CommandContext(ctx, r.binary, "-o", outputFile, absScadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to render %s: %v", scadFile, err))
		if stderr.Len() > 0 {
			errMsg.WriteString("\nstderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("\nstdout: ")
			errMsg.WriteString(stdout.String())
		}
		return fmt.Errorf("%s", errMsg.String())
	}

	r.log.Debug("openscad rendered",
		zap.String("source", absScadFile),
		zap.String("output", outputFile),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// RenderMesh renders scadFile into a temporary STL and welds it into a mesh
func (r *Renderer) RenderMesh(ctx context.Context, scadFile string, weldTolerance float64) (*mesh.Mesh, error) {
	tmpDir, err := os.MkdirTemp("", "gocontour-scad-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	output := filepath.Join(tmpDir, "model.stl")
	if err := r.RenderToSTL(ctx, scadFile, output); err != nil {
		return nil, err
	}

	model, err := stl.Parse(output)
	if err != nil {
		return nil, fmt.Errorf("reading rendered STL: %w", err)
	}
	m := model.Mesh(weldTolerance)
	m.Name = strings.TrimSuffix(filepath.Base(scadFile), filepath.Ext(scadFile))
	return m, nil
}

// ResolveDependencies finds the file and all its use/include dependencies.
// Returns a list of absolute paths, the file itself first.
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	if err := r.resolveDependenciesRecursive(r.abs(scadFile), visited, &deps); err != nil {
		return nil, err
	}

	return deps, nil
}

func (r *Renderer) resolveDependenciesRecursive(scadFile string, visited map[string]bool, deps *[]string) error {
	// Avoid circular dependencies
	if visited[scadFile] {
		return nil
	}
	visited[scadFile] = true
	*deps = append(*deps, scadFile)

	fileDeps, err := r.parseDependencies(scadFile)
	if err != nil {
		return err
	}

	for _, dep := range fileDeps {
		if err := r.resolveDependenciesRecursive(dep, visited, deps); err != nil {
			return err
		}
	}

	return nil
}

// parseDependencies parses a single OpenSCAD file to find use/include statements
func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scanner := bufio.NewScanner(file)
	scadDir := filepath.Dir(scadFile)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}

		if matches := dependencyRegex.FindStringSubmatch(line); len(matches) > 1 {
			deps = append(deps, r.resolveDepPath(matches[1], scadDir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}

	return deps, nil
}

// resolveDepPath resolves a dependency relative to the including file, then
// to the work directory
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(filepath.Join(currentDir, depPath))
	}

	absPath := filepath.Join(currentDir, depPath)
	if _, err := os.Stat(absPath); err == nil {
		return filepath.Clean(absPath)
	}

	return filepath.Clean(filepath.Join(r.workDir, depPath))
}
