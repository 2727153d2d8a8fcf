package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/philipparndt/gocontour/internal/logger"
	"github.com/philipparndt/gocontour/pkg/analysis"
	"github.com/philipparndt/gocontour/pkg/contour"
	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/mesh"
	"github.com/philipparndt/gocontour/pkg/openscad"
	"github.com/philipparndt/gocontour/pkg/stl"
)

// placementFlags place the loaded mesh in the world before slicing
type placementFlags struct {
	translate []float64
	rotate    []float64
	scale     []float64
}

func (p *placementFlags) register(fs *pflag.FlagSet) {
	fs.Float64SliceVar(&p.translate, "translate", nil, "Move the mesh by x,y,z before slicing")
	fs.Float64SliceVar(&p.rotate, "rotate", nil, "Rotate the mesh by x,y,z degrees before slicing")
	fs.Float64SliceVar(&p.scale, "scale", nil, "Scale the mesh by s or x,y,z before slicing")
}

func (p *placementFlags) isSet() bool {
	return len(p.translate) > 0 || len(p.rotate) > 0 || len(p.scale) > 0
}

func (p *placementFlags) placement() (mesh.Placement, error) {
	var placement mesh.Placement
	var err error

	if placement.Position, err = vectorFlag("translate", p.translate, 0); err != nil {
		return placement, err
	}
	rotation, err := vectorFlag("rotate", p.rotate, 0)
	if err != nil {
		return placement, err
	}
	placement.Rotation = rotation.Mul(math.Pi / 180)

	if len(p.scale) == 1 {
		placement.Scale = geometry.NewVector3(p.scale[0], p.scale[0], p.scale[0])
	} else if placement.Scale, err = vectorFlag("scale", p.scale, 1); err != nil {
		return placement, err
	}
	return placement, nil
}

func vectorFlag(name string, values []float64, fallback float64) (geometry.Vector3, error) {
	switch len(values) {
	case 0:
		return geometry.NewVector3(fallback, fallback, fallback), nil
	case 3:
		return geometry.NewVector3(values[0], values[1], values[2]), nil
	default:
		return geometry.Vector3{}, fmt.Errorf("--%s needs 3 comma separated values, got %d", name, len(values))
	}
}

// newRenderer returns an OpenSCAD renderer rooted at the working directory
func newRenderer() (*openscad.Renderer, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return openscad.NewRenderer(workDir, logger.Named("openscad")), nil
}

// loadMesh reads an STL file, or renders an OpenSCAD source, welds it and
// applies the placement flags
func loadMesh(ctx context.Context, filename string, place *placementFlags) (*mesh.Mesh, error) {
	log := logger.Named("load")
	started := time.Now()

	var m *mesh.Mesh
	if openscad.IsSource(filename) {
		renderer, err := newRenderer()
		if err != nil {
			return nil, err
		}
		if m, err = renderer.RenderMesh(ctx, filename, cfg.Contour.WeldTolerance); err != nil {
			return nil, err
		}
	} else {
		model, err := stl.Parse(filename)
		if err != nil {
			return nil, fmt.Errorf("parsing STL file: %w", err)
		}
		m = model.Mesh(cfg.Contour.WeldTolerance)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	if place != nil && place.isSet() {
		placement, err := place.placement()
		if err != nil {
			return nil, err
		}
		m = m.Transform(placement.Matrix())
	}

	log.Debug("mesh loaded",
		zap.String("file", filename),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("vertices", m.VertexCount()),
		zap.Duration("elapsed", time.Since(started)),
	)
	return m, nil
}

// newExtractor builds an extractor from the effective configuration
func newExtractor() (*contour.Extractor, error) {
	opts, err := cfg.ContourOptions()
	if err != nil {
		return nil, err
	}
	return contour.NewExtractor(opts, logger.Named("contour"))
}

// printSummary writes one row per level followed by the totals
func printSummary(w io.Writer, axis geometry.Axis, levels []contour.Level) {
	summary := analysis.SummarizeLevels(levels)

	fmt.Fprintf(w, "%-14s %-10s %-10s %-8s %-8s %-12s\n", "Elevation", "Segments", "Polylines", "Closed", "Open", "Length")
	for _, level := range summary.Levels {
		fmt.Fprintf(w, "%-14s %-10d %-10d %-8d %-8d %-12.4f\n",
			analysis.FormatElevation(axis, level.Elevation),
			level.Segments,
			level.Polylines,
			level.Closed,
			level.Open,
			level.Length,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Levels: %d\n", len(summary.Levels))
	fmt.Fprintf(w, "Polylines: %d (%d closed, %d open)\n", summary.Polylines, summary.Closed, summary.Open)
	fmt.Fprintf(w, "Segments: %d\n", summary.Segments)
	fmt.Fprintf(w, "Total length: %.4f units\n", summary.Length)
	if summary.LongestLevel >= 0 {
		fmt.Fprintf(w, "Longest: %.4f units at %s\n",
			summary.LongestLength,
			analysis.FormatElevation(axis, levels[summary.LongestLevel].Elevation),
		)
	}
}
