package mesh

import (
	"fmt"

	"github.com/philipparndt/gocontour/pkg/geometry"
)

// GridOptions describes a flat rectangular grid lying in the XZ plane,
// centered on the origin, with Y pointing up.
type GridOptions struct {
	Width     float64
	Depth     float64
	SegmentsX int
	SegmentsZ int
}

// HeightFunc returns the surface height at a grid position
type HeightFunc func(x, z float64) float64

// Grid builds a terrain-style mesh: a (SegmentsX+1) x (SegmentsZ+1) vertex
// grid whose Y coordinates come from height. Each grid cell is split into
// two triangles. A nil height produces a flat grid.
func Grid(opts GridOptions, height HeightFunc) (*Mesh, error) {
	if opts.SegmentsX < 1 || opts.SegmentsZ < 1 {
		return nil, fmt.Errorf("grid needs at least one segment per side, got %dx%d", opts.SegmentsX, opts.SegmentsZ)
	}
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %gx%g", opts.Width, opts.Depth)
	}

	columns := opts.SegmentsX + 1
	rows := opts.SegmentsZ + 1
	stepX := opts.Width / float64(opts.SegmentsX)
	stepZ := opts.Depth / float64(opts.SegmentsZ)

	m := &Mesh{
		Name:     "grid",
		Vertices: make([]geometry.Vector3, 0, columns*rows),
		Indices:  make([]int, 0, opts.SegmentsX*opts.SegmentsZ*6),
	}

	for iz := 0; iz < rows; iz++ {
		z := -opts.Depth/2 + float64(iz)*stepZ
		for ix := 0; ix < columns; ix++ {
			x := -opts.Width/2 + float64(ix)*stepX
			y := 0.0
			if height != nil {
				y = height(x, z)
			}
			m.Vertices = append(m.Vertices, geometry.NewVector3(x, y, z))
		}
	}

	for iz := 0; iz < opts.SegmentsZ; iz++ {
		for ix := 0; ix < opts.SegmentsX; ix++ {
			a := iz*columns + ix
			b := (iz+1)*columns + ix
			c := (iz+1)*columns + ix + 1
			d := iz*columns + ix + 1

			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}

	return m, nil
}
