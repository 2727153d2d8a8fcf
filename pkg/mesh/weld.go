package mesh

import (
	"math"

	"github.com/philipparndt/gocontour/pkg/geometry"
)

type weldKey struct {
	x, y, z int64
}

// FromTriangles builds an indexed mesh from a triangle soup. Vertices whose
// coordinates round to the same multiple of tol share one index; a tol of
// zero or less only merges exactly equal positions.
func FromTriangles(name string, triangles []geometry.Triangle, tol float64) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0, len(triangles)),
		Indices:  make([]int, 0, len(triangles)*3),
	}

	quantized := make(map[weldKey]int)
	exact := make(map[geometry.Vector3]int)

	lookup := func(v geometry.Vector3) int {
		if tol > 0 {
			key := weldKey{
				x: int64(math.Round(v.X / tol)),
				y: int64(math.Round(v.Y / tol)),
				z: int64(math.Round(v.Z / tol)),
			}
			if idx, ok := quantized[key]; ok {
				return idx
			}
			quantized[key] = len(m.Vertices)
		} else {
			if idx, ok := exact[v]; ok {
				return idx
			}
			exact[v] = len(m.Vertices)
		}
		m.Vertices = append(m.Vertices, v)
		return len(m.Vertices) - 1
	}

	for _, tri := range triangles {
		m.Indices = append(m.Indices, lookup(tri.V1), lookup(tri.V2), lookup(tri.V3))
	}

	return m
}
