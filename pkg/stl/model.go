package stl

import (
	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/mesh"
)

// DefaultWeldTolerance merges STL vertices that differ only by float32
// rounding noise.
const DefaultWeldTolerance = 1e-5

// Model represents a complete STL model as a triangle soup
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Mesh welds the triangle soup into an indexed mesh. STL stores every
// facet separately, so shared corners only become shared indices here.
func (m *Model) Mesh(weldTolerance float64) *mesh.Mesh {
	return mesh.FromTriangles(m.Name, m.Triangles, weldTolerance)
}

// FromMesh converts an indexed mesh back into an STL model with computed
// facet normals.
func FromMesh(src *mesh.Mesh) *Model {
	model := NewModel(src.Name)
	model.Triangles = make([]geometry.Triangle, 0, src.TriangleCount())
	for i := 0; i < src.TriangleCount(); i++ {
		model.AddTriangle(src.Triangle(i))
	}
	return model
}
