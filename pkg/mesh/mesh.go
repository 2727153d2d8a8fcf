// Package mesh provides an indexed triangle mesh: a flat list of vertex
// positions plus an index list where every three indices form a triangle.
package mesh

import (
	"fmt"

	"github.com/philipparndt/gocontour/pkg/geometry"
)

// MalformedMeshError is returned when the index list does not describe
// whole triangles over the vertex list.
type MalformedMeshError struct {
	Reason string
}

func (e *MalformedMeshError) Error() string {
	return "malformed mesh: " + e.Reason
}

// Mesh is an indexed triangle list
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Indices  []int
}

// New creates a mesh from vertices and indices without validating them
func New(name string, vertices []geometry.Vector3, indices []int) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// Validate checks that the index count is a multiple of three and that
// every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	if m == nil {
		return &MalformedMeshError{Reason: "mesh is nil"}
	}
	if len(m.Indices)%3 != 0 {
		return &MalformedMeshError{
			Reason: fmt.Sprintf("index count %d is not a multiple of 3", len(m.Indices)),
		}
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Vertices) {
			return &MalformedMeshError{
				Reason: fmt.Sprintf("index %d at position %d is out of range [0, %d)", idx, i, len(m.Vertices)),
			}
		}
	}
	return nil
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no triangles
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Corners returns the three corner positions of triangle i
func (m *Mesh) Corners(i int) (a, b, c geometry.Vector3) {
	base := i * 3
	return m.Vertices[m.Indices[base]], m.Vertices[m.Indices[base+1]], m.Vertices[m.Indices[base+2]]
}

// Triangle returns triangle i with its computed normal
func (m *Mesh) Triangle(i int) geometry.Triangle {
	a, b, c := m.Corners(i)
	tri := geometry.NewTriangle(geometry.Vector3{}, a, b, c)
	tri.Normal = tri.CalculateNormal()
	return tri
}

// BoundingBox calculates the bounding box of all referenced vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, idx := range m.Indices {
		bbox.Extend(m.Vertices[idx])
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	totalArea := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		totalArea += m.Triangle(i).Area()
	}
	return totalArea
}

// Clone returns a deep copy of the mesh. Use it to hand a snapshot to a
// goroutine while the original keeps changing.
func (m *Mesh) Clone() *Mesh {
	vertices := make([]geometry.Vector3, len(m.Vertices))
	copy(vertices, m.Vertices)
	indices := make([]int, len(m.Indices))
	copy(indices, m.Indices)
	return New(m.Name, vertices, indices)
}
