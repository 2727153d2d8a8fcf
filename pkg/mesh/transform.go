package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gocontour/pkg/geometry"
)

// Transform returns a copy of the mesh with every vertex mapped through the
// local-to-world matrix. Indices are shared with the receiver.
func (m *Mesh) Transform(localToWorld mgl64.Mat4) *Mesh {
	vertices := make([]geometry.Vector3, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = TransformPoint(localToWorld, v)
	}
	return New(m.Name, vertices, m.Indices)
}

// TransformPoint applies a homogeneous transform to a single point
func TransformPoint(mat mgl64.Mat4, v geometry.Vector3) geometry.Vector3 {
	p := mat.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	if p[3] != 0 && p[3] != 1 {
		return geometry.NewVector3(p[0]/p[3], p[1]/p[3], p[2]/p[3])
	}
	return geometry.NewVector3(p[0], p[1], p[2])
}

// Placement describes where a mesh sits in the world, the way a scene node
// carries position, rotation (radians, applied X then Y then Z) and scale.
type Placement struct {
	Position geometry.Vector3
	Rotation geometry.Vector3
	Scale    geometry.Vector3
}

// Matrix returns the local-to-world matrix for the placement. A zero scale
// is treated as 1.
func (p Placement) Matrix() mgl64.Mat4 {
	scale := p.Scale
	if scale == (geometry.Vector3{}) {
		scale = geometry.NewVector3(1, 1, 1)
	}

	translate := mgl64.Translate3D(p.Position.X, p.Position.Y, p.Position.Z)
	rotate := mgl64.HomogRotate3DZ(p.Rotation.Z).
		Mul4(mgl64.HomogRotate3DY(p.Rotation.Y)).
		Mul4(mgl64.HomogRotate3DX(p.Rotation.X))
	scaling := mgl64.Scale3D(scale.X, scale.Y, scale.Z)

	return translate.Mul4(rotate).Mul4(scaling)
}
