package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gocontour/pkg/geometry"
)

func unitSquare() *Mesh {
	return New("square",
		[]geometry.Vector3{
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(1, 0, 0),
			geometry.NewVector3(1, 1, 0),
			geometry.NewVector3(0, 1, 0),
		},
		[]int{0, 1, 2, 0, 2, 3},
	)
}

func TestValidate(t *testing.T) {
	if err := unitSquare().Validate(); err != nil {
		t.Errorf("valid mesh failed validation: %v", err)
	}
}

func TestValidateIndexCount(t *testing.T) {
	m := unitSquare()
	m.Indices = m.Indices[:5]

	var meshErr *MalformedMeshError
	if err := m.Validate(); !errors.As(err, &meshErr) {
		t.Fatalf("expected MalformedMeshError, got %v", err)
	}
}

func TestValidateIndexRange(t *testing.T) {
	m := unitSquare()
	m.Indices[4] = 9

	var meshErr *MalformedMeshError
	if err := m.Validate(); !errors.As(err, &meshErr) {
		t.Fatalf("expected MalformedMeshError, got %v", err)
	}

	m.Indices[4] = -1
	if err := m.Validate(); !errors.As(err, &meshErr) {
		t.Fatalf("expected MalformedMeshError for negative index, got %v", err)
	}
}

func TestCountsAndArea(t *testing.T) {
	m := unitSquare()

	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", m.TriangleCount())
	}
	if m.VertexCount() != 4 {
		t.Errorf("VertexCount failed: expected 4, got %d", m.VertexCount())
	}
	if math.Abs(m.SurfaceArea()-1) > 1e-12 {
		t.Errorf("SurfaceArea failed: expected 1, got %v", m.SurfaceArea())
	}

	bbox := m.BoundingBox()
	if bbox.Max != geometry.NewVector3(1, 1, 0) {
		t.Errorf("BoundingBox max failed: got %v", bbox.Max)
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := unitSquare().Triangle(0)

	if tri.Normal != geometry.NewVector3(0, 0, 1) {
		t.Errorf("Normal failed: expected (0,0,1), got %v", tri.Normal)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := unitSquare()
	c := m.Clone()
	c.Vertices[0] = geometry.NewVector3(9, 9, 9)
	c.Indices[0] = 3

	if m.Vertices[0] != (geometry.Vector3{}) || m.Indices[0] != 0 {
		t.Error("Clone shares storage with the original")
	}
}

func TestFromTrianglesWelds(t *testing.T) {
	n := geometry.Vector3{}
	triangles := []geometry.Triangle{
		geometry.NewTriangle(n, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0), geometry.NewVector3(1, 1, 0)),
		geometry.NewTriangle(n, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1.0000001, 0), geometry.NewVector3(0, 1, 0)),
	}

	m := FromTriangles("soup", triangles, 1e-5)

	if m.VertexCount() != 4 {
		t.Errorf("weld failed: expected 4 vertices, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 2 {
		t.Errorf("weld failed: expected 2 triangles, got %d", m.TriangleCount())
	}
	if err := m.Validate(); err != nil {
		t.Errorf("welded mesh is invalid: %v", err)
	}
}

func TestFromTrianglesExact(t *testing.T) {
	n := geometry.Vector3{}
	triangles := []geometry.Triangle{
		geometry.NewTriangle(n, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0), geometry.NewVector3(1, 1, 0)),
		geometry.NewTriangle(n, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1.0000001, 0), geometry.NewVector3(0, 1, 0)),
	}

	m := FromTriangles("soup", triangles, 0)

	if m.VertexCount() != 5 {
		t.Errorf("exact weld failed: expected 5 vertices, got %d", m.VertexCount())
	}
}

func TestTransform(t *testing.T) {
	m := unitSquare()
	world := m.Transform(mgl64.Translate3D(10, 0, -2))

	if world.Vertices[2] != geometry.NewVector3(11, 1, -2) {
		t.Errorf("Transform failed: expected (11, 1, -2), got %v", world.Vertices[2])
	}
	if m.Vertices[2] != geometry.NewVector3(1, 1, 0) {
		t.Error("Transform modified the source mesh")
	}
}

func TestPlacementMatrix(t *testing.T) {
	placement := Placement{
		Position: geometry.NewVector3(0, 5, 0),
		Rotation: geometry.NewVector3(-math.Pi/2, 0, 0),
		Scale:    geometry.NewVector3(2, 2, 2),
	}

	// scale, then -90° about X takes +Y to -Z, then translate
	p := TransformPoint(placement.Matrix(), geometry.NewVector3(0, 1, 0))
	expected := geometry.NewVector3(0, 5, -2)
	if !p.ApproxEqual(expected, 1e-9) {
		t.Errorf("Placement failed: expected %v, got %v", expected, p)
	}
}

func TestPlacementZeroScale(t *testing.T) {
	p := TransformPoint(Placement{}.Matrix(), geometry.NewVector3(1, 2, 3))
	if !p.ApproxEqual(geometry.NewVector3(1, 2, 3), 1e-12) {
		t.Errorf("identity placement failed: got %v", p)
	}
}
