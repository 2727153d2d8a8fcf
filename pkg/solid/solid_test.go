package solid

import (
	"math"
	"testing"

	"github.com/philipparndt/gocontour/pkg/contour"
	"github.com/philipparndt/gocontour/pkg/geometry"
)

func TestSphereSlicesIntoOneRing(t *testing.T) {
	sphere, err := Sphere(5)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	m, err := sphere.ToMesh(40)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("sphere mesh is invalid: %v", err)
	}

	const elevation = 0.37
	plane, err := contour.LevelPlane(geometry.AxisY, elevation)
	if err != nil {
		t.Fatalf("LevelPlane failed: %v", err)
	}
	lines, err := contour.Slice(m, plane, contour.DefaultTolerance)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("expected 1 ring, got %d polylines", len(lines))
	}
	if !lines[0].Closed {
		t.Fatal("sphere section should be closed")
	}

	fit, err := geometry.FitCircle(lines[0].UniqueVertices(), geometry.AxisY)
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}
	expected := math.Sqrt(25 - elevation*elevation)
	if math.Abs(fit.Radius-expected) > 0.05 {
		t.Errorf("ring radius failed: expected %.3f, got %.3f", expected, fit.Radius)
	}
	if math.Abs(fit.Center.X) > 0.05 || math.Abs(fit.Center.Z) > 0.05 {
		t.Errorf("ring center failed: expected origin, got %v", fit.Center)
	}
}

func TestBoxMeshBounds(t *testing.T) {
	box, err := Box(4, 2, 6)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	m, err := box.ToMesh(30)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if m.IsEmpty() {
		t.Fatal("box mesh is empty")
	}

	size := m.BoundingBox().Size()
	if math.Abs(size.X-4) > 0.5 || math.Abs(size.Y-2) > 0.5 || math.Abs(size.Z-6) > 0.5 {
		t.Errorf("box size failed: expected about (4, 2, 6), got %v", size)
	}
}

func TestTorusHasHole(t *testing.T) {
	torus, err := Torus(4, 1)
	if err != nil {
		t.Fatalf("Torus failed: %v", err)
	}
	m, err := torus.ToMesh(48)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}

	// A cut through the ring plane yields an outer and an inner circle.
	plane, err := contour.LevelPlane(geometry.AxisZ, 0.13)
	if err != nil {
		t.Fatalf("LevelPlane failed: %v", err)
	}
	lines, err := contour.Slice(m, plane, contour.DefaultTolerance)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 rings, got %d", len(lines))
	}
	for i, line := range lines {
		if !line.Closed {
			t.Errorf("ring %d should be closed", i)
		}
	}
}

func TestInvalidSolids(t *testing.T) {
	if _, err := Sphere(-1); err == nil {
		t.Error("expected an error for a negative radius")
	}
	if _, err := Torus(1, 2); err == nil {
		t.Error("expected an error for a tube wider than the ring")
	}
	if _, err := New("pyramid", 1); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

func TestNewByKind(t *testing.T) {
	for _, kind := range Kinds() {
		s, err := New(kind, 2)
		if err != nil {
			t.Errorf("New(%q) failed: %v", kind, err)
			continue
		}
		if s.Name != kind {
			t.Errorf("Name failed: expected %s, got %s", kind, s.Name)
		}
		if s.BoundingBox().IsEmpty() {
			t.Errorf("%s bounding box is empty", kind)
		}
	}
}
