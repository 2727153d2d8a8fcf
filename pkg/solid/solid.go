// Package solid builds closed test meshes from sdfx signed distance
// primitives. The primitives are centered on the origin.
package solid

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/mesh"
)

// DefaultCells is the marching cubes resolution along the longest side
const DefaultCells = 64

// weldTolerance merges the vertices marching cubes emits once per adjacent
// cell.
const weldTolerance = 1e-6

// Solid is a named signed distance field
type Solid struct {
	Name string
	sdf  sdf.SDF3
}

// Sphere creates a sphere of the given radius
func Sphere(radius float64) (*Solid, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	return &Solid{Name: "sphere", sdf: s}, nil
}

// Box creates an axis aligned box with the given edge lengths
func Box(x, y, z float64) (*Solid, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}
	return &Solid{Name: "box", sdf: s}, nil
}

// Cylinder creates a cylinder along Z
func Cylinder(height, radius float64) (*Solid, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("cylinder: %w", err)
	}
	return &Solid{Name: "cylinder", sdf: s}, nil
}

// Torus creates a ring around Z by revolving a circle of radius minor at
// distance major from the axis.
func Torus(major, minor float64) (*Solid, error) {
	if !(minor > 0) || !(major > minor) {
		return nil, fmt.Errorf("torus: need 0 < minor < major, got major=%g minor=%g", major, minor)
	}

	circle, err := sdf.Circle2D(minor)
	if err != nil {
		return nil, fmt.Errorf("torus: %w", err)
	}
	profile := sdf.Transform2D(circle, sdf.Translate2d(v2.Vec{X: major, Y: 0}))

	s, err := sdf.Revolve3D(profile)
	if err != nil {
		return nil, fmt.Errorf("torus: %w", err)
	}
	return &Solid{Name: "torus", sdf: s}, nil
}

// New creates a primitive by name. size is the radius of a sphere, the
// edge length of a cube, the radius of a cylinder twice as high, and the
// major radius of a torus with a quarter-size tube.
func New(kind string, size float64) (*Solid, error) {
	switch kind {
	case "sphere":
		return Sphere(size)
	case "box":
		return Box(size, size, size)
	case "cylinder":
		return Cylinder(2*size, size)
	case "torus":
		return Torus(size, size/4)
	default:
		return nil, fmt.Errorf("unknown solid %q (expected sphere, box, cylinder or torus)", kind)
	}
}

// Kinds lists the names New accepts
func Kinds() []string {
	return []string{"sphere", "box", "cylinder", "torus"}
}

// BoundingBox returns the bounds of the distance field
func (s *Solid) BoundingBox() geometry.BoundingBox {
	bb := s.sdf.BoundingBox()
	return geometry.BoundingBox{
		Min: geometry.NewVector3(bb.Min.X, bb.Min.Y, bb.Min.Z),
		Max: geometry.NewVector3(bb.Max.X, bb.Max.Y, bb.Max.Z),
	}
}

// ToMesh tessellates the solid with uniform marching cubes and welds the
// result into an indexed mesh.
func (s *Solid) ToMesh(cells int) (*mesh.Mesh, error) {
	if cells <= 0 {
		cells = DefaultCells
	}

	triangles := render.ToTriangles(s.sdf, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, fmt.Errorf("%s: marching cubes produced no triangles", s.Name)
	}

	soup := make([]geometry.Triangle, 0, len(triangles))
	for _, tri := range triangles {
		var corners [3]geometry.Vector3
		for j := 0; j < 3; j++ {
			corners[j] = geometry.NewVector3(tri[j].X, tri[j].Y, tri[j].Z)
		}
		t := geometry.NewTriangle(geometry.Vector3{}, corners[0], corners[1], corners[2])
		if t.IsDegenerate() {
			continue
		}
		t.Normal = t.CalculateNormal()
		soup = append(soup, t)
	}

	return mesh.FromTriangles(s.Name, soup, weldTolerance), nil
}
