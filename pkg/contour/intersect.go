package contour

import (
	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/mesh"
)

// Intersect cuts every triangle of m with plane and returns one segment per
// triangle the plane passes through. The mesh vertices must already be in
// world space.
//
// Edges are tested in the order AB, BC, CA and the first two crossings
// found make up the segment. A triangle with fewer than two crossing edges
// contributes nothing. A plane through a single vertex hits both edges
// meeting there and yields a zero-length segment.
func Intersect(m *mesh.Mesh, plane geometry.Plane) ([]Segment, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return intersect(m, plane, nil), nil
}

// intersect appends the segments of m to dst. m must be valid.
func intersect(m *mesh.Mesh, plane geometry.Plane, dst []Segment) []Segment {
	var (
		first, second geometry.Vector3
		point         geometry.Vector3
		ok            bool
	)

	for tri := 0; tri < m.TriangleCount(); tri++ {
		a, b, c := m.Corners(tri)
		found := 0

		if point, ok = plane.IntersectSegment(a, b); ok {
			first = point
			found = 1
		}
		if point, ok = plane.IntersectSegment(b, c); ok {
			if found == 1 {
				second = point
			} else {
				first = point
			}
			found++
		}
		if found < 2 {
			if point, ok = plane.IntersectSegment(c, a); ok {
				if found == 1 {
					second = point
				} else {
					first = point
				}
				found++
			}
		}

		if found == 2 {
			dst = append(dst, Segment{Start: first, End: second})
		}
	}

	return dst
}
