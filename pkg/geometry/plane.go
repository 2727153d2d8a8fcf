package geometry

import (
	"fmt"
	"math"
)

// collinearEpsilon is the smallest sine of the angle between two edges for
// which they still span a plane.
const collinearEpsilon = 1e-12

// InvalidPlaneError is returned when three points do not span a plane
type InvalidPlaneError struct {
	A, B, C Vector3
}

func (e *InvalidPlaneError) Error() string {
	return fmt.Sprintf("points (%g, %g, %g), (%g, %g, %g), (%g, %g, %g) are collinear and do not define a plane",
		e.A.X, e.A.Y, e.A.Z, e.B.X, e.B.Y, e.B.Z, e.C.X, e.C.Y, e.C.Z)
}

// Plane is the set of points p with Normal·p + Constant = 0.
// Normal is always unit length.
type Plane struct {
	Normal   Vector3
	Constant float64
}

// NewPlane creates a plane from a normal and a constant. The normal is
// normalized and the constant scaled to match.
func NewPlane(normal Vector3, constant float64) Plane {
	length := normal.Length()
	if length == 0 {
		return Plane{Constant: constant}
	}
	return Plane{Normal: normal.Mul(1 / length), Constant: constant / length}
}

// NewPlaneFromNormalAndPoint creates the plane through point with the given normal
func NewPlaneFromNormalAndPoint(normal, point Vector3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Constant: -point.Dot(n)}
}

// NewPlaneFromCoplanarPoints creates the plane through a, b and c.
// The normal follows (c-b) x (a-b), so counter-clockwise points face the
// viewer.
func NewPlaneFromCoplanarPoints(a, b, c Vector3) (Plane, error) {
	cb, ab := c.Sub(b), a.Sub(b)
	if collinear(cb, ab) {
		return Plane{}, &InvalidPlaneError{A: a, B: b, C: c}
	}
	normal := cb.Cross(ab).Normalize()
	return Plane{Normal: normal, Constant: -a.Dot(normal)}, nil
}

// HorizontalPlane returns the plane orthogonal to axis at the given elevation
func HorizontalPlane(axis Axis, elevation float64) Plane {
	return Plane{Normal: axis.Unit(), Constant: -elevation}
}

// DistanceToPoint returns the signed distance from the plane to point
func (p Plane) DistanceToPoint(point Vector3) float64 {
	return p.Normal.Dot(point) + p.Constant
}

// IntersectSegment returns the point where the segment p0-p1 crosses the
// plane. It reports false when the segment is parallel to the plane or the
// crossing lies outside the segment.
func (p Plane) IntersectSegment(p0, p1 Vector3) (Vector3, bool) {
	direction := p1.Sub(p0)
	denominator := p.Normal.Dot(direction)
	if denominator == 0 {
		return Vector3{}, false
	}

	t := -(p0.Dot(p.Normal) + p.Constant) / denominator
	if t < 0 || t > 1 || math.IsNaN(t) {
		return Vector3{}, false
	}

	return p0.Lerp(p1, t), true
}
