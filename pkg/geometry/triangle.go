package geometry

// Triangle is one facet of a triangle soup, as read from STL or produced by
// marching cubes. Normal is whatever the source stored and may be zero.
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// cross is twice the area vector, pointing along the counter-clockwise normal
func (t Triangle) cross() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
}

// CalculateNormal returns the unit normal given by the winding order
// V1, V2, V3. Degenerate triangles have a zero normal.
func (t Triangle) CalculateNormal() Vector3 {
	if t.IsDegenerate() {
		return Vector3{}
	}
	return t.cross().Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.cross().Length() / 2
}

// IsDegenerate reports whether the corners are collinear or coincide. The
// test is relative to the edge lengths, so small but well shaped facets are
// kept.
func (t Triangle) IsDegenerate() bool {
	return collinear(t.V2.Sub(t.V1), t.V3.Sub(t.V1))
}

// collinear reports whether u and w are parallel, or either is zero, up to
// collinearEpsilon of the sine of the angle between them.
func collinear(u, w Vector3) bool {
	cross := u.Cross(w)
	if !cross.IsFinite() {
		return true
	}
	return cross.Length() <= collinearEpsilon*u.Length()*w.Length()
}
