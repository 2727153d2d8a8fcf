package contour

import "github.com/philipparndt/gocontour/pkg/geometry"

// Polyline is a connected chain of points built from segments. When Closed
// is set the last vertex repeats the first, so Len() always equals the
// number of segments that went into the polyline.
type Polyline struct {
	Start    geometry.Vector3
	End      geometry.Vector3
	Vertices []geometry.Vector3
	Closed   bool

	// front holds prepended vertices in reverse order and back the rest,
	// so growing at either end is an append.
	front    []geometry.Vector3
	back     []geometry.Vector3
	modified bool
}

func newPolyline(s Segment) *Polyline {
	return &Polyline{
		Start: s.Start,
		End:   s.End,
		back:  []geometry.Vector3{s.Start, s.End},
	}
}

// combine absorbs s when one of its endpoints touches a free end of the
// polyline and reports whether it did.
func (p *Polyline) combine(s Segment, tol float64) bool {
	switch {
	case p.Start.ApproxEqual(s.Start, tol):
		p.front = append(p.front, s.End)
		p.Start = s.End
	case p.Start.ApproxEqual(s.End, tol):
		p.front = append(p.front, s.Start)
		p.Start = s.Start
	case p.End.ApproxEqual(s.End, tol):
		p.back = append(p.back, s.Start)
		p.End = s.Start
	case p.End.ApproxEqual(s.Start, tol):
		p.back = append(p.back, s.End)
		p.End = s.End
	default:
		return false
	}

	p.modified = true
	if p.Start.ApproxEqual(p.End, tol) {
		p.Closed = true
	}
	return true
}

// finish materializes Vertices in path order
func (p *Polyline) finish() *Polyline {
	vertices := make([]geometry.Vector3, 0, len(p.front)+len(p.back))
	for i := len(p.front) - 1; i >= 0; i-- {
		vertices = append(vertices, p.front[i])
	}
	p.Vertices = append(vertices, p.back...)
	p.front, p.back = nil, nil
	return p
}

// Len returns the number of edges in the polyline
func (p *Polyline) Len() int {
	if len(p.Vertices) == 0 {
		return 0
	}
	return len(p.Vertices) - 1
}

// Length returns the arc length of the polyline
func (p *Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Vertices); i++ {
		total += p.Vertices[i-1].Distance(p.Vertices[i])
	}
	return total
}

// UniqueVertices returns the vertices without the repeated closing vertex
func (p *Polyline) UniqueVertices() []geometry.Vector3 {
	if p.Closed && len(p.Vertices) > 1 {
		return p.Vertices[:len(p.Vertices)-1]
	}
	return p.Vertices
}
