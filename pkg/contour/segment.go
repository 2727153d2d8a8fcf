package contour

import "github.com/philipparndt/gocontour/pkg/geometry"

// DefaultTolerance is the per-axis distance below which two endpoints are
// treated as the same vertex.
const DefaultTolerance = 0.001

// Segment is one plane crossing of a triangle. Start and End carry no
// direction.
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// NewSegment creates a segment between two points
func NewSegment(start, end geometry.Vector3) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the distance between the endpoints
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}
