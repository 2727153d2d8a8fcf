package contour

import "math"

type passResult int

const (
	// passExhausted means every candidate in the worklist was tried.
	passExhausted passResult = iota
	// passClosed means the polyline closed before the worklist was done.
	passClosed
)

// Chainer joins loose segments into polylines
type Chainer struct {
	tolerance float64
}

// NewChainer creates a chainer that matches endpoints closer than tol on
// every axis. tol must be positive.
func NewChainer(tol float64) (*Chainer, error) {
	if !(tol > 0) || math.IsInf(tol, 1) {
		return nil, &ToleranceError{Tolerance: tol}
	}
	return &Chainer{tolerance: tol}, nil
}

// Chain joins segments with the given tolerance. See Chainer.Chain.
func Chain(segments []Segment, tol float64) ([]*Polyline, error) {
	c, err := NewChainer(tol)
	if err != nil {
		return nil, err
	}
	return c.Chain(segments), nil
}

// Chain joins segments that share an endpoint into polylines. Every segment
// ends up in exactly one polyline and output order follows input order.
//
// The first remaining segment seeds a polyline. The rest are scanned left
// to right; each one touching a free end is absorbed and the others are set
// aside. If anything was absorbed the set-aside segments are scanned again,
// since the new ends may now reach them. A polyline is emitted when a scan
// absorbs nothing, or immediately once its ends meet.
func (c *Chainer) Chain(segments []Segment) []*Polyline {
	worklist := make([]Segment, len(segments))
	copy(worklist, segments)
	checked := make([]Segment, 0, len(segments))

	var (
		result  []*Polyline
		current *Polyline
	)

	for len(worklist) > 0 {
		if current == nil {
			current = newPolyline(worklist[0])
			worklist = worklist[1:]
			continue
		}

		outcome, rest := c.scan(current, worklist, &checked)

		switch {
		case outcome == passClosed:
			result = append(result, current.finish())
			current = nil
			checked = append(checked, rest...)
		case current.modified:
			current.modified = false
		default:
			result = append(result, current.finish())
			current = nil
		}

		// the set-aside segments become the next worklist; the old worklist
		// backing array is reused for the next scan
		worklist, checked = checked, worklist[:0]
	}

	if current != nil {
		result = append(result, current.finish())
	}

	return result
}

// scan tries every worklist segment against current. Segments that do not
// fit are appended to checked. On passClosed the unscanned remainder is
// returned.
func (c *Chainer) scan(current *Polyline, worklist []Segment, checked *[]Segment) (passResult, []Segment) {
	for i, s := range worklist {
		if current.combine(s, c.tolerance) {
			if current.Closed {
				return passClosed, worklist[i+1:]
			}
			continue
		}
		*checked = append(*checked, s)
	}
	return passExhausted, nil
}
