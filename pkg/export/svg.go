// Package export writes extracted contours to other formats.
package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/philipparndt/gocontour/pkg/contour"
	"github.com/philipparndt/gocontour/pkg/geometry"
)

// SVGOptions controls the contour map canvas
type SVGOptions struct {
	// Axis is the contour axis; the map looks down along it.
	Axis        geometry.Axis
	Width       int
	Height      int
	Margin      int
	Stroke      string
	StrokeWidth float64
	Background  string
}

// DefaultSVGOptions returns an 800x800 map with green lines
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Axis:        geometry.AxisY,
		Width:       800,
		Height:      800,
		Margin:      10,
		Stroke:      "#008800",
		StrokeWidth: 1,
	}
}

// errWriter keeps the first write error, svgo itself ignores them
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// projection maps contour vertices to canvas pixels. u runs right and v
// runs up, so the map shows the mesh as seen from the positive axis.
type projection struct {
	u, v             geometry.Axis
	minU, maxV       float64
	scale            float64
	offsetX, offsetY float64
}

func newProjection(levels []contour.Level, opts SVGOptions) projection {
	others := opts.Axis.Others()
	p := projection{u: others[0], v: others[1], scale: 1}

	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	for _, level := range levels {
		for _, line := range level.Polylines {
			for _, vertex := range line.Vertices {
				u, v := vertex.Component(p.u), vertex.Component(p.v)
				minU, maxU = math.Min(minU, u), math.Max(maxU, u)
				minV, maxV = math.Min(minV, v), math.Max(maxV, v)
			}
		}
	}
	if math.IsInf(minU, 1) {
		return p
	}

	innerW := float64(opts.Width - 2*opts.Margin)
	innerH := float64(opts.Height - 2*opts.Margin)
	spanU, spanV := maxU-minU, maxV-minV

	switch {
	case spanU > 0 && spanV > 0:
		p.scale = math.Min(innerW/spanU, innerH/spanV)
	case spanU > 0:
		p.scale = innerW / spanU
	case spanV > 0:
		p.scale = innerH / spanV
	}

	p.minU, p.maxV = minU, maxV
	p.offsetX = float64(opts.Margin) + (innerW-spanU*p.scale)/2
	p.offsetY = float64(opts.Margin) + (innerH-spanV*p.scale)/2
	return p
}

func (p projection) points(vertices []geometry.Vector3) (xs, ys []int) {
	xs = make([]int, len(vertices))
	ys = make([]int, len(vertices))
	for i, vertex := range vertices {
		xs[i] = int(math.Round(p.offsetX + (vertex.Component(p.u)-p.minU)*p.scale))
		ys[i] = int(math.Round(p.offsetY + (p.maxV-vertex.Component(p.v))*p.scale))
	}
	return xs, ys
}

// WriteSVG draws every level as a group of contour lines. Closed contours
// become polygons and open ones polylines. Without levels an empty canvas
// is written.
func WriteSVG(w io.Writer, levels []contour.Level, opts SVGOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.Margin < 0 || 2*opts.Margin >= opts.Width || 2*opts.Margin >= opts.Height {
		return fmt.Errorf("invalid margin %d for a %dx%d canvas", opts.Margin, opts.Width, opts.Height)
	}
	if !opts.Axis.Valid() {
		return fmt.Errorf("invalid axis %v", opts.Axis)
	}
	if opts.Stroke == "" {
		opts.Stroke = "black"
	}

	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(opts.Width, opts.Height)
	if opts.Background != "" {
		canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+opts.Background)
	}

	proj := newProjection(levels, opts)
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", opts.Stroke, opts.StrokeWidth)

	for i, level := range levels {
		if len(level.Polylines) == 0 {
			continue
		}
		canvas.Gid(fmt.Sprintf("level-%d", i))
		canvas.Title(fmt.Sprintf("%s=%g", opts.Axis, level.Elevation))
		for _, line := range level.Polylines {
			if line.Closed {
				xs, ys := proj.points(line.UniqueVertices())
				canvas.Polygon(xs, ys, style)
			} else {
				xs, ys := proj.points(line.Vertices)
				canvas.Polyline(xs, ys, style)
			}
		}
		canvas.Gend()
	}

	canvas.End()
	return out.err
}
