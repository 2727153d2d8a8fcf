package contour

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/mesh"
)

// MaxLevels caps the number of elevations one extraction may produce
const MaxLevels = 10000

// Options controls which contour levels are extracted
type Options struct {
	// Axis is the up direction; contour planes are orthogonal to it.
	Axis geometry.Axis
	// Step is the spacing between elevations.
	Step float64
	// From and To bound the elevations. When both are zero the extent of
	// the mesh along Axis is used.
	From, To float64
	// Tolerance is the endpoint matching distance used when chaining.
	Tolerance float64
	// Workers limits how many levels are extracted at once; zero means one
	// per CPU.
	Workers int
}

// DefaultOptions returns unit-spaced levels along Y, like terrain with a
// vertical Y axis.
func DefaultOptions() Options {
	return Options{
		Axis:      geometry.AxisY,
		Step:      1,
		Tolerance: DefaultTolerance,
	}
}

// Level holds the contour polylines of one elevation
type Level struct {
	Elevation float64
	Plane     geometry.Plane
	Segments  int
	Polylines []*Polyline
}

// Elevations returns from+step, from+2*step, ... up to and including to.
// The base elevation itself is skipped, matching contour maps where the
// ground line is not drawn.
func Elevations(from, to, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, &OptionsError{Field: "step", Reason: fmt.Sprintf("must be positive, got %g", step)}
	}
	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return nil, &OptionsError{Field: "range", Reason: fmt.Sprintf("bounds must be finite, got [%g, %g]", from, to)}
	}
	if to < from {
		return nil, &OptionsError{Field: "range", Reason: fmt.Sprintf("to %g is below from %g", to, from)}
	}

	// compare before converting; a huge quotient does not fit in an int
	n := math.Floor((to-from)/step + 1e-9)
	if n > MaxLevels {
		return nil, &OptionsError{Field: "step", Reason: fmt.Sprintf("%g produces %g levels, more than %d", step, n, MaxLevels)}
	}
	count := int(n)

	elevations := make([]float64, 0, count)
	for i := 1; i <= count; i++ {
		elevations = append(elevations, from+float64(i)*step)
	}
	return elevations, nil
}

// LevelPlane builds the contour plane at elevation from three points on it,
// the way a scene graph plane is set from coplanar points.
func LevelPlane(axis geometry.Axis, elevation float64) (geometry.Plane, error) {
	others := axis.Others()
	a := axis.Unit().Mul(elevation)
	b := a.Add(others[0].Unit())
	c := a.Add(others[1].Unit())
	return geometry.NewPlaneFromCoplanarPoints(a, b, c)
}

// Slice runs one contour update: intersect m with plane and chain the
// result.
func Slice(m *mesh.Mesh, plane geometry.Plane, tol float64) ([]*Polyline, error) {
	chainer, err := NewChainer(tol)
	if err != nil {
		return nil, err
	}
	segments, err := Intersect(m, plane)
	if err != nil {
		return nil, err
	}
	return chainer.Chain(segments), nil
}

// Extractor computes contour levels for meshes
type Extractor struct {
	opts    Options
	chainer *Chainer
	log     *zap.Logger
}

// NewExtractor validates opts and creates an extractor. A nil logger
// disables logging.
func NewExtractor(opts Options, log *zap.Logger) (*Extractor, error) {
	if !opts.Axis.Valid() {
		return nil, &OptionsError{Field: "axis", Reason: fmt.Sprintf("unknown axis %d", int(opts.Axis))}
	}
	if !(opts.Step > 0) {
		return nil, &OptionsError{Field: "step", Reason: fmt.Sprintf("must be positive, got %g", opts.Step)}
	}
	if opts.Workers < 0 {
		return nil, &OptionsError{Field: "workers", Reason: fmt.Sprintf("must not be negative, got %d", opts.Workers)}
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	chainer, err := NewChainer(opts.Tolerance)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Extractor{opts: opts, chainer: chainer, log: log}, nil
}

// Options returns the effective options
func (x *Extractor) Options() Options {
	return x.opts
}

// Elevations returns the elevations Extract would use for m. Without an
// explicit range the levels are the multiples of Step from the ground up to
// the top of the mesh.
func (x *Extractor) Elevations(m *mesh.Mesh) ([]float64, error) {
	from, to := x.opts.From, x.opts.To
	if from == 0 && to == 0 {
		bbox := m.BoundingBox()
		if bbox.IsEmpty() {
			return nil, nil
		}
		var low float64
		low, to = bbox.Range(x.opts.Axis)
		from = groundLevel(low, x.opts.Step)
	}
	return Elevations(from, to, x.opts.Step)
}

// groundLevel returns the base the levels are counted from: the origin, or
// the nearest multiple of step below low when the mesh reaches under it.
// Levels then fall on whole multiples of step.
func groundLevel(low, step float64) float64 {
	return math.Min(0, math.Floor(low/step)*step)
}

// Extract computes every contour level of m. Levels are extracted
// concurrently and returned in ascending elevation order. m is only read,
// but must not be modified until Extract returns.
func (x *Extractor) Extract(ctx context.Context, m *mesh.Mesh) ([]Level, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	elevations, err := x.Elevations(m)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	levels := make([]Level, len(elevations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(x.opts.Workers)

	for i, elevation := range elevations {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			level, err := x.level(m, elevation)
			if err != nil {
				return fmt.Errorf("level %g: %w", elevation, err)
			}
			levels[i] = level
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x.log.Info("contours extracted",
		zap.String("mesh", m.Name),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("levels", len(levels)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return levels, nil
}

// SliceAt extracts the single level at elevation
func (x *Extractor) SliceAt(m *mesh.Mesh, elevation float64) (Level, error) {
	if err := m.Validate(); err != nil {
		return Level{}, err
	}
	return x.level(m, elevation)
}

func (x *Extractor) level(m *mesh.Mesh, elevation float64) (Level, error) {
	plane, err := LevelPlane(x.opts.Axis, elevation)
	if err != nil {
		return Level{}, err
	}

	started := time.Now()
	segments := intersect(m, plane, nil)
	intersected := time.Now()
	polylines := x.chainer.Chain(segments)

	x.log.Debug("level sliced",
		zap.Float64("elevation", elevation),
		zap.Int("segments", len(segments)),
		zap.Int("polylines", len(polylines)),
		zap.Duration("intersect", intersected.Sub(started)),
		zap.Duration("chain", time.Since(intersected)),
	)

	return Level{
		Elevation: elevation,
		Plane:     plane,
		Segments:  len(segments),
		Polylines: polylines,
	}, nil
}
