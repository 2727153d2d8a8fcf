package contour

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/mesh"
)

func TestElevations(t *testing.T) {
	elevations, err := Elevations(0, 3, 1)
	if err != nil {
		t.Fatalf("Elevations failed: %v", err)
	}

	expected := []float64{1, 2, 3}
	if len(elevations) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, elevations)
	}
	for i := range expected {
		if math.Abs(elevations[i]-expected[i]) > 1e-12 {
			t.Errorf("elevation %d: expected %v, got %v", i, expected[i], elevations[i])
		}
	}
}

func TestElevationsFractionalTop(t *testing.T) {
	elevations, err := Elevations(-1, 1.9, 0.5)
	if err != nil {
		t.Fatalf("Elevations failed: %v", err)
	}
	if len(elevations) != 5 || elevations[4] != 1.5 {
		t.Errorf("expected 5 levels up to 1.5, got %v", elevations)
	}
}

func TestElevationsInvalid(t *testing.T) {
	cases := []struct {
		name           string
		from, to, step float64
	}{
		{"zero step", 0, 1, 0},
		{"negative step", 0, 1, -1},
		{"inverted range", 2, 1, 1},
		{"nan bound", math.NaN(), 1, 1},
		{"too many levels", 0, 1, 1e-9},
		{"level count beyond int range", 0, 1, 1e-20},
		{"infinite level count", -1e308, 1e308, 1e-300},
	}
	for _, tc := range cases {
		var optErr *OptionsError
		if _, err := Elevations(tc.from, tc.to, tc.step); !errors.As(err, &optErr) {
			t.Errorf("%s: expected OptionsError, got %v", tc.name, err)
		}
	}
}

func TestLevelPlane(t *testing.T) {
	for _, axis := range []geometry.Axis{geometry.AxisX, geometry.AxisY, geometry.AxisZ} {
		plane, err := LevelPlane(axis, 2.5)
		if err != nil {
			t.Fatalf("LevelPlane(%v) failed: %v", axis, err)
		}
		onPlane := axis.Unit().Mul(2.5).Add(v(0.3, 0.3, 0.3)).Sub(axis.Unit().Mul(0.3))
		if d := plane.DistanceToPoint(onPlane); math.Abs(d) > 1e-12 {
			t.Errorf("axis %v: point %v should lie on the plane, distance %v", axis, onPlane, d)
		}
	}
}

func TestSlicePyramid(t *testing.T) {
	polylines, err := Slice(pyramid(), geometry.HorizontalPlane(geometry.AxisY, 1), DefaultTolerance)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}

	if len(polylines) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(polylines))
	}
	if !polylines[0].Closed {
		t.Error("pyramid contour should be closed")
	}
	if math.Abs(polylines[0].Length()-8) > 1e-9 {
		t.Errorf("expected a 2x2 square with perimeter 8, got %v", polylines[0].Length())
	}
}

func TestSliceInvalidTolerance(t *testing.T) {
	var tolErr *ToleranceError
	if _, err := Slice(pyramid(), geometry.HorizontalPlane(geometry.AxisY, 1), 0); !errors.As(err, &tolErr) {
		t.Errorf("expected ToleranceError, got %v", err)
	}
}

func TestNewExtractorValidation(t *testing.T) {
	opts := DefaultOptions()
	opts.Step = 0
	var optErr *OptionsError
	if _, err := NewExtractor(opts, nil); !errors.As(err, &optErr) {
		t.Errorf("expected OptionsError for zero step, got %v", err)
	}

	opts = DefaultOptions()
	opts.Tolerance = -1
	var tolErr *ToleranceError
	if _, err := NewExtractor(opts, nil); !errors.As(err, &tolErr) {
		t.Errorf("expected ToleranceError, got %v", err)
	}

	opts = DefaultOptions()
	opts.Axis = geometry.Axis(7)
	if _, err := NewExtractor(opts, nil); !errors.As(err, &optErr) {
		t.Errorf("expected OptionsError for bad axis, got %v", err)
	}

	opts = DefaultOptions()
	x, err := NewExtractor(opts, nil)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}
	if x.Options().Workers < 1 {
		t.Errorf("workers should default to at least 1, got %d", x.Options().Workers)
	}
}

// cone returns a grid whose height falls off linearly from the center, so
// every level inside its range is one closed ring. The apex sits a quarter
// unit above a whole number so no grid vertex lies exactly on a level.
func cone(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.Grid(mesh.GridOptions{Width: 20, Depth: 20, SegmentsX: 40, SegmentsZ: 40}, func(x, z float64) float64 {
		return 8.25 - math.Hypot(x, z)
	})
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	return m
}

func TestExtractCone(t *testing.T) {
	opts := DefaultOptions()
	opts.From = 0
	opts.To = 7.2
	opts.Workers = 3

	x, err := NewExtractor(opts, nil)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	levels, err := x.Extract(context.Background(), cone(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(levels) != 7 {
		t.Fatalf("expected 7 levels, got %d", len(levels))
	}

	for i, level := range levels {
		if level.Elevation != float64(i+1) {
			t.Errorf("level %d: expected elevation %d, got %v", i, i+1, level.Elevation)
		}
		if len(level.Polylines) != 1 {
			t.Errorf("level %v: expected 1 ring, got %d", level.Elevation, len(level.Polylines))
			continue
		}
		ring := level.Polylines[0]
		if !ring.Closed {
			t.Errorf("level %v: ring should be closed", level.Elevation)
		}
		if ring.Len() != level.Segments {
			t.Errorf("level %v: ring has %d edges but %d segments were cut", level.Elevation, ring.Len(), level.Segments)
		}
		for _, p := range ring.Vertices {
			if math.Abs(p.Y-level.Elevation) > 1e-9 {
				t.Errorf("level %v: vertex %v is off the plane", level.Elevation, p)
				break
			}
		}
	}
}

func TestExtractUsesMeshExtent(t *testing.T) {
	x, err := NewExtractor(DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	elevations, err := x.Elevations(pyramid())
	if err != nil {
		t.Fatalf("Elevations failed: %v", err)
	}
	if len(elevations) != 2 || elevations[0] != 1 || elevations[1] != 2 {
		t.Errorf("expected elevations [1 2] over the pyramid, got %v", elevations)
	}
}

// ramp returns a grid sloping along X from low to low+2
func ramp(t *testing.T, low float64) *mesh.Mesh {
	t.Helper()
	m, err := mesh.Grid(mesh.GridOptions{Width: 4, Depth: 2, SegmentsX: 4, SegmentsZ: 2}, func(x, z float64) float64 {
		return low + (x+2)/2
	})
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	return m
}

func TestExtractCountsLevelsFromGround(t *testing.T) {
	x, err := NewExtractor(DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	tests := []struct {
		low      float64
		expected []float64
	}{
		{1.4, []float64{1, 2, 3}},
		{-2.5, []float64{-2, -1}},
	}
	for _, tt := range tests {
		elevations, err := x.Elevations(ramp(t, tt.low))
		if err != nil {
			t.Fatalf("Elevations failed: %v", err)
		}
		if len(elevations) != len(tt.expected) {
			t.Errorf("Elevations failed for low %v: expected %v, got %v", tt.low, tt.expected, elevations)
			continue
		}
		for i := range tt.expected {
			if math.Abs(elevations[i]-tt.expected[i]) > 1e-12 {
				t.Errorf("Elevations failed for low %v: expected %v, got %v", tt.low, tt.expected, elevations)
				break
			}
		}
	}
}

func TestExtractCancelled(t *testing.T) {
	x, err := NewExtractor(DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := x.Extract(ctx, cone(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestExtractMalformedMesh(t *testing.T) {
	x, err := NewExtractor(DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	m := pyramid()
	m.Indices = append(m.Indices, 0)

	var meshErr *mesh.MalformedMeshError
	if _, err := x.Extract(context.Background(), m); !errors.As(err, &meshErr) {
		t.Errorf("expected MalformedMeshError, got %v", err)
	}
}

func TestSliceAt(t *testing.T) {
	opts := DefaultOptions()
	opts.Axis = geometry.AxisY
	x, err := NewExtractor(opts, nil)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	level, err := x.SliceAt(pyramid(), 0.5)
	if err != nil {
		t.Fatalf("SliceAt failed: %v", err)
	}
	if level.Segments != 4 || len(level.Polylines) != 1 {
		t.Errorf("expected 4 segments in 1 polyline, got %d in %d", level.Segments, len(level.Polylines))
	}
}
