package analysis

import (
	"github.com/philipparndt/gocontour/pkg/contour"
	"github.com/philipparndt/gocontour/pkg/geometry"
)

// PolylineInfo describes one extracted contour
type PolylineInfo struct {
	Closed   bool
	Segments int
	Vertices int
	Length   float64
	Bounds   geometry.BoundingBox
	// Circle is set for closed contours with at least three distinct
	// points.
	Circle *geometry.CircleFit
}

// LevelInfo aggregates the contours of one elevation
type LevelInfo struct {
	Elevation float64
	Segments  int
	Polylines int
	Closed    int
	Open      int
	Length    float64
}

// Summary aggregates a whole extraction
type Summary struct {
	Levels    []LevelInfo
	Polylines int
	Closed    int
	Open      int
	Segments  int
	Length    float64
	// Longest is the level index and polyline index of the longest
	// contour, or -1 when nothing was extracted.
	LongestLevel    int
	LongestPolyline int
	LongestLength   float64
}

// SummarizePolyline measures a single polyline. axis is the contour axis
// and selects the plane the circle fit works in.
func SummarizePolyline(p *contour.Polyline, axis geometry.Axis) PolylineInfo {
	info := PolylineInfo{
		Closed:   p.Closed,
		Segments: p.Len(),
		Vertices: len(p.UniqueVertices()),
		Length:   p.Length(),
		Bounds:   geometry.NewBoundingBox(),
	}
	for _, v := range p.Vertices {
		info.Bounds.Extend(v)
	}

	if p.Closed && info.Vertices >= 3 {
		if fit, err := geometry.FitCircle(p.UniqueVertices(), axis); err == nil {
			info.Circle = fit
		}
	}
	return info
}

// SummarizeLevels aggregates counts and lengths over all levels. The total
// segment count equals the number of segments the intersector produced.
func SummarizeLevels(levels []contour.Level) Summary {
	summary := Summary{
		Levels:          make([]LevelInfo, 0, len(levels)),
		LongestLevel:    -1,
		LongestPolyline: -1,
	}

	for li, level := range levels {
		info := LevelInfo{
			Elevation: level.Elevation,
			Polylines: len(level.Polylines),
		}
		for pi, p := range level.Polylines {
			length := p.Length()
			info.Segments += p.Len()
			info.Length += length
			if p.Closed {
				info.Closed++
			} else {
				info.Open++
			}
			if length > summary.LongestLength || summary.LongestLevel < 0 {
				summary.LongestLevel = li
				summary.LongestPolyline = pi
				summary.LongestLength = length
			}
		}

		summary.Levels = append(summary.Levels, info)
		summary.Polylines += info.Polylines
		summary.Closed += info.Closed
		summary.Open += info.Open
		summary.Segments += info.Segments
		summary.Length += info.Length
	}

	return summary
}
