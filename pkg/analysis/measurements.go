package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/mesh"
)

// EdgeInfo describes one triangle edge of a mesh
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// MeshStats contains the measurements of an indexed mesh
type MeshStats struct {
	Name           string
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	SurfaceArea    float64
	TriangleCount  int
	VertexCount    int
	DegenerateTris int
	EdgeCount      int
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
	AllEdges       []EdgeInfo
}

// MeshInfo measures a mesh. The mesh must be valid.
func MeshInfo(m *mesh.Mesh) *MeshStats {
	result := &MeshStats{
		Name:          m.Name,
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		TriangleCount: m.TriangleCount(),
		VertexCount:   m.VertexCount(),
		AllEdges:      make([]EdgeInfo, 0, m.TriangleCount()*3),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Corners(i)
		if geometry.NewTriangle(geometry.Vector3{}, a, b, c).IsDegenerate() {
			result.DegenerateTris++
		}

		edges := [3]struct {
			start, end geometry.Vector3
		}{
			{a, b},
			{b, c},
			{c, a},
		}

		for _, edge := range edges {
			length := edge.start.Distance(edge.end)
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      edge.start,
				End:        edge.end,
				Length:     length,
				TriangleID: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeshStats, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatElevation formats a contour elevation with the axis it was cut
// along, e.g. "y=3.500".
func FormatElevation(axis geometry.Axis, elevation float64) string {
	return fmt.Sprintf("%s=%.3f", axis, elevation)
}
