package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocontour/internal/config"
	"github.com/philipparndt/gocontour/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show the welded mesh statistics: dimensions, triangle and vertex counts, surface area and edge lengths.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64(config.FlagWeldTolerance, 0, "Distance below which STL vertices are merged")
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	m, err := loadMesh(cmd.Context(), filename, nil)
	if err != nil {
		return err
	}

	result := analysis.MeshInfo(m)

	fmt.Fprintln(out, "Mesh Information")
	fmt.Fprintln(out, "================")
	if m.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", m.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Vertices: %d (welded at %g)\n", result.VertexCount, cfg.Contour.WeldTolerance)
	fmt.Fprintf(out, "  Degenerate triangles: %d\n", result.DegenerateTris)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  X: %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(out, "  Y: %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(out, "  Z: %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", result.AvgEdgeLength)

	longest := analysis.FindLongestEdges(result, 3)
	if len(longest) > 0 {
		fmt.Fprintln(out, "\nLongest Edges:")
		for _, edge := range longest {
			fmt.Fprintf(out, "  %s -> %s  %s (triangle %d)\n",
				analysis.FormatVector(edge.Start),
				analysis.FormatVector(edge.End),
				analysis.FormatMeasurement(edge.Length, ""),
				edge.TriangleID,
			)
		}
	}
	return nil
}
