package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocontour/internal/config"
	"github.com/philipparndt/gocontour/pkg/analysis"
)

var (
	sliceAt     float64
	slicePoints bool
	slicePlace  placementFlags
)

var sliceCmd = &cobra.Command{
	Use:   "slice [file]",
	Short: "Cut a mesh with a single plane",
	Long:  "Intersect the mesh with the plane orthogonal to --axis at --at and print the chained polylines.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)

	config.AddContourFlags(sliceCmd.Flags())
	sliceCmd.Flags().Float64Var(&sliceAt, "at", 0, "Elevation of the cutting plane")
	sliceCmd.Flags().BoolVarP(&slicePoints, "points", "p", false, "Print every polyline vertex")
	slicePlace.register(sliceCmd.Flags())
	_ = sliceCmd.MarkFlagRequired("at")
}

func runSlice(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	m, err := loadMesh(cmd.Context(), args[0], &slicePlace)
	if err != nil {
		return err
	}

	extractor, err := newExtractor()
	if err != nil {
		return err
	}
	axis := extractor.Options().Axis

	level, err := extractor.SliceAt(m, sliceAt)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Slice at %s\n", analysis.FormatElevation(axis, level.Elevation))
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Segments: %d\n", level.Segments)
	fmt.Fprintf(out, "Polylines: %d\n\n", len(level.Polylines))

	for i, line := range level.Polylines {
		info := analysis.SummarizePolyline(line, axis)

		kind := "open"
		if info.Closed {
			kind = "closed"
		}
		fmt.Fprintf(out, "#%d %s, %d segments, length %.6f\n", i+1, kind, info.Segments, info.Length)
		fmt.Fprintf(out, "  Start: %s\n", analysis.FormatVector(line.Start))
		fmt.Fprintf(out, "  End: %s\n", analysis.FormatVector(line.End))
		if info.Circle != nil {
			fmt.Fprintf(out, "  Circle: center %s, radius %.6f, deviation %.6f\n",
				analysis.FormatVector(info.Circle.Center), info.Circle.Radius, info.Circle.StdDev)
		}

		if slicePoints {
			for _, v := range line.Vertices {
				fmt.Fprintf(out, "    %s\n", analysis.FormatVector(v))
			}
		}
	}
	return nil
}
