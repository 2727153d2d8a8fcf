package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gocontour/internal/config"
	"github.com/philipparndt/gocontour/internal/logger"
	"github.com/philipparndt/gocontour/pkg/contour"
	"github.com/philipparndt/gocontour/pkg/export"
	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/mesh"
)

var (
	contourSVG   string
	contourPlace placementFlags
)

var contourCmd = &cobra.Command{
	Use:   "contour [file]",
	Short: "Extract all contour levels of a mesh",
	Long: `Cut the mesh with planes orthogonal to --axis at every multiple of --step
above the ground and chain each cut into polylines. The ground is the origin,
or the next multiple of --step below the mesh when it reaches below zero.
Use --min and --max for an explicit range. Levels are extracted in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runContour,
}

func init() {
	rootCmd.AddCommand(contourCmd)

	config.AddContourFlags(contourCmd.Flags())
	config.AddExportFlags(contourCmd.Flags())
	contourCmd.Flags().StringVarP(&contourSVG, "svg", "o", "", "Write the contour map to this SVG file")
	contourPlace.register(contourCmd.Flags())
}

func runContour(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	m, err := loadMesh(ctx, args[0], &contourPlace)
	if err != nil {
		return err
	}

	extractor, err := newExtractor()
	if err != nil {
		return err
	}

	return extractAndReport(ctx, cmd, extractor, m, contourSVG)
}

// extractAndReport runs one extraction, prints the summary and writes the
// optional SVG map
func extractAndReport(ctx context.Context, cmd *cobra.Command, extractor *contour.Extractor, m *mesh.Mesh, svgPath string) error {
	levels, err := extractor.Extract(ctx, m)
	if err != nil {
		return fmt.Errorf("extracting contours: %w", err)
	}

	axis := extractor.Options().Axis
	printSummary(cmd.OutOrStdout(), axis, levels)

	if svgPath != "" {
		if err := writeSVG(svgPath, axis, levels); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "SVG written to %s\n", svgPath)
	}
	return nil
}

func writeSVG(path string, axis geometry.Axis, levels []contour.Level) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SVG file: %w", err)
	}

	if err := export.WriteSVG(file, levels, cfg.SVGOptions(axis)); err != nil {
		file.Close()
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	logger.Named("export").Debug("svg written", zap.String("path", path), zap.Int("levels", len(levels)))
	return nil
}
