package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gocontour/internal/config"
	"github.com/philipparndt/gocontour/internal/logger"
	"github.com/philipparndt/gocontour/pkg/openscad"
	"github.com/philipparndt/gocontour/pkg/watcher"
)

var (
	watchSVG   string
	watchPlace placementFlags
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-extract contours whenever the mesh or its sources change",
	Long: `Run the contour command once and again every time the file is saved.
Bursts of file events are debounced. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	config.AddContourFlags(watchCmd.Flags())
	config.AddExportFlags(watchCmd.Flags())
	config.AddWatchFlags(watchCmd.Flags())
	watchCmd.Flags().StringVarP(&watchSVG, "svg", "o", "", "Rewrite the contour map to this SVG file on every change")
	watchPlace.register(watchCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	log := logger.Named("watch")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor, err := newExtractor()
	if err != nil {
		return err
	}

	// Any changed dependency re-extracts the file given on the command line
	refresh := func(changed string) {
		m, err := loadMesh(ctx, filename, &watchPlace)
		if err != nil {
			log.Error("failed to load mesh", zap.String("file", filename), zap.String("changed", changed), zap.Error(err))
			return
		}
		if err := extractAndReport(ctx, cmd, extractor, m, watchSVG); err != nil {
			log.Error("extraction failed", zap.String("file", filename), zap.Error(err))
		}
	}

	files := []string{filename}
	if openscad.IsSource(filename) {
		renderer, err := newRenderer()
		if err != nil {
			return err
		}
		if files, err = renderer.ResolveDependencies(filename); err != nil {
			return err
		}
	}

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(files, refresh); err != nil {
		return err
	}

	refresh(filename)
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %d file(s) for %s (Ctrl+C to stop)\n", len(files), filename)

	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
