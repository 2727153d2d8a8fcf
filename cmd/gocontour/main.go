package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gocontour/internal/config"
	"github.com/philipparndt/gocontour/internal/logger"
	"github.com/philipparndt/gocontour/version"
)

// cfg is the effective configuration of the running command
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "gocontour",
	Short: "Extract contour lines from triangle meshes",
	Long: `gocontour slices triangle meshes with parallel planes and chains the
intersection segments into contour polylines. Meshes come from ASCII or
binary STL files, OpenSCAD sources or generated test solids. Results are
printed as statistics and can be written as SVG contour maps.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	config.AddGlobalFlags(rootCmd.PersistentFlags())
}

// setup loads the configuration and starts logging before any command runs
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := logger.Init(loaded.Logging.Level, loaded.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg = loaded

	logger.Log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("axis", cfg.Contour.Axis),
		zap.Float64("step", cfg.Contour.Step),
		zap.Float64("tolerance", cfg.Contour.Tolerance),
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
