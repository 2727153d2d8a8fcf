// Package config handles gocontour configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/philipparndt/gocontour/pkg/contour"
	"github.com/philipparndt/gocontour/pkg/export"
	"github.com/philipparndt/gocontour/pkg/geometry"
	"github.com/philipparndt/gocontour/pkg/stl"
	"github.com/philipparndt/gocontour/pkg/watcher"
)

// Config holds all settings.
type Config struct {
	Contour ContourConfig `yaml:"contour"`
	Export  ExportConfig  `yaml:"export"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// ContourConfig holds extraction settings.
type ContourConfig struct {
	Axis          string  `yaml:"axis"`
	Step          float64 `yaml:"step"`
	Min           float64 `yaml:"min"` // Min and Max both zero: count from the ground to the mesh top
	Max           float64 `yaml:"max"`
	Tolerance     float64 `yaml:"tolerance"`
	Workers       int     `yaml:"workers"`
	WeldTolerance float64 `yaml:"weld_tolerance"`
}

// ExportConfig holds SVG map settings.
type ExportConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Margin      int     `yaml:"margin"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Background  string  `yaml:"background"`
}

// WatchConfig holds file watching settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	svg := export.DefaultSVGOptions()
	return &Config{
		Contour: ContourConfig{
			Axis:          "y",
			Step:          1,
			Tolerance:     contour.DefaultTolerance,
			Workers:       0,
			WeldTolerance: stl.DefaultWeldTolerance,
		},
		Export: ExportConfig{
			Width:       svg.Width,
			Height:      svg.Height,
			Margin:      svg.Margin,
			Stroke:      svg.Stroke,
			StrokeWidth: svg.StrokeWidth,
		},
		Watch: WatchConfig{
			Debounce: watcher.DefaultDebounce,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings that have no safe fallback.
func (c *Config) Validate() error {
	if _, err := geometry.ParseAxis(c.Contour.Axis); err != nil {
		return fmt.Errorf("contour.axis: %w", err)
	}
	if !(c.Contour.Step > 0) {
		return fmt.Errorf("contour.step must be positive, got %g", c.Contour.Step)
	}
	if !(c.Contour.Tolerance > 0) {
		return fmt.Errorf("contour.tolerance must be positive, got %g", c.Contour.Tolerance)
	}
	if c.Contour.Workers < 0 {
		return fmt.Errorf("contour.workers must not be negative, got %d", c.Contour.Workers)
	}
	if c.Contour.WeldTolerance < 0 {
		return fmt.Errorf("contour.weld_tolerance must not be negative, got %g", c.Contour.WeldTolerance)
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("export size must be positive, got %dx%d", c.Export.Width, c.Export.Height)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", c.Watch.Debounce)
	}
	return nil
}

// ContourOptions converts the contour section into extractor options.
func (c *Config) ContourOptions() (contour.Options, error) {
	axis, err := geometry.ParseAxis(c.Contour.Axis)
	if err != nil {
		return contour.Options{}, err
	}
	return contour.Options{
		Axis:      axis,
		Step:      c.Contour.Step,
		From:      c.Contour.Min,
		To:        c.Contour.Max,
		Tolerance: c.Contour.Tolerance,
		Workers:   c.Contour.Workers,
	}, nil
}

// SVGOptions converts the export section into SVG writer options for maps
// cut along axis.
func (c *Config) SVGOptions(axis geometry.Axis) export.SVGOptions {
	return export.SVGOptions{
		Axis:        axis,
		Width:       c.Export.Width,
		Height:      c.Export.Height,
		Margin:      c.Export.Margin,
		Stroke:      c.Export.Stroke,
		StrokeWidth: c.Export.StrokeWidth,
		Background:  c.Export.Background,
	}
}
