package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by the commands.
const (
	FlagConfig        = "config"
	FlagLogLevel      = "log-level"
	FlagLogFile       = "log-file"
	FlagAxis          = "axis"
	FlagStep          = "step"
	FlagMin           = "min"
	FlagMax           = "max"
	FlagTolerance     = "tolerance"
	FlagWorkers       = "workers"
	FlagWeldTolerance = "weld-tolerance"
	FlagWidth         = "width"
	FlagHeight        = "height"
	FlagStroke        = "stroke"
	FlagDebounce      = "debounce"
)

// AddGlobalFlags registers the flags every command accepts.
func AddGlobalFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Path to config file")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Also write logs to this file")
}

// AddContourFlags registers the extraction flags.
func AddContourFlags(fs *pflag.FlagSet) {
	fs.String(FlagAxis, "", "Up axis the contour planes are orthogonal to (x, y, z)")
	fs.Float64(FlagStep, 0, "Distance between contour levels")
	fs.Float64(FlagMin, 0, "Lowest elevation (exclusive)")
	fs.Float64(FlagMax, 0, "Highest elevation (inclusive)")
	fs.Float64(FlagTolerance, 0, "Endpoint matching distance when chaining segments")
	fs.Int(FlagWorkers, 0, "Levels extracted in parallel (0 = one per CPU)")
	fs.Float64(FlagWeldTolerance, 0, "Distance below which STL vertices are merged")
}

// AddExportFlags registers the SVG map flags.
func AddExportFlags(fs *pflag.FlagSet) {
	fs.Int(FlagWidth, 0, "SVG width in pixels")
	fs.Int(FlagHeight, 0, "SVG height in pixels")
	fs.String(FlagStroke, "", "SVG line color")
}

// AddWatchFlags registers the file watching flags.
func AddWatchFlags(fs *pflag.FlagSet) {
	fs.Duration(FlagDebounce, 0, "Quiet period before a changed file is processed")
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath(fs *pflag.FlagSet) string {
	if fs == nil || fs.Lookup(FlagConfig) == nil {
		return ""
	}
	path, _ := fs.GetString(FlagConfig)
	return path
}

// changed reports whether a registered flag was set on the command line
func changed(fs *pflag.FlagSet, name string) bool {
	return fs.Lookup(name) != nil && fs.Changed(name)
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	var err error
	setString := func(name string, dst *string) {
		if err == nil && changed(fs, name) {
			*dst, err = fs.GetString(name)
		}
	}
	setFloat := func(name string, dst *float64) {
		if err == nil && changed(fs, name) {
			*dst, err = fs.GetFloat64(name)
		}
	}
	setInt := func(name string, dst *int) {
		if err == nil && changed(fs, name) {
			*dst, err = fs.GetInt(name)
		}
	}

	setString(FlagLogLevel, &cfg.Logging.Level)
	setString(FlagLogFile, &cfg.Logging.LogFile)

	setString(FlagAxis, &cfg.Contour.Axis)
	setFloat(FlagStep, &cfg.Contour.Step)
	setFloat(FlagMin, &cfg.Contour.Min)
	setFloat(FlagMax, &cfg.Contour.Max)
	setFloat(FlagTolerance, &cfg.Contour.Tolerance)
	setInt(FlagWorkers, &cfg.Contour.Workers)
	setFloat(FlagWeldTolerance, &cfg.Contour.WeldTolerance)

	setInt(FlagWidth, &cfg.Export.Width)
	setInt(FlagHeight, &cfg.Export.Height)
	setString(FlagStroke, &cfg.Export.Stroke)

	if err == nil && changed(fs, FlagDebounce) {
		cfg.Watch.Debounce, err = fs.GetDuration(FlagDebounce)
	}

	return err
}
