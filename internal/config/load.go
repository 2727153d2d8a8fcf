package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	appName = "gocontour"
	// fileName is the config file inside the user config directory
	fileName = "config.yaml"
	// localFileName is picked up from the working directory, so a project
	// can carry its own contour settings next to its models
	localFileName = ".gocontour.yaml"
)

// Load builds the effective configuration. Values are layered: built-in
// defaults, then the config file, then every flag the user set on fs. The
// file is the one named by --config, otherwise the first of
// ./.gocontour.yaml and UserConfigFile() that exists. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	if path := resolveConfigFile(fs); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func resolveConfigFile(fs *pflag.FlagSet) string {
	if explicit := ConfigPath(fs); explicit != "" {
		return explicit
	}
	return findConfigFile()
}

// findConfigFile returns the first config file found, or "" when there is
// none and the defaults apply.
func findConfigFile() string {
	for _, path := range []string{localFileName, UserConfigFile()} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the gocontour directory below the platform's user
// config directory ($XDG_CONFIG_HOME or ~/.config on Linux).
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		// no home directory; fall back to the working directory
		base = "."
	}
	return filepath.Join(base, appName)
}

// UserConfigFile returns the path Save writes to
func UserConfigFile() string {
	return filepath.Join(ConfigDir(), fileName)
}

// loadFromFile overlays the keys present in the YAML file onto cfg. Unknown
// keys are rejected so that a misspelled setting does not go unnoticed. An
// empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
