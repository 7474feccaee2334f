// Package config loads the optional YAML configuration file. Everything has
// a sensible default, so running without any file at all is the normal case.
//
// The stillness threshold and the restore chord are deliberately not
// configurable; they are compile-time constants in the tracking and hotkey
// packages.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Config captures the user-adjustable knobs.
type Config struct {
	Logging        LoggingConfig `yaml:"logging"`
	Tray           TrayConfig    `yaml:"tray"`
	SingleInstance bool          `yaml:"single_instance"`
}

// LoggingConfig controls log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TrayConfig toggles the system tray icon.
type TrayConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Logging:        LoggingConfig{Level: "info", Format: "console"},
		Tray:           TrayConfig{Enabled: true},
		SingleInstance: true,
	}
}

// Load reads the config for appName from the user config directory. A missing
// file yields the defaults.
func Load(appName string) (Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Default(), fmt.Errorf("resolve user config dir: %w", err)
	}
	return LoadFile(filepath.Join(configDir, appName, fileName))
}

// LoadFile reads the config from an explicit path, overlaying the file's
// values on the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	return cfg, nil
}
