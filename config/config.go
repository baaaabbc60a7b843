// Package config loads the optional sysfetch configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"sysfetch/sysinfo"
)

// Config represents the main application configuration
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Network NetworkConfig `yaml:"network"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig holds the default display toggles
type DisplayConfig struct {
	Logo    bool `yaml:"logo"`
	Color   bool `yaml:"color"`
	Network bool `yaml:"network"`
	Compact bool `yaml:"compact"`
}

// NetworkConfig holds the public address lookup settings
type NetworkConfig struct {
	PublicIP        bool          `yaml:"public_ip"`
	PublicIPURL     string        `yaml:"public_ip_url"`
	PublicIPTimeout time.Duration `yaml:"public_ip_timeout"`
}

// LogConfig holds diagnostic logging settings. An empty level disables
// logging unless --debug is given.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Logo: true, Color: true, Network: true},
		Network: NetworkConfig{
			PublicIP:        true,
			PublicIPURL:     sysinfo.DefaultPublicIPURL,
			PublicIPTimeout: sysinfo.DefaultPublicIPTimeout,
		},
		Log: LogConfig{Format: "console"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sysfetch/config.yaml, falling back to
// ~/.config/sysfetch/config.yaml. Empty if neither base is known.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sysfetch", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "sysfetch", "config.yaml")
	}
	return ""
}

// Load reads the YAML file at path over the defaults. When optional is true
// a missing file yields the defaults instead of an error.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	if c.Network.PublicIPTimeout <= 0 {
		return fmt.Errorf("public_ip_timeout must be positive, got %s", c.Network.PublicIPTimeout)
	}
	return nil
}
