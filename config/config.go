// Package config provides configuration parsing for vitals.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the vitals configuration. Every field has a default
// that reproduces the reference dashboard behavior, so running without a
// config file needs no setup at all.
type Config struct {
	// Monitor holds sampling loop settings.
	Monitor MonitorConfig `yaml:"monitor"`

	// Display holds rendering settings.
	Display DisplayConfig `yaml:"display"`

	// Logging holds structured logging settings.
	Logging LoggingConfig `yaml:"logging"`
}

// MonitorConfig holds sampling loop settings.
type MonitorConfig struct {
	// Interval is a duration string (e.g. "250ms") between samples.
	// The renderer refreshes at the same cadence.
	Interval string `yaml:"interval"`
	// HistorySize is the number of samples kept per metric for sparklines.
	HistorySize int `yaml:"history_size"`
}

// DisplayConfig holds rendering settings.
type DisplayConfig struct {
	// BarWidth is the character width of the gauge bars.
	BarWidth int `yaml:"bar_width"`
	// ThresholdWarn is the % above which bars turn yellow.
	ThresholdWarn float64 `yaml:"threshold_warn"`
	// ThresholdCrit is the % above which bars turn red.
	ThresholdCrit float64 `yaml:"threshold_crit"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// File is the path for log output. Empty means logging is discarded
	// unless verbose mode sends it to stderr.
	File string `yaml:"file"`
	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns a Config populated with the reference defaults:
// 4 Hz sampling, 50-sample history, 30-cell bars, warn/crit at 80/90.
func DefaultConfig() *Config {
	return &Config{
		Monitor: MonitorConfig{
			Interval:    "250ms",
			HistorySize: 50,
		},
		Display: DisplayConfig{
			BarWidth:      30,
			ThresholdWarn: 80,
			ThresholdCrit: 90,
		},
		Logging: LoggingConfig{
			File:    "",
			Verbose: false,
		},
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/vitals/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vitals", "config.yaml")
}

// Load loads configuration from a YAML file, merging with defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes configuration to a YAML file, creating parent directories.
func Save(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the configuration for required fields and logical consistency.
func (c *Config) Validate() error {
	if _, err := c.TickInterval(); err != nil {
		return fmt.Errorf("monitor.interval: %w", err)
	}
	if c.Monitor.HistorySize <= 0 {
		return fmt.Errorf("monitor.history_size must be positive, got %d", c.Monitor.HistorySize)
	}
	if c.Display.BarWidth <= 0 {
		return fmt.Errorf("display.bar_width must be positive, got %d", c.Display.BarWidth)
	}
	if c.Display.ThresholdWarn <= 0 || c.Display.ThresholdWarn > 100 {
		return fmt.Errorf("display.threshold_warn must be in (0, 100], got %g", c.Display.ThresholdWarn)
	}
	if c.Display.ThresholdCrit <= c.Display.ThresholdWarn || c.Display.ThresholdCrit > 100 {
		return fmt.Errorf("display.threshold_crit must be in (threshold_warn, 100], got %g", c.Display.ThresholdCrit)
	}
	return nil
}

// TickInterval parses the monitor interval duration string.
func (c *Config) TickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Monitor.Interval)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", c.Monitor.Interval)
	}
	return d, nil
}
