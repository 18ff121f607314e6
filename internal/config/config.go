// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cashback-report/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Report contains report processing defaults
	Report ReportConfig `json:"report"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ReportConfig contains batch processing defaults
type ReportConfig struct {
	// DefaultPlatform is the platform assumed when none is given
	DefaultPlatform string `json:"default_platform"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-entry breakdown in CLI output
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Report: ReportConfig{
			DefaultPlatform: "7K",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
