// Package config provides configuration loading and management for smoothaha.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Interpolation parameters
	Interpolation struct {
		// AngularResolution is the number of samples around the circumference
		AngularResolution int `yaml:"angularResolution"`

		// RadialResolution is the number of samples along the radius
		RadialResolution int `yaml:"radialResolution"`
	} `yaml:"interpolation"`

	// Render parameters
	Render struct {
		// ImageSize is the width and height of the output image in pixels
		ImageSize int `yaml:"imageSize"`

		// DrawBounds toggles the segment boundary overlay
		DrawBounds bool `yaml:"drawBounds"`

		// AnnotateValues toggles per-segment value labels
		AnnotateValues bool `yaml:"annotateValues"`
	} `yaml:"render"`

	// Output parameters
	Output struct {
		// Directory is where rendered plots are written
		Directory string `yaml:"directory"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default interpolation parameters
	cfg.Interpolation.AngularResolution = 768
	cfg.Interpolation.RadialResolution = 100

	// Set default render parameters
	cfg.Render.ImageSize = 800
	cfg.Render.DrawBounds = true
	cfg.Render.AnnotateValues = true

	// Set default output parameters
	cfg.Output.Directory = "plots"
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
