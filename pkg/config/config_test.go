package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies the built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interpolation.AngularResolution != 768 {
		t.Errorf("Default angular resolution: got %d, want 768", cfg.Interpolation.AngularResolution)
	}
	if cfg.Interpolation.RadialResolution != 100 {
		t.Errorf("Default radial resolution: got %d, want 100", cfg.Interpolation.RadialResolution)
	}
	if cfg.Render.ImageSize != 800 {
		t.Errorf("Default image size: got %d, want 800", cfg.Render.ImageSize)
	}
	if !cfg.Render.DrawBounds || !cfg.Render.AnnotateValues {
		t.Error("Bounds and annotations should default to enabled")
	}
	if cfg.Output.Directory == "" {
		t.Error("Default output directory should not be empty")
	}
}

// TestLoadConfigMissingFile verifies the defaults fallback
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig for a missing file should return defaults, got: %v", err)
	}
	if cfg.Interpolation.AngularResolution != 768 {
		t.Errorf("Expected default config, got angular resolution %d", cfg.Interpolation.AngularResolution)
	}
}

// TestSaveLoadRoundTrip verifies that a saved configuration loads back identically
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "smoothaha.yaml")

	cfg := DefaultConfig()
	cfg.Interpolation.AngularResolution = 384
	cfg.Interpolation.RadialResolution = 50
	cfg.Render.ImageSize = 400
	cfg.Render.DrawBounds = false
	cfg.Output.Directory = "out"
	cfg.Output.Verbose = false

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("Round trip mismatch:\nsaved:  %+v\nloaded: %+v", cfg, loaded)
	}
}

// TestCreateDefaultConfigFile verifies the convenience initializer
func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoothaha.yaml")

	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Config file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Config file is empty")
	}
}
