// Package config loads the optional YAML settings shared by the baguette
// front ends. Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxScale bounds the integer upscale applied on export and display.
const MaxScale = 8

type Config struct {
	// Scale is the integer upscale factor for PNG export and the viewer window.
	Scale int `yaml:"scale"`
	// Title is the viewer window title.
	Title string `yaml:"title"`
	// Strict makes malformed color components fatal.
	Strict bool `yaml:"strict"`
	// PaintBackground allows pixels in the current background color.
	PaintBackground bool `yaml:"paint_background"`
	// OutputDir, if set, is where PNG files are written instead of next to the recipe.
	OutputDir string `yaml:"output_dir"`
}

func Default() Config {
	return Config{Scale: 1, Title: "Pixel Drawing"}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Scale < 1 || c.Scale > MaxScale {
		return fmt.Errorf("scale %d out of range 1-%d", c.Scale, MaxScale)
	}
	return nil
}
