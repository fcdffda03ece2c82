// Package config loads the sticker-dream YAML configuration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Printer is the preferred destination; empty falls back to the CUPS
	// default (or the first listed printer).
	Printer string `yaml:"printer,omitempty"`

	// PollIntervalMS is the keepalive tick interval in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`

	// KeepalivePrinters limits the keepalive loop to these names.
	// Empty means all printers.
	KeepalivePrinters []string `yaml:"keepalive_printers,omitempty"`

	// OutputDir is where generated images are persisted with --keep.
	OutputDir string `yaml:"output_dir,omitempty"`

	Image Image `yaml:"image"`
}

// Image configures the generation API request.
type Image struct {
	Model string `yaml:"model"`
	Size  string `yaml:"size"`
}

var defaultConfig = Config{
	PollIntervalMS: 1000,
	OutputDir:      "stickers",
	Image: Image{
		Model: "gpt-image-1",
		Size:  "1024x1024",
	},
}

// Load reads the config from path, or from the first existing default
// location when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		candidates := []string{
			"/etc/sticker-dream/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/sticker-dream/config.yaml"),
			"config.yaml",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}

	cfg := defaultConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	// Backfill zero values
	if cfg.PollIntervalMS <= 0 {
		cfg.PollIntervalMS = defaultConfig.PollIntervalMS
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultConfig.OutputDir
	}
	if cfg.Image.Model == "" {
		cfg.Image.Model = defaultConfig.Image.Model
	}
	if cfg.Image.Size == "" {
		cfg.Image.Size = defaultConfig.Image.Size
	}

	return &cfg, nil
}

// PollInterval returns the keepalive interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
