// Package config handles configuration loading and conversion defaults.
package config

import (
	"os"

	"github.com/lotworks/shp2geojson/internal/geo"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration file structure. Every value is
// a default that command line flags may override.
type Config struct {
	CRS     string `yaml:"crs,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
	OutDir  string `yaml:"out_dir,omitempty"`
	Minify  bool   `yaml:"minify,omitempty"`
}

// Load reads and parses the YAML configuration file from the
// specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills in anything neither the file nor the flags set.
func (c *Config) ApplyDefaults() {
	if c.CRS == "" {
		c.CRS = geo.DefaultCRS
	}
	if c.Pattern == "" {
		c.Pattern = "*.shp"
	}
}
