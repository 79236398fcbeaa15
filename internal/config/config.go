// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/woozymasta/clustermap/internal/geo"
	"github.com/woozymasta/clustermap/internal/style"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Normalize.
const (
	DefaultTiles       = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	DefaultMaxZoom     = 18
	DefaultPadding     = 20
	DefaultDataDir     = "data"
)

// Config represents the root configuration file structure.
type Config struct {
	Tiles       string  `yaml:"tiles,omitempty" json:"tiles"`
	Attribution string  `yaml:"attribution,omitempty" json:"attribution"`
	Active      string  `yaml:"active,omitempty" json:"-"`
	DataDir     string  `yaml:"data_dir,omitempty" json:"-"`
	Layers      []Layer `yaml:"layers" json:"-"`
	MaxZoom     int     `yaml:"max_zoom,omitempty" json:"max_zoom"`
	Padding     *int    `yaml:"padding,omitempty" json:"padding"` // nil means DefaultPadding
}

// Layer is one overlay dataset.
type Layer struct {
	// UTM is the source projection; nil means the source is already WGS84.
	UTM    *geo.UTM `yaml:"utm,omitempty" json:"utm,omitempty"`
	Name   string   `yaml:"name" json:"name"`
	Source string   `yaml:"source" json:"-"`
}

// Kind returns the layer kind parsed from its name.
func (l Layer) Kind() (style.Kind, error) {
	return style.ParseKind(l.Name)
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes, normalizes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if c.Tiles == "" {
		c.Tiles = DefaultTiles
	}
	if c.Attribution == "" {
		c.Attribution = DefaultAttribution
	}
	if c.MaxZoom <= 0 {
		c.MaxZoom = DefaultMaxZoom
	}
	if c.Padding == nil {
		padding := DefaultPadding
		c.Padding = &padding
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Active == "" {
		c.Active = string(style.Clusters)
	}
}

// Validate checks layer names, projections and the active layer.
func (c *Config) Validate() error {
	if _, err := style.ParseKind(c.Active); err != nil {
		return fmt.Errorf("active: %w", err)
	}

	if c.Padding != nil && *c.Padding < 0 {
		return fmt.Errorf("padding: %d must not be negative", *c.Padding)
	}

	seen := make(map[string]bool, len(c.Layers))
	for i, l := range c.Layers {
		if _, err := l.Kind(); err != nil {
			return fmt.Errorf("layers[%d]: %w", i, err)
		}
		if seen[l.Name] {
			return fmt.Errorf("layers[%d]: duplicate layer %q", i, l.Name)
		}
		seen[l.Name] = true

		if l.Source == "" {
			return fmt.Errorf("layers[%d]: source is required", i)
		}
		if l.UTM != nil {
			if err := l.UTM.Validate(); err != nil {
				return fmt.Errorf("layers[%d]: %w", i, err)
			}
		}
	}

	return nil
}

// PaddingPx returns the fit padding in pixels.
func (c *Config) PaddingPx() int {
	if c.Padding == nil {
		return DefaultPadding
	}
	return *c.Padding
}

// Layer returns the layer entry by name.
func (c *Config) Layer(name string) (Layer, bool) {
	for _, l := range c.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// CachePath returns where the loader stores the WGS84 copy of a layer.
func (c *Config) CachePath(l Layer) string {
	return filepath.Join(c.DataDir, l.Name+".geojson")
}
