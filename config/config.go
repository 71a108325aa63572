/*
Package config loads import profiles, the description of the world a set
of rasters is imported into.
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tilecraft/geomap/terrain"
	"github.com/tilecraft/geomap/world"
)

// World sizes accepted by a profile.
const (
	MinWorldSize = 64
	MaxWorldSize = 4096
)

// Config captures the tunable parameters of an import run.
type Config struct {
	World    WorldConfig `yaml:"world"`
	Rotation string      `yaml:"rotation"` // "counter-clockwise" or "clockwise"
	Seed     uint32      `yaml:"seed"`     // random seed shared by every pass
	Database string      `yaml:"database"` // raster catalog location
}

// WorldConfig describes the destination grid.
type WorldConfig struct {
	SizeX     uint   `yaml:"sizeX"`
	SizeY     uint   `yaml:"sizeY"`
	Landscape string `yaml:"landscape"`
}

// Load reads a profile from a YAML file if provided. An empty path returns
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Default returns the profile used when no file is given: a temperate
// 256x256 world with the default orientation.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			SizeX:     256,
			SizeY:     256,
			Landscape: "temperate",
		},
		Rotation: "counter-clockwise",
		Seed:     1337,
		Database: "geomap.db",
	}
}

// Validate checks the profile for values the import cannot work with.
func (c *Config) Validate() error {
	for _, s := range []uint{c.World.SizeX, c.World.SizeY} {
		if s < MinWorldSize || s > MaxWorldSize || s&(s-1) != 0 {
			return fmt.Errorf("world size %d must be a power of two between %d and %d",
				s, MinWorldSize, MaxWorldSize)
		}
	}
	if _, err := world.ParseLandscape(c.World.Landscape); err != nil {
		return err
	}
	if _, err := terrain.ParseRotation(c.Rotation); err != nil {
		return err
	}
	if c.Database == "" {
		return errors.New("database path must be set")
	}
	return nil
}

// Landscape returns the parsed landscape. Only meaningful after a
// successful Validate.
func (c *Config) Landscape() world.Landscape {
	l, _ := world.ParseLandscape(c.World.Landscape)
	return l
}

// ParsedRotation returns the parsed rotation. Only meaningful after a
// successful Validate.
func (c *Config) ParsedRotation() terrain.Rotation {
	r, _ := terrain.ParseRotation(c.Rotation)
	return r
}
