// SPDX-License-Identifier: MIT
// Package: polymap/world

package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/planar"
	"github.com/katalvlaran/polymap/relax"
)

// ErrInvalidConfig indicates a Config that cannot produce a map.
var ErrInvalidConfig = errors.New("world: invalid config")

// ErrUnknownPreset indicates a preset name ParsePreset does not know.
var ErrUnknownPreset = errors.New("world: unknown preset")

// Config describes one map.
type Config struct {
	// Sites is the number of Voronoi cells.
	Sites int
	// Territories is the number of territories to seed.
	Territories int
	// Bounds is the rectangle the cells cover.
	Bounds geom.Rect
	// Seed drives every random choice of the pipeline.
	Seed int64
	// RelaxIterations is the number of Lloyd steps; zero keeps raw points.
	RelaxIterations int
	// Epsilon is the vertex snapping tolerance of the planar graph.
	Epsilon float64
	// MaxTerritorySize, when positive, switches from round-robin filling to
	// sequential generation with at most this many sites per territory.
	MaxTerritorySize int
}

// Preset names a canned map size.
type Preset int

// Map sizes. Each preset seeds DefaultTerritories territories.
const (
	PresetSmall Preset = iota
	PresetMedium
	PresetLarge
)

// DefaultTerritories is the territory count used by presets.
const DefaultTerritories = 8

var presetNames = map[Preset]string{
	PresetSmall:  "small",
	PresetMedium: "medium",
	PresetLarge:  "large",
}

// String returns the lower-case preset name.
func (p Preset) String() string {
	if s, ok := presetNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}

// ParsePreset maps "small", "medium" or "large" (any case) to a Preset.
func ParsePreset(s string) (Preset, error) {
	for p, name := range presetNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// Config returns the preset's configuration with default seed, relaxation
// and tolerance.
func (p Preset) Config() Config {
	cfg := Config{
		Territories:     DefaultTerritories,
		Seed:            relax.DefaultSeed,
		RelaxIterations: relax.DefaultIterations,
		Epsilon:         planar.DefaultEpsilon,
	}
	switch p {
	case PresetSmall:
		cfg.Sites, cfg.Bounds = 400, geom.R(0, 0, 1800, 1800)
	case PresetLarge:
		cfg.Sites, cfg.Bounds = 1600, geom.R(0, 0, 4800, 2400)
	default:
		cfg.Sites, cfg.Bounds = 800, geom.R(0, 0, 2400, 2400)
	}
	return cfg
}

// DefaultConfig returns the medium preset.
func DefaultConfig() Config { return PresetMedium.Config() }

// Validate reports the first out-of-range field as ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Sites <= 0:
		return fmt.Errorf("%w: sites must be positive, got %d", ErrInvalidConfig, c.Sites)
	case c.Territories <= 0:
		return fmt.Errorf("%w: territories must be positive, got %d", ErrInvalidConfig, c.Territories)
	case c.Territories > c.Sites:
		return fmt.Errorf("%w: %d territories exceed %d sites", ErrInvalidConfig, c.Territories, c.Sites)
	case c.RelaxIterations < 0:
		return fmt.Errorf("%w: relax iterations must not be negative, got %d", ErrInvalidConfig, c.RelaxIterations)
	case !(c.Epsilon > 0):
		return fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidConfig, c.Epsilon)
	case c.MaxTerritorySize < 0:
		return fmt.Errorf("%w: max territory size must not be negative, got %d", ErrInvalidConfig, c.MaxTerritorySize)
	}
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: bounds: %w", ErrInvalidConfig, err)
	}
	return nil
}
