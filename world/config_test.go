package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/world"
)

func TestConfig_Validate(t *testing.T) {
	ok := world.DefaultConfig()
	require.NoError(t, ok.Validate())

	tests := []struct {
		name   string
		mutate func(*world.Config)
		extra  error
	}{
		{"no sites", func(c *world.Config) { c.Sites = 0 }, nil},
		{"no territories", func(c *world.Config) { c.Territories = 0 }, nil},
		{"more territories than sites", func(c *world.Config) { c.Sites, c.Territories = 3, 4 }, nil},
		{"negative relaxation", func(c *world.Config) { c.RelaxIterations = -1 }, nil},
		{"zero epsilon", func(c *world.Config) { c.Epsilon = 0 }, nil},
		{"negative size cap", func(c *world.Config) { c.MaxTerritorySize = -2 }, nil},
		{"flat bounds", func(c *world.Config) { c.Bounds = geom.R(0, 0, 10, 0) }, geom.ErrEmptyRect},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := world.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, world.ErrInvalidConfig)
			if tc.extra != nil {
				assert.ErrorIs(t, err, tc.extra)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in    string
		want  world.Preset
		sites int
		dx    float64
	}{
		{"small", world.PresetSmall, 400, 1800},
		{"Medium", world.PresetMedium, 800, 2400},
		{"LARGE", world.PresetLarge, 1600, 4800},
	}
	for _, tc := range tests {
		p, err := world.ParsePreset(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, p)
		cfg := p.Config()
		assert.Equal(t, tc.sites, cfg.Sites)
		assert.Equal(t, tc.dx, cfg.Bounds.Width())
		assert.Equal(t, world.DefaultTerritories, cfg.Territories)
		assert.NoError(t, cfg.Validate())
	}

	_, err := world.ParsePreset("huge")
	assert.ErrorIs(t, err, world.ErrUnknownPreset)
	assert.Equal(t, "medium", world.PresetMedium.String())
	assert.Equal(t, "Preset(9)", world.Preset(9).String())
	assert.Equal(t, world.PresetMedium.Config(), world.DefaultConfig())
}
