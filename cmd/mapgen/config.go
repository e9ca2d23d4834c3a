// SPDX-License-Identifier: MIT
// Package: polymap/cmd/mapgen

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/world"
)

// Environment variables read before flags. Flags win.
const (
	envPreset      = "POLYMAP_PRESET"
	envSites       = "POLYMAP_SITES"
	envTerritories = "POLYMAP_TERRITORIES"
	envWidth       = "POLYMAP_WIDTH"
	envHeight      = "POLYMAP_HEIGHT"
	envSeeds       = "POLYMAP_SEEDS"
	envRelax       = "POLYMAP_RELAX"
	envMaxSize     = "POLYMAP_MAX_SIZE"
	envOut         = "POLYMAP_OUT"
	envScale       = "POLYMAP_SCALE"
	envDebug       = "POLYMAP_DEBUG"
)

// errBadEnv reports a POLYMAP_* variable that does not parse.
var errBadEnv = errors.New("mapgen: malformed environment variable")

// settings is the parsed command line.
type settings struct {
	world   world.Config
	seeds   []int64
	out     string
	scale   float64
	borders bool
	labels  bool
	debug   bool
}

// parseArgs merges environment defaults with command-line flags and
// validates the resulting world configuration.
func parseArgs(args []string, getenv func(string) string, stderr io.Writer) (settings, error) {
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	env := &envReader{getenv: getenv}

	preset := fs.String("preset", env.str(envPreset, world.PresetMedium.String()), "map size: small, medium or large")
	sites := fs.Int("sites", env.integer(envSites, 0), "number of cells (0 = preset)")
	territories := fs.Int("territories", env.integer(envTerritories, 0), "number of territories (0 = preset)")
	width := fs.Float64("width", env.float(envWidth, 0), "map width (0 = preset)")
	height := fs.Float64("height", env.float(envHeight, 0), "map height (0 = preset)")
	seeds := fs.String("seeds", env.str(envSeeds, ""), "comma separated seeds, one map per seed")
	relaxN := fs.Int("relax", env.integer(envRelax, -1), "Lloyd relaxation steps (-1 = preset)")
	maxSize := fs.Int("max-size", env.integer(envMaxSize, 0), "cap territories at this many cells (0 = fill the map)")
	out := fs.String("out", env.str(envOut, "."), "output directory")
	scale := fs.Float64("scale", env.float(envScale, 0.5), "SVG pixels per map unit")
	borders := fs.Bool("borders", true, "draw territory borders")
	labels := fs.Bool("labels", true, "draw territory names")
	debug := fs.Bool("debug", env.boolean(envDebug, false), "development logging")

	if env.err != nil {
		return settings{}, env.err
	}
	if err := fs.Parse(args); err != nil {
		return settings{}, err
	}

	p, err := world.ParsePreset(*preset)
	if err != nil {
		return settings{}, err
	}
	cfg := p.Config()
	if *sites != 0 {
		cfg.Sites = *sites
	}
	if *territories != 0 {
		cfg.Territories = *territories
	}
	if *width != 0 || *height != 0 {
		w, h := cfg.Bounds.Width(), cfg.Bounds.Height()
		if *width != 0 {
			w = *width
		}
		if *height != 0 {
			h = *height
		}
		cfg.Bounds = geom.R(0, 0, w, h)
	}
	if *relaxN >= 0 {
		cfg.RelaxIterations = *relaxN
	}
	cfg.MaxTerritorySize = *maxSize
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}
	if !(*scale > 0) {
		return settings{}, fmt.Errorf("mapgen: scale must be positive, got %v", *scale)
	}

	s := settings{
		world:   cfg,
		out:     *out,
		scale:   *scale,
		borders: *borders,
		labels:  *labels,
		debug:   *debug,
	}
	if s.seeds, err = parseSeeds(*seeds, cfg.Seed); err != nil {
		return settings{}, err
	}

	return s, nil
}

// parseSeeds splits a comma separated list; an empty list yields def.
func parseSeeds(list string, def int64) ([]int64, error) {
	if strings.TrimSpace(list) == "" {
		return []int64{def}, nil
	}
	var out []int64
	seen := make(map[int64]bool)
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("mapgen: bad seed %q: %w", f, err)
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []int64{def}, nil
	}
	return out, nil
}

// envReader reads flag defaults from the environment. An empty variable
// keeps the default; the first malformed one is kept in err.
type envReader struct {
	getenv func(string) string
	err    error
}

func (r *envReader) fail(key, v string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s=%q: %v", errBadEnv, key, v, err)
	}
}

func (r *envReader) str(key, def string) string {
	if v := r.getenv(key); v != "" {
		return v
	}
	return def
}

func (r *envReader) integer(key string, def int) int {
	v := r.getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *envReader) float(key string, def float64) float64 {
	v := r.getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return f
}

func (r *envReader) boolean(key string, def bool) bool {
	v := r.getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return b
}
