// SPDX-License-Identifier: MIT
// Package: polymap/world

package world

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/planar"
	"github.com/katalvlaran/polymap/relax"
	"github.com/katalvlaran/polymap/territory"
)

// World is a generated map: its planar graph and the territories over it.
type World struct {
	cfg   Config
	graph *planar.Graph
	atlas *territory.Atlas
}

// New validates cfg and runs the pipeline.
//
// Steps:
//  1. relax.Generate draws cfg.Sites points and relaxes them.
//  2. The diagrammer (open Fortune by default) cuts cfg.Bounds into cells.
//  3. planar.Build links the cells with cfg.Epsilon.
//  4. The atlas fills cfg.Territories territories, or generates them capped
//     at cfg.MaxTerritorySize when that is positive.
//
// Steps 1 and 4 share one generator seeded with cfg.Seed.
func New(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	log := o.log.With(zap.Int64("seed", cfg.Seed))
	rng := rand.New(rand.NewSource(cfg.Seed))

	points, err := relax.Generate(cfg.Sites, cfg.Bounds,
		relax.WithRand(rng),
		relax.WithIterations(cfg.RelaxIterations),
		relax.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	raw, err := o.diagram.Diagram(points, cfg.Bounds)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	g, err := planar.Build(raw, planar.WithEpsilon(cfg.Epsilon), planar.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	atlasOpts := []territory.Option{territory.WithRand(rng), territory.WithLogger(log)}
	if o.nameFn != nil {
		atlasOpts = append(atlasOpts, territory.WithNameFn(o.nameFn))
	}
	atlas, err := territory.NewAtlas(g, atlasOpts...)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if cfg.MaxTerritorySize > 0 {
		_, err = atlas.Generate(cfg.Territories, cfg.MaxTerritorySize)
	} else {
		_, err = atlas.Fill(cfg.Territories)
	}
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	log.Info("world generated",
		zap.Int("sites", g.SiteCount()),
		zap.Int("usable", len(g.Usable())),
		zap.Int("territories", len(atlas.IDs())),
		zap.Int("unclaimed", atlas.UnclaimedCount()))

	return &World{cfg: cfg, graph: g, atlas: atlas}, nil
}

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// Graph returns the planar graph.
func (w *World) Graph() *planar.Graph { return w.graph }

// Atlas returns the territory registry.
func (w *World) Atlas() *territory.Atlas { return w.atlas }

// Sites returns the graph's sites. Callers must treat them as read-only.
func (w *World) Sites() []planar.Site { return w.graph.Sites() }

// Territories returns the id → territory map.
func (w *World) Territories() map[int]*territory.Territory { return w.atlas.Territories() }

// Pick returns the site whose centre is nearest to p.
func (w *World) Pick(p geom.Point) (planar.SiteID, error) {
	return w.graph.Nearest(p)
}

// TerritoryAt returns the territory owning the site nearest to p, or nil.
func (w *World) TerritoryAt(p geom.Point) *territory.Territory {
	id, err := w.Pick(p)
	if err != nil {
		return nil
	}
	return w.atlas.Owner(id)
}
