// SPDX-License-Identifier: MIT
// Package: polymap/relax
//
// Option constructors validate and panic on meaningless values;
// Generate itself never panics.

package relax

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/polymap/voronoi"
)

// DefaultIterations is the number of Lloyd steps applied when no
// WithIterations option is given.
const DefaultIterations = 100

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is used.
const DefaultSeed int64 = 0xDEADBEEF

// Option customises Generate.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	iterations int
	diagrammer voronoi.Diagrammer
	log        *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		iterations: DefaultIterations,
		diagrammer: voronoi.Fortune{Closed: true},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithSeed seeds a private generator.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing generator; its state advances as points are drawn.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("relax: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithIterations sets the number of Lloyd steps. Zero skips relaxation.
// Panics on negative n.
func WithIterations(n int) Option {
	if n < 0 {
		panic("relax: WithIterations(n<0)")
	}
	return func(c *config) {
		c.iterations = n
	}
}

// WithDiagrammer replaces the Voronoi implementation. Panics on nil.
func WithDiagrammer(d voronoi.Diagrammer) Option {
	if d == nil {
		panic("relax: WithDiagrammer(nil)")
	}
	return func(c *config) {
		c.diagrammer = d
	}
}

// WithLogger attaches a logger for iteration progress. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
