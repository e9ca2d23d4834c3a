// SPDX-License-Identifier: MIT
// Package: polymap/territory
//
// Option constructors validate and panic on meaningless values;
// atlas operations never panic.

package territory

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is used.
const DefaultSeed int64 = 0xC0FFEE

// Colour components used for territories created by Fill.
const (
	FillSaturation = 0.6
	FillValue      = 0.8
	FillAlpha      = 0.5
)

// Colour components used for territories created by Generate.
const (
	GenerateSaturation = 0.8
	GenerateValue      = 0.7
	GenerateAlpha      = 0.8
)

// Option customises an Atlas.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	nameFn func(id int) string
	log    *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		nameFn: DefaultName,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// DefaultName names territory id "Generated State <id>".
func DefaultName(id int) string {
	return fmt.Sprintf("Generated State %d", id)
}

// WithSeed seeds a private generator.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing generator, e.g. the one used for relaxation.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("territory: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithNameFn sets the generator of territory names. Panics on nil.
func WithNameFn(fn func(id int) string) Option {
	if fn == nil {
		panic("territory: WithNameFn(nil)")
	}
	return func(c *config) {
		c.nameFn = fn
	}
}

// WithLogger attaches a logger for growth progress. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
