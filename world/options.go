// SPDX-License-Identifier: MIT
// Package: polymap/world

package world

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/polymap/voronoi"
)

// Option customises New.
type Option func(*options)

type options struct {
	log     *zap.Logger
	nameFn  func(int) string
	diagram voronoi.Diagrammer
}

func newOptions(opts ...Option) options {
	o := options{
		log:     zap.NewNop(),
		diagram: voronoi.Fortune{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes pipeline progress to l. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithNameFn sets the territory name generator. Panics on nil.
func WithNameFn(fn func(id int) string) Option {
	if fn == nil {
		panic("world: WithNameFn(nil)")
	}
	return func(o *options) {
		o.nameFn = fn
	}
}

// WithDiagrammer replaces the diagram the planar graph is built from. The
// default is an open Fortune diagram, whose border gaps the graph patches.
// Panics on nil.
func WithDiagrammer(d voronoi.Diagrammer) Option {
	if d == nil {
		panic("world: WithDiagrammer(nil)")
	}
	return func(o *options) {
		o.diagram = d
	}
}
