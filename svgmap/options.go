// SPDX-License-Identifier: MIT
// Package: polymap/svgmap

package svgmap

import "math"

// Option customises Render.
type Option func(*config)

type config struct {
	scale       float64
	borders     bool
	borderWidth float64
	labels      bool
	sites       bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		scale:       1,
		borders:     true,
		borderWidth: 4,
		labels:      true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithScale sets pixels per world unit. Panics unless s is finite and positive.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("svgmap: WithScale(s<=0)")
	}
	return func(c *config) { c.scale = s }
}

// WithBorders toggles the territory border layer.
func WithBorders(on bool) Option {
	return func(c *config) { c.borders = on }
}

// WithBorderWidth sets the border band width in world units. Zero draws
// hairline outlines. Panics on negative w.
func WithBorderWidth(w float64) Option {
	if w < 0 {
		panic("svgmap: WithBorderWidth(w<0)")
	}
	return func(c *config) { c.borderWidth = w }
}

// WithLabels toggles territory names.
func WithLabels(on bool) Option {
	return func(c *config) { c.labels = on }
}

// WithSites toggles the site centre dots.
func WithSites(on bool) Option {
	return func(c *config) { c.sites = on }
}
