// SPDX-License-Identifier: MIT
// Package: polymap/planar

package planar

import "go.uber.org/zap"

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	eps float64
	log *zap.Logger
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{eps: DefaultEpsilon, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithEpsilon sets the vertex snapping tolerance. Panics if eps <= 0.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) {
		panic("planar: WithEpsilon(eps<=0)")
	}
	return func(c *buildConfig) { c.eps = eps }
}

// WithLogger attaches a logger for build progress. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *buildConfig) {
		if l != nil {
			c.log = l
		}
	}
}
