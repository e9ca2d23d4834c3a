// SPDX-License-Identifier: MIT
// Package: polymap/relax

package relax

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/voronoi"
)

// Generate returns count points spread over rect.
//
// Behaviour:
//  1. Draw count points uniformly: x = min.x + u·dx, y = min.y + u·dy.
//  2. Repeat the configured number of times: build the diagram of the
//     current points and move each point to the mean of its cell's edge
//     endpoints. Exact duplicates share one cell and move together; a
//     point whose cell has no edges stays where it is.
//
// count <= 0 returns an empty slice and no error. Diagram errors are wrapped
// with the failing iteration.
func Generate(count int, rect geom.Rect, opts ...Option) ([]geom.Point, error) {
	if count <= 0 {
		return []geom.Point{}, nil
	}
	if err := rect.Validate(); err != nil {
		return nil, fmt.Errorf("relax: %w", err)
	}
	cfg := newConfig(opts...)

	points := make([]geom.Point, count)
	for i := range points {
		points[i] = geom.Point{
			X: cfg.rng.Float64()*rect.Width() + rect.Min.X,
			Y: cfg.rng.Float64()*rect.Height() + rect.Min.Y,
		}
	}

	for it := 0; it < cfg.iterations; it++ {
		next, err := Step(points, rect, cfg.diagrammer)
		if err != nil {
			return nil, fmt.Errorf("relax: iteration %d: %w", it, err)
		}
		points = next
	}
	cfg.log.Debug("relaxed points",
		zap.Int("count", count),
		zap.Int("iterations", cfg.iterations))

	return points, nil
}

// Step performs a single Lloyd iteration and returns the moved points in
// input order. The input slice is not modified.
func Step(points []geom.Point, rect geom.Rect, d voronoi.Diagrammer) ([]geom.Point, error) {
	sites, err := d.Diagram(points, rect)
	if err != nil {
		return nil, err
	}
	moved := make(map[geom.Point]geom.Point, len(sites))
	for _, s := range sites {
		if c, ok := EdgeMean(s); ok {
			moved[s.Centre] = c
		}
	}

	out := make([]geom.Point, len(points))
	for i, p := range points {
		if c, ok := moved[p]; ok {
			out[i] = c
			continue
		}
		out[i] = p
	}

	return out, nil
}

// EdgeMean averages both endpoints of every edge of s.
// It reports ok=false for a site without edges.
func EdgeMean(s voronoi.RawSite) (geom.Point, bool) {
	if len(s.Edges) == 0 {
		return geom.Point{}, false
	}
	var sum geom.Point
	for _, e := range s.Edges {
		sum = sum.Add(e.A).Add(e.B)
	}

	return sum.Divf(float64(2 * len(s.Edges))), true
}
