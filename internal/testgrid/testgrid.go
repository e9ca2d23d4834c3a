// SPDX-License-Identifier: MIT
// Package: polymap/internal/testgrid

// Package testgrid builds raw Voronoi output for regular square grids, used
// as hand-checkable fixtures by the planar, territory and svgmap tests.
package testgrid

import (
	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/voronoi"
)

// Squares returns cols×rows unit squares as raw Voronoi sites. Segment order
// and orientation are scrambled per cell so consumers have to do their own
// ordering. With closed=false the segments on the outer rectangle are
// omitted, the way an open diagram leaves border cells. Site index is
// row*cols + col and the centre of a cell is (col+0.5, row+0.5).
func Squares(cols, rows int, closed bool) []voronoi.RawSite {
	out := make([]voronoi.RawSite, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := float64(c), float64(r)
			var segs []voronoi.Segment
			add := func(onBorder bool, a, b geom.Point) {
				if onBorder && !closed {
					return
				}
				segs = append(segs, voronoi.Segment{A: a, B: b})
			}
			add(r == 0, geom.Pt(x, y), geom.Pt(x+1, y))
			add(c == cols-1, geom.Pt(x+1, y), geom.Pt(x+1, y+1))
			add(r == rows-1, geom.Pt(x, y+1), geom.Pt(x+1, y+1))
			add(c == 0, geom.Pt(x, y), geom.Pt(x, y+1))

			if n := len(segs); n > 0 {
				shift := (r + c) % n
				segs = append(segs[shift:], segs[:shift]...)
			}
			for i := range segs {
				if (i+r)%2 == 1 {
					segs[i].A, segs[i].B = segs[i].B, segs[i].A
				}
			}
			out = append(out, voronoi.RawSite{Centre: geom.Pt(x+0.5, y+0.5), Edges: segs})
		}
	}
	return out
}

// ID returns the site index of the cell at (col, row).
func ID(cols, col, row int) int { return row*cols + col }
