// SPDX-License-Identifier: MIT
// Package: polymap/voronoi

package voronoi

import (
	"fmt"

	fortune "github.com/pzsz/voronoi"

	"github.com/katalvlaran/polymap/geom"
)

// Fortune computes diagrams with Steven Fortune's sweep line algorithm
// (github.com/pzsz/voronoi). The zero value produces open border cells.
type Fortune struct {
	// Closed adds rectangle border segments so every cell is a closed ring.
	Closed bool
}

// Diagram implements Diagrammer.
// Complexity: O(n log n) for the sweep plus O(E) to flatten the edges.
func (f Fortune) Diagram(points []geom.Point, rect geom.Rect) (sites []RawSite, err error) {
	if rect.Validate() != nil {
		return nil, ErrDegenerateRect
	}
	if len(points) == 0 {
		return nil, nil
	}

	vs := make([]fortune.Vertex, len(points))
	for i, p := range points {
		vs[i] = fortune.Vertex{X: p.X, Y: p.Y}
	}
	bbox := fortune.BBox{Xl: rect.Min.X, Xr: rect.Max.X, Yt: rect.Min.Y, Yb: rect.Max.Y}

	// The sweep panics on internal inconsistencies; report them as errors.
	defer func() {
		if r := recover(); r != nil {
			sites = nil
			err = fmt.Errorf("%w: %v", ErrDiagramFailed, r)
		}
	}()
	d := fortune.ComputeDiagram(vs, bbox, f.Closed)

	sites = make([]RawSite, 0, len(d.Cells))
	for _, c := range d.Cells {
		rs := RawSite{
			Centre: geom.Point{X: c.Site.X, Y: c.Site.Y},
			Edges:  make([]Segment, 0, len(c.Halfedges)),
		}
		for _, h := range c.Halfedges {
			a, b := h.GetStartpoint(), h.GetEndpoint()
			rs.Edges = append(rs.Edges, Segment{
				A: geom.Point{X: a.X, Y: a.Y},
				B: geom.Point{X: b.X, Y: b.Y},
			})
		}
		sites = append(sites, rs)
	}

	return sites, nil
}
