// SPDX-License-Identifier: MIT
// Package: polymap/planar

package planar

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/voronoi"
)

// rawEdge is one site's private copy of a boundary segment before merging.
type rawEdge struct {
	p, q   geom.Point
	site   SiteID
	merged bool
}

// Build links the raw diagram into a planar graph.
//
// Steps:
//
//	A. Merge: sort raw edges by p.x and scan forward for the first edge of a
//	   different site with the same endpoints (either order) within ε. A pair
//	   becomes one Edge with D0/D1 set; a lone edge keeps D1 = NoSite.
//	B. Register every Edge with D0 and, if present, D1.
//	C. Per site: sort by midpoint angle, orient points, patch ring gaps and
//	   resolve neighbours.
//
// Geometric degeneracy never fails the build; affected sites are marked
// unusable instead. Segments with non-finite or coincident endpoints are
// dropped before merging.
func Build(raw []voronoi.RawSite, opts ...Option) (*Graph, error) {
	if len(raw) == 0 {
		return nil, ErrNoSites
	}
	cfg := newBuildConfig(opts...)
	g := &Graph{
		sites: make([]Site, len(raw)),
		eps:   cfg.eps,
	}

	edges := make([]rawEdge, 0, 5*len(raw))
	for i, rs := range raw {
		if !geom.Finite(rs.Centre) {
			return nil, fmt.Errorf("%w: site %d at %v", ErrBadSite, i, rs.Centre)
		}
		g.sites[i] = Site{ID: SiteID(i), Centre: rs.Centre, Usable: true, owner: NoOwner}
		for _, seg := range rs.Edges {
			if !geom.Finite(seg.A) || !geom.Finite(seg.B) || geom.Equal(seg.A, seg.B, cfg.eps) {
				continue
			}
			edges = append(edges, rawEdge{p: seg.A, q: seg.B, site: SiteID(i)})
		}
	}

	cfg.log.Debug("merging identical edges", zap.Int("raw_edges", len(edges)))
	g.mergeEdges(edges)

	cfg.log.Debug("populating edge lists", zap.Int("edges", len(g.edges)))
	for i := range g.edges {
		e := &g.edges[i]
		g.sites[e.D0].Edges = append(g.sites[e.D0].Edges, GraphEdge{Edge: e.ID})
		if e.D1 != NoSite {
			g.sites[e.D1].Edges = append(g.sites[e.D1].Edges, GraphEdge{Edge: e.ID})
		}
	}

	cfg.log.Debug("sorting edges by angle", zap.Int("sites", len(g.sites)))
	patched := 0
	for i := range g.sites {
		patched += g.orderSite(&g.sites[i])
	}
	cfg.log.Debug("planar graph built",
		zap.Int("sites", len(g.sites)),
		zap.Int("edges", len(g.edges)),
		zap.Int("patched_gaps", patched),
		zap.Int("usable", len(g.Usable())))

	return g, nil
}

// mergeEdges performs step A.
//
// A partner D of edge E later in sort order starts at E.p or E.q, so its
// first x is at most max(E.p.x, E.q.x)+ε; the scan stops there. With cell
// width ∝ 1/√density this visits O(√N) candidates per edge.
func (g *Graph) mergeEdges(edges []rawEdge) {
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].p.X < edges[j].p.X })

	g.edges = make([]Edge, 0, len(edges)/2+1)
	for i := range edges {
		a := &edges[i]
		if a.merged {
			continue
		}
		a.merged = true
		e := Edge{
			ID:     EdgeID(len(g.edges)),
			Points: []geom.Point{a.p, a.q},
			D0:     a.site,
			D1:     NoSite,
		}
		reach := math.Max(a.p.X, a.q.X) + g.eps
		for j := i + 1; j < len(edges) && edges[j].p.X <= reach; j++ {
			b := &edges[j]
			if b.merged || b.site == a.site || !sameSegment(a, b, g.eps) {
				continue
			}
			b.merged = true
			e.D1 = b.site
			break
		}
		g.edges = append(g.edges, e)
	}
}

func sameSegment(a, b *rawEdge, eps float64) bool {
	return (geom.Equal(a.p, b.p, eps) && geom.Equal(a.q, b.q, eps)) ||
		(geom.Equal(a.p, b.q, eps) && geom.Equal(a.q, b.p, eps))
}

// orderSite performs step C for one site and returns the number of gaps patched.
func (g *Graph) orderSite(s *Site) int {
	if len(s.Edges) == 0 {
		s.Usable = false
		return 0
	}

	// With y pointing down atan2 increases clockwise on screen, so a square
	// cell comes out north, east, south, west.
	sort.SliceStable(s.Edges, func(i, j int) bool {
		return s.edgeAngle(&g.edges[s.Edges[i].Edge]) < s.edgeAngle(&g.edges[s.Edges[j].Edge])
	})

	for k := range s.Edges {
		ge := &s.Edges[k]
		e := &g.edges[ge.Edge]
		ge.Points = slices.Clone(e.Points)
		if reversedFor(s, e) {
			slices.Reverse(ge.Points)
		}
	}

	patched := 0
	for k := 0; k < len(s.Edges); k++ {
		a := s.Edges[k].V1()
		b := s.Edges[(k+1)%len(s.Edges)].V0()
		if geom.Equal(a, b, g.eps) {
			continue
		}
		id := EdgeID(len(g.edges))
		g.edges = append(g.edges, Edge{ID: id, Points: []geom.Point{a, b}, D0: s.ID, D1: NoSite})
		s.Edges = slices.Insert(s.Edges, k+1, GraphEdge{Edge: id, Points: []geom.Point{a, b}})
		// The inserted edge ends at b by construction.
		k++
		patched++
		s.Usable = false
	}

	for k := range s.Edges {
		ge := &s.Edges[k]
		ge.Neighbour = g.edges[ge.Edge].Other(s.ID)
		if ge.Neighbour == NoSite {
			s.Usable = false
		}
	}
	if len(s.Edges) < 3 {
		s.Usable = false
	}

	return patched
}

// reversedFor reports whether e must be reversed so that it runs in the
// direction of increasing angle around s. The sweep is normalised, so edges
// straddling the ±π seam orient correctly.
func reversedFor(s *Site, e *Edge) bool {
	return geom.Sweep(s.Centre, e.V0(), e.V1()) < 0
}
