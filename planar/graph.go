// SPDX-License-Identifier: MIT
// Package: polymap/planar

package planar

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/katalvlaran/polymap/core"
	"github.com/katalvlaran/polymap/geom"
)

// Graph owns the site and edge arenas. It is immutable after Build except
// for the owner back-references on sites.
type Graph struct {
	sites []Site
	edges []Edge
	eps   float64

	adjOnce sync.Once
	adj     *core.Graph // site adjacency for traversals, built on first use
}

// Sites returns the site arena. Callers must not append to or reorder it.
func (g *Graph) Sites() []Site { return g.sites }

// Edges returns the edge arena, synthetic patch edges included.
func (g *Graph) Edges() []Edge { return g.edges }

// SiteCount returns the number of sites.
func (g *Graph) SiteCount() int { return len(g.sites) }

// EdgeCount returns the number of shared and synthetic edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Epsilon returns the snapping tolerance the graph was built with.
func (g *Graph) Epsilon() float64 { return g.eps }

// Site returns the site with the given id, or nil if id is out of range.
func (g *Graph) Site(id SiteID) *Site {
	if id < 0 || int(id) >= len(g.sites) {
		return nil
	}
	return &g.sites[id]
}

// Edge returns the edge with the given id, or nil if id is out of range.
func (g *Graph) Edge(id EdgeID) *Edge {
	if id < 0 || int(id) >= len(g.edges) {
		return nil
	}
	return &g.edges[id]
}

// Usable returns the ids of all usable sites in ascending order.
func (g *Graph) Usable() []SiteID {
	out := make([]SiteID, 0, len(g.sites))
	for i := range g.sites {
		if g.sites[i].Usable {
			out = append(out, g.sites[i].ID)
		}
	}
	return out
}

// Neighbours returns the distinct neighbours of id in edge order.
func (g *Graph) Neighbours(id SiteID) ([]SiteID, error) {
	s := g.Site(id)
	if s == nil {
		return nil, fmt.Errorf("%w: %d", ErrSiteNotFound, id)
	}
	out := make([]SiteID, 0, len(s.Edges))
	for _, ge := range s.Edges {
		if ge.Neighbour != NoSite && !slices.Contains(out, ge.Neighbour) {
			out = append(out, ge.Neighbour)
		}
	}
	return out, nil
}

// Nearest returns the site whose centre is closest to p.
// Complexity: O(V).
func (g *Graph) Nearest(p geom.Point) (SiteID, error) {
	if len(g.sites) == 0 {
		return NoSite, ErrNoSites
	}
	best, bestD := NoSite, 0.0
	for i := range g.sites {
		d := g.sites[i].Centre.DistanceSquaredTo(p)
		if best == NoSite || d < bestD {
			best, bestD = g.sites[i].ID, d
		}
	}
	return best, nil
}

// IsClosed reports whether the edges of id form a closed ring within ε.
// A site without edges is not closed.
func (g *Graph) IsClosed(id SiteID) bool {
	s := g.Site(id)
	if s == nil || len(s.Edges) == 0 {
		return false
	}
	n := len(s.Edges)
	for k := 0; k < n; k++ {
		if !geom.Equal(s.Edges[k].V1(), s.Edges[(k+1)%n].V0(), g.eps) {
			return false
		}
	}
	return true
}

// Ring returns the polygon of id as consecutive vertices, each edge
// contributing all but its final point.
func (g *Graph) Ring(id SiteID) []geom.Point {
	s := g.Site(id)
	if s == nil {
		return nil
	}
	var ring []geom.Point
	for _, ge := range s.Edges {
		ring = append(ring, ge.Points[:len(ge.Points)-1]...)
	}
	return ring
}

// vertexID formats the core.Graph vertex identifier of a site.
func vertexID(id SiteID) string {
	return strconv.Itoa(int(id))
}

// ToCoreGraph converts the site adjacency into an undirected *core.Graph.
// Every site becomes a vertex with ID strconv.Itoa(id), isolated sites
// included, and each pair of neighbouring sites is linked once no matter
// how many edges they share.
// Complexity: O(V + E) time and memory.
func (g *Graph) ToCoreGraph() *core.Graph {
	// IDs are never empty and each pair is linked from its lower id only once,
	// so neither AddVertex nor AddEdge can fail here.
	cg := core.NewGraph()
	for i := range g.sites {
		_ = cg.AddVertex(vertexID(g.sites[i].ID))
	}
	for i := range g.sites {
		s := &g.sites[i]
		for _, ge := range s.Edges {
			if ge.Neighbour == NoSite || ge.Neighbour <= s.ID {
				continue
			}
			from, to := vertexID(s.ID), vertexID(ge.Neighbour)
			if !cg.HasEdge(from, to) {
				_, _ = cg.AddEdge(from, to)
			}
		}
	}
	return cg
}

// adjacency returns the cached ToCoreGraph projection.
func (g *Graph) adjacency() *core.Graph {
	g.adjOnce.Do(func() { g.adj = g.ToCoreGraph() })
	return g.adj
}
