// SPDX-License-Identifier: MIT
// Package: polymap/planar

package planar

import (
	"slices"

	"github.com/katalvlaran/polymap/bfs"
	"github.com/katalvlaran/polymap/geom"
)

// Exclaves splits members into connected components by running bfs.BFS over
// the site adjacency, with WithFilterNeighbor restricting every step to
// member sites. Components are returned in order of their smallest member;
// sites inside a component in BFS order. Ids that are not in the graph are
// ignored.
func Exclaves(g *Graph, members []SiteID) [][]SiteID {
	keys := make(map[string]SiteID, len(members))
	for _, id := range members {
		if g.Site(id) != nil {
			keys[vertexID(id)] = id
		}
	}
	order := make([]SiteID, 0, len(keys))
	for _, id := range keys {
		order = append(order, id)
	}
	slices.Sort(order)

	within := bfs.WithFilterNeighbor(func(_, nbr string) bool {
		_, ok := keys[nbr]
		return ok
	})
	adj := g.adjacency()
	seen := make(map[SiteID]bool, len(keys))
	var comps [][]SiteID
	for _, start := range order {
		if seen[start] {
			continue
		}
		comp := []SiteID{start}
		// every site is a vertex of adj, so BFS only fails on a broken graph
		if res, err := bfs.BFS(adj, vertexID(start), within); err == nil {
			comp = comp[:0]
			for _, key := range res.Order {
				comp = append(comp, keys[key])
			}
		}
		for _, id := range comp {
			seen[id] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

// UnorderedBoundary returns, for every exclave of members, the GraphEdges of
// its sites whose neighbour is not a member (outer-boundary edges included).
// The edges of one exclave are in site order, not chained; use StitchLoops
// to obtain connected loops. Returned pointers stay valid for the life of g.
func UnorderedBoundary(g *Graph, members []SiteID) [][]*GraphEdge {
	set := make(map[SiteID]struct{}, len(members))
	for _, id := range members {
		set[id] = struct{}{}
	}
	comps := Exclaves(g, members)
	out := make([][]*GraphEdge, 0, len(comps))
	for _, comp := range comps {
		var edges []*GraphEdge
		for _, id := range comp {
			s := &g.sites[id]
			for k := range s.Edges {
				if _, ok := set[s.Edges[k].Neighbour]; !ok {
					edges = append(edges, &s.Edges[k])
				}
			}
		}
		out = append(out, edges)
	}
	return out
}

// Loop is a chain of boundary points. A closed loop's last point connects
// back to its first and is not repeated.
type Loop struct {
	Points []geom.Point
	Closed bool
}

// StitchLoops chains edges into loops by matching each edge's end with the
// start of another within eps. The immediate successor in the slice is tried
// first, then the remaining candidates in order, wrapping around. A chain
// that cannot be continued is returned open with its final point kept.
// Complexity: O(B²) worst case, O(B) when edges are already in order.
func StitchLoops(edges []*GraphEdge, eps float64) []Loop {
	n := len(edges)
	used := make([]bool, n)
	var loops []Loop
	for start := 0; start < n; start++ {
		if used[start] {
			continue
		}
		used[start] = true
		first := edges[start].V0()
		loop := Loop{Points: slices.Clone(edges[start].Points[:len(edges[start].Points)-1])}
		cur := start
		for {
			end := edges[cur].V1()
			if geom.Equal(end, first, eps) {
				loop.Closed = true
				break
			}
			next := -1
			for step := 1; step < n; step++ {
				k := (cur + step) % n
				if !used[k] && geom.Equal(edges[k].V0(), end, eps) {
					next = k
					break
				}
			}
			if next < 0 {
				loop.Points = append(loop.Points, end)
				break
			}
			used[next] = true
			loop.Points = append(loop.Points, edges[next].Points[:len(edges[next].Points)-1]...)
			cur = next
		}
		loops = append(loops, loop)
	}
	return loops
}

// RibbonPair is the pair of offset vertices generated around one loop point.
// Consecutive pairs (wrapping around) bound the quads of a joined ribbon.
type RibbonPair struct {
	Outer, Inner geom.Point
}

// Ribbon offsets the closed polyline points by outer on one side and inner
// on the other, mitring the joints at line intersections. The outer side is
// the left-hand normal (a.y-b.y, b.x-a.x) of each segment, which points into
// a ring wound clockwise on screen. Fewer than three points yield nil.
func Ribbon(points []geom.Point, inner, outer float64) []RibbonPair {
	n := len(points)
	if n < 3 {
		return nil
	}
	out := make([]RibbonPair, 0, n)
	for i := 0; i < n; i++ {
		a := points[(i-1+n)%n]
		b := points[i]
		c := points[(i+1)%n]
		tab := geom.Pt(a.Y-b.Y, b.X-a.X).Normalized()
		tbc := geom.Pt(b.Y-c.Y, c.X-b.X).Normalized()
		out = append(out, RibbonPair{
			Outer: offsetJoint(a, b, c, tab, tbc, outer),
			Inner: offsetJoint(a, b, c, tab, tbc, -inner),
		})
	}
	return out
}

// offsetJoint intersects a→b and b→c shifted by d along their normals.
// Collinear segments fall back to shifting b directly.
func offsetJoint(a, b, c, tab, tbc geom.Point, d float64) geom.Point {
	p, ok := geom.Intersection(a.Add(tab.Mulf(d)), b.Add(tab.Mulf(d)), b.Add(tbc.Mulf(d)), c.Add(tbc.Mulf(d)))
	if !ok {
		return b.Add(tab.Mulf(d))
	}
	return p
}
