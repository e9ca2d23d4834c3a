// SPDX-License-Identifier: MIT
// Package: polymap/territory

package territory

import (
	"errors"
	"image/color"
	"slices"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/planar"
)

// Sentinel errors for atlas operations.
var (
	// ErrGraphNil indicates NewAtlas was called without a graph.
	ErrGraphNil = errors.New("territory: graph is nil")

	// ErrBadCount indicates a non-positive territory count or size limit.
	ErrBadCount = errors.New("territory: count must be positive")

	// ErrPoolExhausted indicates there are fewer unclaimed sites than seeds requested.
	ErrPoolExhausted = errors.New("territory: unclaimed pool exhausted")

	// ErrSiteNotFound indicates a SiteID outside the graph.
	ErrSiteNotFound = errors.New("territory: site not found")

	// ErrUnknownTerritory indicates a territory created by another atlas, or nil.
	ErrUnknownTerritory = errors.New("territory: unknown territory")
)

// Territory is a named, coloured set of sites. Membership changes only
// through its Atlas.
type Territory struct {
	ID     int
	Name   string
	Colour color.NRGBA

	g       *planar.Graph
	members map[planar.SiteID]struct{}
	sum     geom.Point
}

func newTerritory(g *planar.Graph, id int, name string, c color.NRGBA) *Territory {
	return &Territory{
		ID:      id,
		Name:    name,
		Colour:  c,
		g:       g,
		members: make(map[planar.SiteID]struct{}),
	}
}

// Len returns the number of member sites.
func (t *Territory) Len() int { return len(t.members) }

// Has reports whether id is a member.
func (t *Territory) Has(id planar.SiteID) bool {
	_, ok := t.members[id]
	return ok
}

// Members returns the member ids in ascending order.
func (t *Territory) Members() []planar.SiteID {
	out := make([]planar.SiteID, 0, len(t.members))
	for id := range t.members {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Centroid returns the mean of the member site centres, or the zero point
// for an empty territory.
func (t *Territory) Centroid() geom.Point {
	if len(t.members) == 0 {
		return geom.Point{}
	}
	n := float64(len(t.members))
	return t.sum.Divf(n)
}

// Exclaves returns the connected components of the territory, each as
// site ids, ordered by smallest member.
func (t *Territory) Exclaves() [][]planar.SiteID {
	return planar.Exclaves(t.g, t.Members())
}

// UnorderedBoundary returns one list of boundary-facing GraphEdges per
// exclave. See planar.UnorderedBoundary.
func (t *Territory) UnorderedBoundary() [][]*planar.GraphEdge {
	return planar.UnorderedBoundary(t.g, t.Members())
}

// Borders returns the boundary of every exclave stitched into point loops.
func (t *Territory) Borders() [][]planar.Loop {
	edges := t.UnorderedBoundary()
	out := make([][]planar.Loop, len(edges))
	for i, ex := range edges {
		out[i] = planar.StitchLoops(ex, t.g.Epsilon())
	}
	return out
}

func (t *Territory) add(id planar.SiteID) {
	if _, ok := t.members[id]; ok {
		return
	}
	t.members[id] = struct{}{}
	t.sum = t.sum.Add(t.g.Site(id).Centre)
}

func (t *Territory) remove(id planar.SiteID) {
	if _, ok := t.members[id]; !ok {
		return
	}
	delete(t.members, id)
	if len(t.members) == 0 {
		t.sum = geom.Point{}
		return
	}
	t.sum = t.sum.Sub(t.g.Site(id).Centre)
}
