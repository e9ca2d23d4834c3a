// SPDX-License-Identifier: MIT
// Package: polymap/planar

package planar

import (
	"errors"

	"github.com/katalvlaran/polymap/geom"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNoSites indicates an empty diagram or graph.
	ErrNoSites = errors.New("planar: no sites")

	// ErrBadSite indicates a site whose centre is NaN or infinite.
	ErrBadSite = errors.New("planar: site centre is not finite")

	// ErrSiteNotFound indicates a SiteID outside the site arena.
	ErrSiteNotFound = errors.New("planar: site not found")
)

// SiteID indexes Graph.Sites().
type SiteID int

// EdgeID indexes Graph.Edges().
type EdgeID int

// NoSite marks a missing neighbour: the outer boundary or a synthetic patch.
const NoSite SiteID = -1

// NoOwner is the owner value of a site no territory holds.
const NoOwner = -1

// DefaultEpsilon is the distance under which two vertices are considered equal.
const DefaultEpsilon = 1e-2

// Edge is a physical boundary segment shared by D0 and D1.
// D1 is NoSite for outer-boundary and synthetic edges.
type Edge struct {
	ID     EdgeID
	Points []geom.Point
	D0, D1 SiteID
}

// V0 returns the first point of the edge.
func (e *Edge) V0() geom.Point { return e.Points[0] }

// V1 returns the last point of the edge.
func (e *Edge) V1() geom.Point { return e.Points[len(e.Points)-1] }

// Other returns the site on the opposite side of the edge from id, or NoSite.
func (e *Edge) Other(id SiteID) SiteID {
	if e.D0 == id {
		return e.D1
	}
	return e.D0
}

// GraphEdge is one site's oriented view of a shared Edge.
// Points follow the site's winding and may be reversed relative to the Edge.
type GraphEdge struct {
	Edge      EdgeID
	Points    []geom.Point
	Neighbour SiteID
}

// V0 returns the first point in this site's winding order.
func (ge *GraphEdge) V0() geom.Point { return ge.Points[0] }

// V1 returns the last point in this site's winding order.
func (ge *GraphEdge) V1() geom.Point { return ge.Points[len(ge.Points)-1] }

// Site is one polygonal cell.
//
// The owner field is a weak back-reference to a territory id. It is written
// only by the territory package's ownership transfer.
type Site struct {
	ID     SiteID
	Centre geom.Point
	Edges  []GraphEdge
	Usable bool

	owner int
}

// Owner returns the owning territory id, if any.
func (s *Site) Owner() (int, bool) {
	return s.owner, s.owner != NoOwner
}

// SetOwner records id as the owning territory.
//
// The reference mirrors a territory.Atlas, which sets it on every claim and
// clears it in NewAtlas. Calling it directly on a graph an Atlas manages
// makes Owner disagree with the Atlas until that site is claimed again; the
// Atlas itself keeps answering from its own record.
func (s *Site) SetOwner(id int) { s.owner = id }

// ClearOwner marks the site as unowned. The hazard described on SetOwner
// applies.
func (s *Site) ClearOwner() { s.owner = NoOwner }

// edgeAngle is the angle of the edge midpoint around the site centre.
func (s *Site) edgeAngle(e *Edge) float64 {
	return geom.Angle(s.Centre, geom.Midpoint(e.V0(), e.V1()))
}
