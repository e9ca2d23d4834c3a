package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/internal/testgrid"
	"github.com/katalvlaran/polymap/planar"
	"github.com/katalvlaran/polymap/voronoi"
)

func gridSites(cols, rows int, closed bool) []voronoi.RawSite {
	return testgrid.Squares(cols, rows, closed)
}

// assertSymmetric checks that every neighbour link has a partner through the same edge.
func assertSymmetric(t *testing.T, g *planar.Graph) {
	t.Helper()
	for _, s := range g.Sites() {
		for _, ge := range s.Edges {
			if ge.Neighbour == planar.NoSite {
				continue
			}
			found := false
			for _, back := range g.Site(ge.Neighbour).Edges {
				if back.Edge == ge.Edge && back.Neighbour == s.ID {
					found = true
					break
				}
			}
			assert.True(t, found, "site %d → %d via edge %d has no partner", s.ID, ge.Neighbour, ge.Edge)
		}
	}
}

// assertAngleOrder checks that edge midpoints increase in angle around the
// centre. Only meaningful for sites without synthetic patches.
func assertAngleOrder(t *testing.T, g *planar.Graph, id planar.SiteID) {
	t.Helper()
	s := g.Site(id)
	prev := -4.0
	for _, ge := range s.Edges {
		e := g.Edge(ge.Edge)
		a := geom.Angle(s.Centre, geom.Midpoint(e.V0(), e.V1()))
		assert.GreaterOrEqual(t, a, prev, "site %d edges out of angular order", id)
		prev = a
	}
}
