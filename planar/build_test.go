package planar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/planar"
	"github.com/katalvlaran/polymap/voronoi"
)

func TestBuild_Errors(t *testing.T) {
	_, err := planar.Build(nil)
	assert.ErrorIs(t, err, planar.ErrNoSites)

	_, err = planar.Build([]voronoi.RawSite{{Centre: geom.Pt(math.NaN(), 0)}})
	assert.ErrorIs(t, err, planar.ErrBadSite)
}

func TestBuild_ClosedGrid(t *testing.T) {
	g, err := planar.Build(gridSites(3, 3, true))
	require.NoError(t, err)

	assert.Equal(t, 9, g.SiteCount())
	assert.Equal(t, 24, g.EdgeCount(), "12 shared + 12 outer edges")
	assert.Equal(t, []planar.SiteID{4}, g.Usable(), "only the centre avoids the border")

	for _, s := range g.Sites() {
		assert.True(t, g.IsClosed(s.ID), "site %d ring open", s.ID)
		assert.Len(t, s.Edges, 4)
	}
	assertSymmetric(t, g)
	assertAngleOrder(t, g, 4)

	// North edge first, then clockwise on screen.
	want := []geom.Point{geom.Pt(1, 1), geom.Pt(2, 1), geom.Pt(2, 2), geom.Pt(1, 2)}
	assert.Equal(t, want, g.Ring(4))

	nbs, err := g.Neighbours(4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []planar.SiteID{1, 3, 5, 7}, nbs)
}

func TestBuild_OpenGridPatchesBorders(t *testing.T) {
	g, err := planar.Build(gridSites(3, 3, false))
	require.NoError(t, err)

	assert.Equal(t, 20, g.EdgeCount(), "12 shared + 8 synthetic patches")
	assert.Equal(t, []planar.SiteID{4}, g.Usable())
	for _, s := range g.Sites() {
		assert.True(t, g.IsClosed(s.ID), "site %d ring open after patching", s.ID)
	}
	assertSymmetric(t, g)

	corner := g.Site(0)
	require.Len(t, corner.Edges, 3)
	last := corner.Edges[2]
	assert.Equal(t, planar.NoSite, last.Neighbour)
	assert.Equal(t, []geom.Point{geom.Pt(0, 1), geom.Pt(1, 0)}, last.Points)
	patch := g.Edge(last.Edge)
	assert.Equal(t, planar.SiteID(0), patch.D0)
	assert.Equal(t, planar.NoSite, patch.D1)
	assert.InDelta(t, 0.5, geom.PolygonArea(g.Ring(0)), 1e-12)

	side := g.Site(3)
	require.Len(t, side.Edges, 4)
	assert.InDelta(t, 1.0, geom.PolygonArea(g.Ring(3)), 1e-12)
}

func TestBuild_MergeAcceptsEitherOrientation(t *testing.T) {
	raw := []voronoi.RawSite{
		{Centre: geom.Pt(0.5, 0.5), Edges: []voronoi.Segment{{A: geom.Pt(1, 0), B: geom.Pt(1, 1)}}},
		{Centre: geom.Pt(1.5, 0.5), Edges: []voronoi.Segment{{A: geom.Pt(1.004, 0.997), B: geom.Pt(0.998, 0.002)}}},
	}
	g, err := planar.Build(raw)
	require.NoError(t, err)

	e := g.Edge(0)
	require.NotNil(t, e)
	assert.Equal(t, planar.SiteID(0), e.D0)
	assert.Equal(t, planar.SiteID(1), e.D1)
	assert.Equal(t, planar.SiteID(1), g.Site(0).Edges[0].Neighbour)
	assert.Equal(t, planar.SiteID(0), g.Site(1).Edges[0].Neighbour)
	// One shared edge each plus one closing patch: too few edges to be usable.
	assert.Empty(t, g.Usable())
}

func TestBuild_DegenerateSites(t *testing.T) {
	raw := []voronoi.RawSite{
		{Centre: geom.Pt(0, 0)},
		{Centre: geom.Pt(5, 5), Edges: []voronoi.Segment{{A: geom.Pt(1, 1), B: geom.Pt(1.001, 1)}}},
	}
	g, err := planar.Build(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount(), "point-like segments are dropped")
	assert.Empty(t, g.Usable())
	assert.False(t, g.IsClosed(0))
}

func TestBuild_WithEpsilon(t *testing.T) {
	raw := []voronoi.RawSite{
		{Centre: geom.Pt(0.5, 0.5), Edges: []voronoi.Segment{{A: geom.Pt(1, 0), B: geom.Pt(1, 1)}}},
		{Centre: geom.Pt(1.5, 0.5), Edges: []voronoi.Segment{{A: geom.Pt(1.004, 0), B: geom.Pt(1, 1)}}},
	}
	loose, err := planar.Build(raw)
	require.NoError(t, err)
	strict, err := planar.Build(raw, planar.WithEpsilon(1e-3))
	require.NoError(t, err)

	assert.Equal(t, 1+2, loose.EdgeCount(), "merged edge plus one patch per site")
	assert.Equal(t, 2+2, strict.EdgeCount(), "no merge under the tighter tolerance")
	assert.Equal(t, 1e-3, strict.Epsilon())
	assert.Panics(t, func() { planar.WithEpsilon(0) })
}

func TestBuild_ThreeSitesCoverRect(t *testing.T) {
	rect := geom.R(0, 0, 10, 10)
	pts := []geom.Point{geom.Pt(2, 2), geom.Pt(8, 3), geom.Pt(5, 8)}
	raw, err := voronoi.Fortune{Closed: true}.Diagram(pts, rect)
	require.NoError(t, err)

	g, err := planar.Build(raw)
	require.NoError(t, err)
	require.Equal(t, 3, g.SiteCount())

	var area float64
	for _, s := range g.Sites() {
		assert.GreaterOrEqual(t, len(s.Edges), 3)
		assert.True(t, g.IsClosed(s.ID))
		area += geom.PolygonArea(g.Ring(s.ID))
	}
	assertSymmetric(t, g)
	assert.InDelta(t, rect.Area(), area, 1e-6)
}

func TestBuild_RandomDiagrams(t *testing.T) {
	rect := geom.R(0, 0, 400, 300)
	pts := scatter(250, rect, 11)

	for _, closed := range []bool{false, true} {
		raw, err := voronoi.Fortune{Closed: closed}.Diagram(pts, rect)
		require.NoError(t, err)
		g, err := planar.Build(raw)
		require.NoError(t, err)

		usable := g.Usable()
		assert.NotEmpty(t, usable)
		assertSymmetric(t, g)

		var area float64
		for _, s := range g.Sites() {
			assert.True(t, g.IsClosed(s.ID), "closed=%v site %d", closed, s.ID)
			area += geom.PolygonArea(g.Ring(s.ID))
		}
		for _, id := range usable {
			s := g.Site(id)
			assert.GreaterOrEqual(t, len(s.Edges), 3)
			for _, ge := range s.Edges {
				assert.NotEqual(t, planar.NoSite, ge.Neighbour)
			}
			assertAngleOrder(t, g, id)
		}
		if closed {
			assert.InDelta(t, rect.Area(), area, 1e-6*rect.Area())
		}
	}
}

func TestGraph_Queries(t *testing.T) {
	g, err := planar.Build(gridSites(3, 2, true))
	require.NoError(t, err)

	id, err := g.Nearest(geom.Pt(2.2, 1.9))
	require.NoError(t, err)
	assert.Equal(t, planar.SiteID(5), id)

	assert.Nil(t, g.Site(-1))
	assert.Nil(t, g.Site(6))
	assert.Nil(t, g.Edge(planar.EdgeID(g.EdgeCount())))
	assert.Nil(t, g.Ring(99))

	_, err = g.Neighbours(42)
	assert.ErrorIs(t, err, planar.ErrSiteNotFound)

	s := g.Site(0)
	_, owned := s.Owner()
	assert.False(t, owned)
	s.SetOwner(3)
	owner, owned := s.Owner()
	assert.True(t, owned)
	assert.Equal(t, 3, owner)
	s.ClearOwner()
	_, owned = s.Owner()
	assert.False(t, owned)
}
