package voronoi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/voronoi"
)

// signedArea sums the cross products of consistently oriented segments.
func signedArea(segs []voronoi.Segment) float64 {
	var twice float64
	for _, s := range segs {
		twice += s.A.X*s.B.Y - s.B.X*s.A.Y
	}
	return twice / 2
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

var twoPoints = []geom.Point{geom.Pt(30, 40), geom.Pt(70, 60)}

func TestFortune_OpenCellsShareBisector(t *testing.T) {
	sites, err := voronoi.Fortune{}.Diagram(twoPoints, geom.R(0, 0, 100, 100))
	require.NoError(t, err)
	require.Len(t, sites, 2)

	for _, s := range sites {
		require.Len(t, s.Edges, 1, "open cell keeps only the bisector")
		e := s.Edges[0]
		ends := []geom.Point{e.A, e.B}
		assert.True(t, geom.Equal(ends[0], geom.Pt(75, 0), 1e-6) || geom.Equal(ends[1], geom.Pt(75, 0), 1e-6))
		assert.True(t, geom.Equal(ends[0], geom.Pt(25, 100), 1e-6) || geom.Equal(ends[1], geom.Pt(25, 100), 1e-6))
	}
}

func TestFortune_ClosedCellsTileRect(t *testing.T) {
	rect := geom.R(0, 0, 100, 100)
	sites, err := voronoi.Fortune{Closed: true}.Diagram(twoPoints, rect)
	require.NoError(t, err)
	require.Len(t, sites, 2)

	var total float64
	for _, s := range sites {
		assert.GreaterOrEqual(t, len(s.Edges), 3)
		a := abs(signedArea(s.Edges))
		assert.InDelta(t, 5000.0, a, 1e-6)
		total += a
	}
	assert.InDelta(t, rect.Area(), total, 1e-6)
}

func TestFortune_CentresMatchInput(t *testing.T) {
	pts := []geom.Point{geom.Pt(10, 10), geom.Pt(80, 20), geom.Pt(40, 70), geom.Pt(85, 90)}
	sites, err := voronoi.Fortune{Closed: true}.Diagram(pts, geom.R(0, 0, 100, 100))
	require.NoError(t, err)
	require.Len(t, sites, len(pts))

	got := make(map[geom.Point]bool, len(sites))
	for _, s := range sites {
		got[s.Centre] = true
	}
	for _, p := range pts {
		assert.True(t, got[p], "missing cell for %v", p)
	}
}

func TestFortune_Errors(t *testing.T) {
	_, err := voronoi.Fortune{}.Diagram(twoPoints, geom.R(0, 0, 0, 10))
	assert.ErrorIs(t, err, voronoi.ErrDegenerateRect)

	sites, err := voronoi.Fortune{}.Diagram(nil, geom.R(0, 0, 10, 10))
	assert.NoError(t, err)
	assert.Empty(t, sites)
}
