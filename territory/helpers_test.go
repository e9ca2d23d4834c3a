package territory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/internal/testgrid"
	"github.com/katalvlaran/polymap/planar"
	"github.com/katalvlaran/polymap/relax"
	"github.com/katalvlaran/polymap/voronoi"
)

// gridGraph returns a closed cols×rows grid; its usable sites are the interior cells.
func gridGraph(t *testing.T, cols, rows int) *planar.Graph {
	t.Helper()
	g, err := planar.Build(testgrid.Squares(cols, rows, true))
	require.NoError(t, err)
	return g
}

// randomGraph relaxes n points and links their open diagram.
func randomGraph(t *testing.T, n int, seed int64) *planar.Graph {
	t.Helper()
	rect := geom.R(0, 0, 800, 600)
	pts, err := relax.Generate(n, rect, relax.WithSeed(seed), relax.WithIterations(3))
	require.NoError(t, err)
	raw, err := voronoi.Fortune{}.Diagram(pts, rect)
	require.NoError(t, err)
	g, err := planar.Build(raw)
	require.NoError(t, err)
	return g
}

func site(cols, col, row int) planar.SiteID {
	return planar.SiteID(testgrid.ID(cols, col, row))
}
