package planar_test

import (
	"math/rand"

	"github.com/katalvlaran/polymap/geom"
)

// scatter draws n reproducible uniform points inside r.
func scatter(n int, r geom.Rect, seed int64) []geom.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(r.Min.X+rng.Float64()*r.Width(), r.Min.Y+rng.Float64()*r.Height())
	}
	return pts
}
