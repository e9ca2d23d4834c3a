// SPDX-License-Identifier: MIT
// Package: polymap/territory

package territory_test

import (
	"fmt"

	"github.com/katalvlaran/polymap/internal/testgrid"
	"github.com/katalvlaran/polymap/planar"
	"github.com/katalvlaran/polymap/territory"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Fill
////////////////////////////////////////////////////////////////////////////////

// ExampleAtlas_Fill grows a single territory over a 5×5 grid.
// Scenario:
//
//   - The 16 border cells touch the outer rectangle and are unusable.
//   - The 3×3 interior is connected, so one territory claims all of it.
//   - Its border is one closed loop around the interior block.
func ExampleAtlas_Fill() {
	g, _ := planar.Build(testgrid.Squares(5, 5, true))
	atlas, _ := territory.NewAtlas(g, territory.WithSeed(42))

	ts, _ := atlas.Fill(1)
	state := ts[0]
	fmt.Println(state.Name, "owns", state.Len(), "sites")
	fmt.Println("centroid:", state.Centroid())
	fmt.Println("unclaimed:", atlas.UnclaimedCount())

	loops := state.Borders()[0]
	fmt.Println("border loops:", len(loops), "closed:", loops[0].Closed, "points:", len(loops[0].Points))

	// Output:
	// Generated State 0 owns 9 sites
	// centroid: [2.500000, 2.500000]
	// unclaimed: 0
	// border loops: 1 closed: true points: 12
}
