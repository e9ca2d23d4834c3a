// SPDX-License-Identifier: MIT

// Package polymap generates polygonal territory maps: a rectangle is cut
// into relaxed Voronoi cells, the cells are linked into a planar graph and
// competing territories grow over it until the land is shared out.
//
// What is in the box?
//
//	geom/       Point, Rect on quasilyte/gmath; ε-comparison, intersection, area
//	core/       thread-safe string-keyed undirected graph
//	bfs/        breadth-first search over core with neighbour filtering
//	voronoi/    Diagrammer interface + Fortune sweep adapter (pzsz/voronoi)
//	relax/      seeded uniform points + Lloyd relaxation
//	planar/     planar graph: edge merging, angular ordering, gap patching,
//	            neighbours, exclaves, boundary loops, border ribbons
//	territory/  Atlas of territories, round-robin and capped growth
//	world/      Config, presets and the full pipeline on one seed
//	svgmap/     static SVG preview (ajstarks/svgo)
//	cmd/mapgen  CLI: .env + flags, parallel seeds, SVG output
//
// Quick example:
//
//	w, err := world.New(world.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	for id, t := range w.Territories() {
//		fmt.Println(id, t.Name, t.Len(), t.Centroid())
//	}
//
// Guarantees:
//
//   - Deterministic: equal Configs produce equal worlds.
//   - Every usable site ends up owned unless no territory can reach it.
//   - Territories never share a site; sites keep an owner back-reference.
//   - Algorithms return errors, never panic; option constructors panic on
//     meaningless arguments.
package polymap
