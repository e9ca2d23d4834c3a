// SPDX-License-Identifier: MIT

// Package world runs the whole map pipeline from a single Config:
// relaxed points, their Voronoi diagram, the planar graph and the
// territories grown over it.
//
// What:
//
//   - Config gathers every input: bounds, site and territory counts, seed,
//     relaxation steps, vertex tolerance and an optional territory size cap.
//   - Presets reproduce the small, medium and large maps of the game.
//   - New validates the Config, then runs relax → voronoi → planar →
//     territory on one *rand.Rand seeded from Config.Seed.
//   - World exposes the graph, the atlas and nearest-site picking.
//
// Determinism:
//
//   - Two Worlds built from equal Configs are identical.
//
// Errors:
//
//   - ErrInvalidConfig: a Config field is out of range; the message names it.
//   - Pipeline errors from relax, voronoi, planar and territory are wrapped
//     and can be matched with errors.Is.
package world
