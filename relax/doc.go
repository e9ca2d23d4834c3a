// SPDX-License-Identifier: MIT

// Package relax generates evenly spread point sets with Lloyd's algorithm.
//
// Generate draws count uniformly random points inside a rectangle, then
// repeatedly builds their Voronoi diagram and moves every point to the
// mean of its cell's edge endpoints. Shared vertices are counted once per
// edge that touches them, so this is not the area-weighted centroid.
//
// Determinism: the only source of randomness is the *rand.Rand supplied
// through WithSeed or WithRand. The same seed and options always yield the
// same sequence of points.
//
// Complexity: O(I · n log n) for I iterations over n points.
package relax
