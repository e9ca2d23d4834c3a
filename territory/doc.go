// SPDX-License-Identifier: MIT

// Package territory partitions the usable sites of a planar graph among
// named, coloured territories by randomized frontier growth.
//
// What:
//
//   - Atlas owns the territories of one graph and the pool of usable sites
//     nobody owns yet.
//   - Fill seeds count territories on random unclaimed sites, then grows
//     them round-robin, one site per territory per pass, until a full pass
//     claims nothing. Territories that are still growing always have equal
//     size; a territory that stops once never grows again.
//   - Generate seeds territories one after another and grows each up to a
//     size limit before the next one starts.
//   - Claim moves a site between territories, keeping the site's owner
//     reference, both member sets and the unclaimed pool consistent.
//   - Territory exposes its members, centroid, exclaves and the boundary
//     edges of every exclave.
//
// Determinism:
//
//   - All randomness comes from the *rand.Rand given through WithSeed or
//     WithRand. Territories are visited in ascending ID order and growth
//     candidates are collected in member then edge order, so the same graph
//     and seed always produce the same partition.
//
// Complexity:
//
//   - Grow: O(M·d) for a territory of M sites with d edges per site.
//   - Fill: O(P·T·M·d) for P passes over T territories; P is bounded by the
//     usable site count.
//
// Errors:
//
//   - ErrGraphNil: NewAtlas was given a nil graph.
//   - ErrBadCount: territory count or size limit out of range.
//   - ErrPoolExhausted: more seeds requested than unclaimed sites.
//   - ErrSiteNotFound: Claim on an id outside the graph.
//   - ErrUnknownTerritory: Claim for a territory this atlas does not own.
package territory
