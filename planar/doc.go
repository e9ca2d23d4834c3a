// SPDX-License-Identifier: MIT

// Package planar turns the per-site edge soup of a Voronoi diagram into a
// linked planar graph of polygonal cells.
//
// What:
//
//   - Build merges the two independent copies of every shared boundary into
//     one Edge owned by both adjacent sites, orders each site's edges by angle
//     around its centre, orients them into a consistent winding, closes open
//     border rings with synthetic edges and resolves neighbour links.
//   - Sites and Edges live in arenas owned by the Graph and refer to each
//     other by SiteID / EdgeID, so shared ownership never needs pointers.
//   - ToCoreGraph projects site adjacency into a core.Graph. Exclaves walks
//     a cached copy of it with bfs.BFS, filtered to the member sites.
//   - UnorderedBoundary, StitchLoops and Ribbon extract territory borders for
//     growth and rendering.
//
// Invariants after Build:
//
//   - Every GraphEdge of site A with neighbour B has a partner GraphEdge in B
//     pointing back at A through the same EdgeID.
//   - Each site's edges are sorted by increasing midpoint angle and form a
//     closed ring: edge[i].V1() ≈ edge[i+1].V0() within ε.
//   - A site is Usable only if its ring closed without patching, every edge
//     has a neighbour and it has at least three edges.
//
// Complexity:
//
//   - Edge merge: O(N log N) sort plus O(N·√N) expected forward scans,
//     N = number of raw edges.
//   - Ordering and patching: O(k log k) per site with k edges.
//   - Nearest: O(V) linear scan.
//   - ToCoreGraph: O(V + E). The cached projection is built once per Graph.
//   - Exclaves: O(M·k) BFS steps for M member sites with k edges each.
//   - UnorderedBoundary: O(M·k) for M member sites.
//   - StitchLoops: O(B²) worst case for B boundary edges.
//
// Errors:
//
//   - ErrNoSites:  Build received no sites, or Nearest ran on an empty graph.
//   - ErrBadSite:  a site centre is not a finite point.
//   - ErrSiteNotFound: a SiteID outside the arena was supplied.
package planar
