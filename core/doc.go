// SPDX-License-Identifier: MIT

// Package core provides a small, thread-safe, string-keyed undirected graph.
//
// What:
//
//   - Vertices are identified by non-empty strings.
//   - Edges are undirected and unweighted; each unordered pair is linked at
//     most once and self-loops are rejected.
//   - Edge IDs come from an atomic counter ("e1", "e2", ...).
//   - Vertices() and NeighborIDs() return sorted results, so every
//     traversal built on them is reproducible.
//
// planar.(*Graph).ToCoreGraph projects the site adjacency of a planar map
// into this form so the traversal algorithms in package bfs can walk it.
//
// Complexity:
//
//   - AddVertex, HasVertex, AddEdge, HasEdge: O(1) amortized.
//   - Vertices: O(V log V). NeighborIDs: O(d log d) for degree d.
//
// Errors:
//
//   - ErrEmptyVertexID:       a vertex ID is the empty string.
//   - ErrVertexNotFound:      a query names a vertex that does not exist.
//   - ErrLoopNotAllowed:      AddEdge(v, v).
//   - ErrMultiEdgeNotAllowed: the pair is already linked.
package core
