// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start
//     vertex and report the visit sequence in BFSResult.Order.
//   - WithFilterNeighbor skips individual curr→neighbor steps, which
//     restricts the walk to a subset of the graph. planar.Exclaves uses
//     this to find the connected pieces of a territory.
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted lexicographically and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V) for the queue and the visited set.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if core.NeighborIDs fails for a visited vertex.
package bfs
