// SPDX-License-Identifier: MIT
// Package: polymap/core

// File: methods_edges.go
// Role: edge lifecycle and queries, plus nextEdgeID().
// Determinism:
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge links from and to, creating missing endpoints, and returns the
// new edge ID.
//
// Errors:
//   - ErrEmptyVertexID:       either endpoint is "".
//   - ErrLoopNotAllowed:      from == to.
//   - ErrMultiEdgeNotAllowed: the pair is already linked.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, ok := g.adjacency[from][to]; ok {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether from and to are linked, in either direction.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
