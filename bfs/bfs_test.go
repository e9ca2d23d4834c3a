// SPDX-License-Identifier: MIT
// Package: polymap/bfs

package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymap/bfs"
	"github.com/katalvlaran/polymap/core"
)

// path builds the chain A-B-C-D plus a spur B-E.
func path(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"B", "E"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestBFS_Order checks level-by-level order with lexicographic ties.
func TestBFS_Order(t *testing.T) {
	res, err := bfs.BFS(path(t), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "E", "D"}, res.Order)
}

// TestBFS_FilterNeighbor restricts the walk to a vertex subset.
func TestBFS_FilterNeighbor(t *testing.T) {
	keep := map[string]bool{"A": true, "B": true, "D": true, "E": true}
	res, err := bfs.BFS(path(t), "A", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return keep[nbr]
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E"}, res.Order, "D is only reachable through the filtered C")

	res, err = bfs.BFS(path(t), "C", bfs.WithFilterNeighbor(nil))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5, "a nil filter keeps the default")
}
