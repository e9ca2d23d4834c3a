// SPDX-License-Identifier: MIT
// Package: polymap/bfs

package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters that customize BFS execution.
type BFSOptions struct {
	// FilterNeighbor can skip edges by returning false.
	// Called for each step curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns BFSOptions that allow every neighbor.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithFilterNeighbor skips neighbors when fn returns false. A nil fn keeps
// the default.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the vertices reached, in visit sequence.
type BFSResult struct {
	Order []string
}
