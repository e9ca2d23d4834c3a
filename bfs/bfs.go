// SPDX-License-Identifier: MIT
// Package: polymap/bfs

package bfs

import (
	"fmt"

	"github.com/katalvlaran/polymap/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []string
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and
// ErrNeighbors for graph failures.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		res:     &BFSResult{Order: make([]string, 0, n)},
	}
	w.enqueue(startID)

	return w.res, w.loop()
}

// enqueue marks id visited and adds it to the queue.
func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

// loop processes the queue until it is empty or a lookup fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)
		if err := w.enqueueNeighbors(id); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors enqueues every unseen neighbor of id that passes the filter.
func (w *walker) enqueueNeighbors(id string) error {
	neighbors, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		w.enqueue(nbr)
	}
	return nil
}
