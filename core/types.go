// SPDX-License-Identifier: MIT
// Package: polymap/core

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same vertices.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node in the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string
}

// Edge is an undirected link between From and To.
type Edge struct {
	ID       string
	From, To string
}

// Graph is an undirected, unweighted graph keyed by vertex ID.
//
// mu guards every map; nextEdgeID is advanced atomically.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[from][to] = edge ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
