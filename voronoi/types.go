// SPDX-License-Identifier: MIT
// Package: polymap/voronoi

package voronoi

import (
	"errors"

	"github.com/katalvlaran/polymap/geom"
)

// Sentinel errors for diagram construction.
var (
	// ErrDegenerateRect indicates a bounding rectangle with zero or negative extent.
	ErrDegenerateRect = errors.New("voronoi: bounding rectangle has no area")

	// ErrDiagramFailed indicates the sweep aborted on the supplied input.
	ErrDiagramFailed = errors.New("voronoi: diagram computation failed")
)

// Segment is one raw boundary piece of a cell, A→B in whatever order the
// diagram produced it.
type Segment struct {
	A, B geom.Point
}

// RawSite is a Voronoi cell as produced by a Diagrammer. Edges are not
// guaranteed to be ordered and carry no identity shared with neighbours.
type RawSite struct {
	// Centre is the input point that generated the cell, bit-identical.
	Centre geom.Point
	// Edges holds the cell boundary segments.
	Edges []Segment
}

// Diagrammer computes a Voronoi diagram clipped to rect.
// Duplicate input points collapse into a single RawSite.
type Diagrammer interface {
	Diagram(points []geom.Point, rect geom.Rect) ([]RawSite, error)
}
