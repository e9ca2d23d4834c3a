// SPDX-License-Identifier: MIT

// Package geom holds the 2D math shared by the map generator.
//
// Point and Rect are built on github.com/quasilyte/gmath, so vector
// arithmetic, interpolation, angles and rectangle extents are gmath's.
// This package adds what the generator needs on top: per-axis epsilon
// comparison, infinite-line intersection, polygon area, finiteness
// checks and rectangle validation.
//
// Screen coordinates are assumed, so Y grows downwards and atan2-based
// angles increase clockwise.
//
// Complexity: every function is O(1) except PolygonArea and Mean,
// which are O(n) in the number of points.
package geom
