// SPDX-License-Identifier: MIT
// Package: polymap/geom

package geom

import (
	"errors"
	"math"

	"github.com/quasilyte/gmath"
)

// ErrEmptyRect indicates a rectangle with zero or negative extent.
var ErrEmptyRect = errors.New("geom: rectangle has no area")

// Point is a 2D coordinate. Vector arithmetic (Add, Sub, Mulf, Divf,
// Len, Normalized, DistanceSquaredTo) comes from gmath.Vec.
type Point = gmath.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Finite reports whether both coordinates of p are finite numbers.
func Finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Equal reports whether p and q differ by less than eps on both axes.
func Equal(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// Lerp interpolates between a (t=0) and b (t=1).
func Lerp(a, b Point, t float64) Point {
	return a.LinearInterpolate(b, t)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return a.Midpoint(b)
}

// Angle returns atan2 of v relative to origin, in [-π, π].
func Angle(origin, v Point) float64 {
	return float64(origin.AngleToPoint(v))
}

// Sweep returns the signed turn from the direction origin→a to origin→b,
// normalised to [-π, π). Positive values turn clockwise on screen.
func Sweep(origin, a, b Point) float64 {
	return float64(origin.AngleToPoint(a).AngleDelta(origin.AngleToPoint(b)))
}

// Intersection returns the intersection of the infinite lines p1→p2 and p3→p4.
// Parallel lines report ok=false.
func Intersection(p1, p2, p3, p4 Point) (Point, bool) {
	d := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if d == 0 {
		return Point{}, false
	}
	pre := p1.X*p2.Y - p1.Y*p2.X
	post := p3.X*p4.Y - p3.Y*p4.X
	x := (pre*(p3.X-p4.X) - (p1.X-p2.X)*post) / d
	y := (pre*(p3.Y-p4.Y) - (p1.Y-p2.Y)*post) / d

	return Point{X: x, Y: y}, true
}

// Mean returns the arithmetic mean of pts, or ok=false when pts is empty.
func Mean(pts []Point) (Point, bool) {
	if len(pts) == 0 {
		return Point{}, false
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}

	return sum.Divf(float64(len(pts))), true
}

// PolygonArea returns the unsigned area of the closed polygon pts (shoelace).
func PolygonArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var twice float64
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		twice += a.X*b.Y - b.X*a.Y
	}

	return math.Abs(twice) / 2
}

// Rect is an axis-aligned rectangle from Min to Max. Width, Height,
// IsEmpty and the half-open Contains come from gmath.Rect.
type Rect struct {
	gmath.Rect
}

// R is shorthand for a Rect spanning (x0,y0)-(x1,y1).
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{gmath.Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}}
}

// Area returns Width*Height.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Validate returns ErrEmptyRect unless both corners are finite and Max lies
// strictly right of and below Min.
func (r Rect) Validate() error {
	if !Finite(r.Min) || !Finite(r.Max) || r.IsEmpty() {
		return ErrEmptyRect
	}
	return nil
}
