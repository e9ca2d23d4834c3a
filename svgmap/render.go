// SPDX-License-Identifier: MIT
// Package: polymap/svgmap

package svgmap

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/planar"
	"github.com/katalvlaran/polymap/territory"
	"github.com/katalvlaran/polymap/world"
)

// ErrNilWorld indicates Render was called without a world.
var ErrNilWorld = errors.New("svgmap: world is nil")

const (
	backgroundStyle = "fill:rgb(20,20,20)"
	tileStyle       = "fill:rgb(40,40,40);stroke:rgb(80,80,80);stroke-opacity:0.3;stroke-width:1"
	labelStyle      = "fill:rgb(255,255,255);font-family:sans-serif;font-size:20px;text-anchor:middle"
	siteStyle       = "fill:rgb(200,200,200)"
)

// Render writes an SVG preview of wd to w.
func Render(w io.Writer, wd *world.World, opts ...Option) error {
	if wd == nil {
		return ErrNilWorld
	}
	cfg := newConfig(opts...)
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	bounds := wd.Config().Bounds
	pr := projection{origin: bounds.Min, scale: cfg.scale}
	width, height := pr.px(bounds.Width()), pr.px(bounds.Height())

	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("polymap seed %d", wd.Config().Seed))
	canvas.Rect(0, 0, width, height, backgroundStyle)

	g, atlas := wd.Graph(), wd.Atlas()
	canvas.Gid("tiles")
	for _, s := range g.Sites() {
		ring := g.Ring(s.ID)
		if len(ring) < 3 {
			continue
		}
		style := tileStyle
		if t := atlas.Owner(s.ID); t != nil {
			style = fillStyle(t.Colour)
		}
		xs, ys := pr.points(ring)
		canvas.Polygon(xs, ys, style)
	}
	canvas.Gend()

	if cfg.borders {
		canvas.Gid("borders")
		for _, id := range atlas.IDs() {
			drawBorders(canvas, pr, atlas.Territory(id), cfg.borderWidth)
		}
		canvas.Gend()
	}

	if cfg.labels {
		canvas.Gid("labels")
		for _, id := range atlas.IDs() {
			t := atlas.Territory(id)
			if t.Len() == 0 {
				continue
			}
			x, y := pr.point(t.Centroid())
			canvas.Text(x, y, t.Name, labelStyle)
		}
		canvas.Gend()
	}

	if cfg.sites {
		canvas.Gid("sites")
		for _, s := range g.Sites() {
			x, y := pr.point(s.Centre)
			canvas.Circle(x, y, 2, siteStyle)
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

func drawBorders(canvas *svg.SVG, pr projection, t *territory.Territory, width float64) {
	line := strokeStyle(t.Colour)
	for _, exclave := range t.Borders() {
		for _, loop := range exclave {
			if !loop.Closed || len(loop.Points) < 3 {
				xs, ys := pr.points(loop.Points)
				canvas.Polyline(xs, ys, line)
				continue
			}
			if width == 0 {
				xs, ys := pr.points(loop.Points)
				canvas.Polygon(xs, ys, line)
				continue
			}
			xs, ys := pr.points(band(loop.Points, width))
			canvas.Polygon(xs, ys, bandStyle(t.Colour))
		}
	}
}

// band returns the loop followed by its inward offset in reverse, so that
// an even-odd fill paints only the strip between them.
func band(loop []geom.Point, width float64) []geom.Point {
	pairs := planar.Ribbon(loop, 0, width)
	n := len(pairs)
	out := make([]geom.Point, 0, 2*n+2)
	for _, p := range pairs {
		out = append(out, p.Inner)
	}
	out = append(out, pairs[0].Inner, pairs[0].Outer)
	for i := n - 1; i > 0; i-- {
		out = append(out, pairs[i].Outer)
	}
	return out
}

func fillStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.2f;stroke:rgb(80,80,80);stroke-opacity:0.3;stroke-width:1",
		c.R, c.G, c.B, float64(c.A)/255)
}

func strokeStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-width:2", c.R, c.G, c.B)
}

func bandStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-rule:evenodd;stroke:none", c.R, c.G, c.B)
}

// projection maps world coordinates to whole SVG pixels.
type projection struct {
	origin geom.Point
	scale  float64
}

func (p projection) px(v float64) int {
	return int(math.Round(v * p.scale))
}

func (p projection) point(q geom.Point) (int, int) {
	return p.px(q.X - p.origin.X), p.px(q.Y - p.origin.Y)
}

func (p projection) points(pts []geom.Point) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, q := range pts {
		xs[i], ys[i] = p.point(q)
	}
	return xs, ys
}

// errWriter keeps the first write error; later writes are dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = fmt.Errorf("svgmap: write: %w", err)
	}
	return n, err
}
