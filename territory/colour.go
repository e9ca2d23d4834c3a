// SPDX-License-Identifier: MIT
// Package: polymap/territory

package territory

import (
	"image/color"
	"math"
)

// HSV converts hue (degrees), saturation, value and alpha in [0,1] to a
// non-premultiplied colour. Hue wraps; the other components are clamped.
func HSV(h, s, v, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, v, a = clamp01(s), clamp01(v), clamp01(a)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{
		R: to8(r + m),
		G: to8(g + m),
		B: to8(b + m),
		A: to8(a),
	}
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func to8(f float64) uint8 {
	return uint8(math.Round(f * 255))
}
