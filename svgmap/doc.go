// SPDX-License-Identifier: MIT

// Package svgmap writes a static SVG preview of a generated world.
//
// What:
//
//   - Tiles: every site ring as a polygon, filled with its territory's
//     colour or a neutral grey when unclaimed.
//   - Borders: every exclave loop of every territory as a mitred band
//     running along the inside of the loop (planar.Ribbon); open loops
//     fall back to a polyline.
//   - Labels: territory names at their centroids.
//   - Sites: optional dots at the site centres.
//
// Layers are emitted as groups with ids "tiles", "borders", "labels" and
// "sites", in that order. World coordinates are shifted so Bounds.Min maps
// to the origin, multiplied by the scale and rounded to whole pixels.
//
// Errors:
//
//   - ErrNilWorld: Render was given no world.
//   - The first error of the underlying writer is returned once rendering
//     finishes.
package svgmap
