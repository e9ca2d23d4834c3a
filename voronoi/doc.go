// SPDX-License-Identifier: MIT

// Package voronoi adapts a Fortune-sweep Voronoi implementation to the
// map generator.
//
// What:
//
//   - Diagrammer is the black-box contract: points + bounding rectangle in,
//     one RawSite per distinct input point out.
//   - Every RawSite lists its boundary as independent Segments. Two neighbouring
//     sites each carry their own copy of the shared boundary; package planar
//     restores the shared identity.
//   - Fortune implements Diagrammer on top of github.com/pzsz/voronoi.
//
// Open vs closed cells:
//
//   - Fortune{Closed: false} clips edges to the rectangle but leaves cells that
//     touch it open; the missing boundary shows up as a gap in the ring.
//   - Fortune{Closed: true} walks the rectangle and adds border segments, so
//     every cell is a closed polygon. Relaxation uses this mode.
//
// Errors:
//
//   - ErrDegenerateRect: bounding rectangle has no area.
//   - ErrDiagramFailed:  the sweep could not complete on the given input.
package voronoi
