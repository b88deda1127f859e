// Package lineclip clips 2D line segments on the integer grid against an
// axis-aligned rectangular viewport.
//
// # Quick Start
//
//	import "github.com/gogpu/lineclip"
//
//	c, err := lineclip.NewClipper(lineclip.Pt(8, 7), lineclip.Pt(19, 13))
//	if err != nil {
//	    return err
//	}
//
//	r, err := c.Clip(lineclip.Seg(lineclip.Pt(17, 12), lineclip.Pt(22, 11)))
//	// r.Segment == (17; 12) - (19; 11), r.Class == lineclip.ClippedToBoundary
//
// # Algorithm
//
// Clip first classifies a segment with region codes: a segment whose
// endpoints are both at or beyond the same side is Outside, one whose
// endpoints are both strictly inside is FullyInside. Any other segment is
// tested against all four sides with a two-sided straddle test, and the
// crossing points are computed from the implicit line equations
// d*x + e*y + f = 0 with integer division truncating toward zero.
//
// # Coordinate System
//
// Uses standard screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The viewport is given by its upper-left and lower-right corners. Its
// border counts as outside for the trivial tests.
//
// Coordinates are limited to ±MaxCoord so that differences of two
// coordinates fit in an int. Products that could overflow are computed in
// arbitrary precision, so results are exact across the whole range.
//
// # Concurrency
//
// Viewport and Clipper are immutable after construction. Clip performs no
// I/O and may be called from multiple goroutines.
package lineclip
