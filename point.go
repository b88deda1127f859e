package lineclip

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Point represents a position on the integer grid.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) int {
	return p.X*q.Y - p.Y*q.X
}

// String renders the point as "(x; y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d; %d)", p.X, p.Y)
}

// ImagePoint converts p to an image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Pt(p.X, p.Y)
}

// PointFromImage converts an image.Point.
func PointFromImage(p image.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Fixed returns p as a 26.6 fixed-point position, the representation used
// by glyph outlines and the vector rasterizer.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.P(p.X, p.Y)
}
