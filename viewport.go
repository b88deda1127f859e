package lineclip

import (
	"fmt"
	"image"

	"github.com/gogpu/lineclip/internal/clip"
)

// Boundary identifies one side of a Viewport.
type Boundary uint8

// Viewport sides, in the order the clipper tests them.
const (
	Left Boundary = iota
	Right
	Top
	Bottom
)

var boundaryNames = [...]string{Left: "left", Right: "right", Top: "top", Bottom: "bottom"}

func (b Boundary) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return fmt.Sprintf("Boundary(%d)", uint8(b))
}

// Viewport is an axis-aligned rectangular clipping window.
//
// Y grows downward: Min is the upper-left corner and Max the lower-right
// one. The boundary segments are derived once at construction and the
// Viewport is immutable afterwards, so it may be shared between goroutines.
type Viewport struct {
	rect  clip.Rect
	edges [4]Segment
}

// NewViewport creates a Viewport from its upper-left and lower-right
// corners. It returns ErrInvalidViewport unless upperLeft lies strictly
// above and to the left of lowerRight, and ErrCoordinateRange for a
// coordinate beyond ±MaxCoord.
func NewViewport(upperLeft, lowerRight Point) (Viewport, error) {
	if !inRange(upperLeft, MaxCoord) || !inRange(lowerRight, MaxCoord) {
		return Viewport{}, fmt.Errorf("%w: %v - %v", ErrCoordinateRange, upperLeft, lowerRight)
	}

	r := clip.NewRect(upperLeft.X, upperLeft.Y, lowerRight.X, lowerRight.Y)
	if r.Empty() {
		return Viewport{}, fmt.Errorf("%w: %v - %v", ErrInvalidViewport, upperLeft, lowerRight)
	}

	return Viewport{
		rect: r,
		edges: [4]Segment{
			Left:   Seg(Pt(r.MinX, r.MinY), Pt(r.MinX, r.MaxY)),
			Right:  Seg(Pt(r.MaxX, r.MinY), Pt(r.MaxX, r.MaxY)),
			Top:    Seg(Pt(r.MinX, r.MinY), Pt(r.MaxX, r.MinY)),
			Bottom: Seg(Pt(r.MinX, r.MaxY), Pt(r.MaxX, r.MaxY)),
		},
	}, nil
}

// ViewportFromRectangle creates a Viewport covering r.
func ViewportFromRectangle(r image.Rectangle) (Viewport, error) {
	return NewViewport(PointFromImage(r.Min), PointFromImage(r.Max))
}

// Min returns the upper-left corner.
func (v Viewport) Min() Point {
	return Pt(v.rect.MinX, v.rect.MinY)
}

// Max returns the lower-right corner.
func (v Viewport) Max() Point {
	return Pt(v.rect.MaxX, v.rect.MaxY)
}

// Bounds returns the logical bounds of the viewport.
func (v Viewport) Bounds() (minX, minY, maxX, maxY int) {
	return v.rect.MinX, v.rect.MinY, v.rect.MaxX, v.rect.MaxY
}

// Rectangle returns the viewport as an image.Rectangle.
func (v Viewport) Rectangle() image.Rectangle {
	return image.Rect(v.rect.MinX, v.rect.MinY, v.rect.MaxX, v.rect.MaxY)
}

// Boundary returns the segment forming side b.
func (v Viewport) Boundary(b Boundary) Segment {
	return v.edges[b]
}

// Boundaries returns the four boundary segments indexed by Boundary.
func (v Viewport) Boundaries() [4]Segment {
	return v.edges
}

// Contains returns true if p lies strictly inside the viewport.
func (v Viewport) Contains(p Point) bool {
	return v.rect.ContainsOpen(p.X, p.Y)
}

// ContainsClosed returns true if p lies inside the viewport or on its border.
func (v Viewport) ContainsClosed(p Point) bool {
	return v.rect.ContainsClosed(p.X, p.Y)
}

// IsZero returns true for the zero Viewport, which no constructor returns
// without an error.
func (v Viewport) IsZero() bool {
	return v.rect.Empty()
}

func (v Viewport) String() string {
	return v.Min().String() + " - " + v.Max().String()
}

// corners returns the four corners of the viewport.
func (v Viewport) corners() [4]Point {
	return [4]Point{
		Pt(v.rect.MinX, v.rect.MinY),
		Pt(v.rect.MaxX, v.rect.MinY),
		Pt(v.rect.MinX, v.rect.MaxY),
		Pt(v.rect.MaxX, v.rect.MaxY),
	}
}

func (v Viewport) outcode(p Point) clip.Code {
	return clip.Outcode(v.rect, p.X, p.Y)
}
