// Package clip provides integer region arithmetic for segment clipping.
package clip

// Rect represents an axis-aligned rectangle on the integer grid.
// (MinX, MinY) is the upper-left corner, (MaxX, MaxY) the lower-right one.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewRect creates a Rect from its two corners.
func NewRect(minX, minY, maxX, maxY int) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Empty returns true if the rectangle has no interior.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// ContainsOpen returns true if (x, y) lies strictly inside the rectangle.
func (r Rect) ContainsOpen(x, y int) bool {
	return x > r.MinX && x < r.MaxX && y > r.MinY && y < r.MaxY
}

// ContainsClosed returns true if (x, y) lies inside the rectangle or on its border.
func (r Rect) ContainsClosed(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}
