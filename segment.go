package lineclip

import "fmt"

// Segment is a finite straight line piece from Start to Finish.
// Start and Finish may coincide.
type Segment struct {
	Start, Finish Point
}

// Seg is a convenience function to create a Segment.
func Seg(start, finish Point) Segment {
	return Segment{Start: start, Finish: finish}
}

// IsDegenerate returns true if the segment has zero length.
func (s Segment) IsDegenerate() bool {
	return s.Start == s.Finish
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{Start: s.Finish, Finish: s.Start}
}

// Straddle returns the components used by the straddle test.
// dx runs from Start to Finish while dy runs from Finish to Start; both
// sides of the test must use the same convention.
func (s Segment) Straddle() (dx, dy int) {
	return s.Finish.X - s.Start.X, s.Start.Y - s.Finish.Y
}

// Coefficients returns (d, e, f) such that d*x + e*y + f = 0 holds for
// every point of the infinite line through Start and Finish.
// f overflows an int for coordinates beyond about sqrt(MaxInt/2).
func (s Segment) Coefficients() (d, e, f int) {
	d = s.Finish.Y - s.Start.Y
	e = s.Start.X - s.Finish.X
	f = s.Start.Y*s.Finish.X - s.Start.X*s.Finish.Y
	return d, e, f
}

// String renders the segment as "(x0; y0) - (x1; y1)".
func (s Segment) String() string {
	return s.Start.String() + " - " + s.Finish.String()
}

// side returns the cross product of the straddle components of s and of
// the segment from s.Start to p. Its sign tells which side of s p is on;
// for large coordinates only the sign is returned.
func (s Segment) side(p Point) int {
	if !fits(s.Start, s.Finish, p, p) {
		return sideBig(s, p)
	}
	dx, dy := s.Straddle()
	tx, ty := Seg(s.Start, p).Straddle()
	return Pt(dx, dy).Cross(Pt(tx, ty))
}

// straddles returns true if the endpoints of o lie on opposite sides of
// the line through s. A zero cross product counts as non-negative.
func (s Segment) straddles(o Segment) bool {
	zs := s.side(o.Start)
	zf := s.side(o.Finish)
	if zs < 0 {
		return zf >= 0
	}
	return zf < 0
}

// HasIntersection reports whether a and b properly intersect: each segment
// straddles the line through the other. Collinear overlaps report false.
func HasIntersection(a, b Segment) bool {
	return a.straddles(b) && b.straddles(a)
}

// IntersectionPoint returns the point where the lines through a and b
// meet. Coordinates are truncated toward zero. ErrNoIntersection is
// returned when the lines are parallel, and ErrCoordinateRange when the
// point does not fit in an int.
//
// Coordinates up to 2^19 in magnitude (2^8 with a 32-bit int) are solved in
// int arithmetic; larger ones in arbitrary precision.
func IntersectionPoint(a, b Segment) (Point, error) {
	if !fits(a.Start, a.Finish, b.Start, b.Finish) {
		p, err := intersectionBig(a, b)
		if err != nil {
			return Point{}, fmt.Errorf("%w: %v and %v", err, a, b)
		}
		return p, nil
	}

	da, ea, fa := a.Coefficients()
	db, eb, fb := b.Coefficients()

	den := da*eb - db*ea
	if den == 0 {
		return Point{}, fmt.Errorf("%w: %v and %v", ErrNoIntersection, a, b)
	}

	return Point{
		X: (ea*fb - eb*fa) / den,
		Y: (db*fa - da*fb) / den,
	}, nil
}
