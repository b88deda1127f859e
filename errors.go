package lineclip

import "errors"

var (
	// ErrNoIntersection is returned when two lines are parallel and have no
	// single intersection point.
	ErrNoIntersection = errors.New("lineclip: lines are parallel")

	// ErrInvariantViolation reports an inconsistency between the trivial
	// classification and the boundary search. It indicates a bug, not bad input.
	ErrInvariantViolation = errors.New("lineclip: internal invariant violated")

	// ErrInvalidViewport is returned for a viewport whose corners do not
	// satisfy minX < maxX and minY < maxY.
	ErrInvalidViewport = errors.New("lineclip: invalid viewport")

	// ErrCoordinateRange is returned for a coordinate beyond ±MaxCoord, or an
	// intersection point that does not fit in an int.
	ErrCoordinateRange = errors.New("lineclip: coordinate out of range")
)
