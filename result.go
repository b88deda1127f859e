package lineclip

import (
	"fmt"
	"strings"
)

// Classification is the outcome of clipping one segment.
type Classification uint8

const (
	// Unclassified is the zero value, returned alongside an error.
	Unclassified Classification = iota

	// FullyInside means both endpoints are strictly inside the viewport;
	// the segment is returned unchanged.
	FullyInside

	// ClippedToBoundary means the segment crosses the viewport border and
	// the result is the part inside it.
	ClippedToBoundary

	// Outside means no part of the segment enters the open viewport.
	Outside
)

var classificationNames = [...]string{
	Unclassified:      "unclassified",
	FullyInside:       "fully inside",
	ClippedToBoundary: "clipped to boundary",
	Outside:           "outside",
}

func (c Classification) String() string {
	if int(c) < len(classificationNames) {
		return classificationNames[c]
	}
	return fmt.Sprintf("Classification(%d)", uint8(c))
}

// BoundarySet is a set of viewport sides.
type BoundarySet uint8

// Add returns s with b included.
func (s BoundarySet) Add(b Boundary) BoundarySet {
	return s | 1<<b
}

// Has returns true if b is in the set.
func (s BoundarySet) Has(b Boundary) bool {
	return s&(1<<b) != 0
}

// Len returns the number of sides in the set.
func (s BoundarySet) Len() int {
	n := 0
	for b := Left; b <= Bottom; b++ {
		if s.Has(b) {
			n++
		}
	}
	return n
}

func (s BoundarySet) String() string {
	var parts []string
	for b := Left; b <= Bottom; b++ {
		if s.Has(b) {
			parts = append(parts, b.String())
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Result is the outcome of Clipper.Clip.
type Result struct {
	// Segment is the input segment for FullyInside and Outside, and the
	// clipped part for ClippedToBoundary.
	//
	// A clipped part bounded by two crossings keeps the direction of the
	// input. A clipped part bounded by one crossing runs from the endpoint
	// inside the viewport to the crossing, whichever end of the input that
	// endpoint was. It is zero-length when the inside part of the input
	// truncates to a single grid point.
	Segment Segment

	// Class is the classification of the input segment.
	Class Classification

	// Crossed holds the sides whose intersection points became endpoints
	// of a ClippedToBoundary result. It is empty otherwise.
	Crossed BoundarySet
}

// Outside returns true if the segment lies entirely outside the viewport.
func (r Result) Outside() bool {
	return r.Class == Outside
}

// String renders the segment, followed by "; is outside" when the
// segment was rejected.
func (r Result) String() string {
	if r.Outside() {
		return r.Segment.String() + "; is outside"
	}
	return r.Segment.String()
}
