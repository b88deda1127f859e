package clip

import "strings"

// Code is a Cohen-Sutherland region code.
//
// The outer bands are inclusive: a point lying exactly on a border line
// belongs to the band beyond it. Only points strictly inside the rectangle
// have code Inside.
type Code uint8

// Region code bits.
const (
	Left Code = 1 << iota
	Right
	Top
	Bottom
)

// Inside is the code of a point strictly inside the rectangle.
const Inside Code = 0

// Outcode computes the region code of (x, y) relative to r.
func Outcode(r Rect, x, y int) Code {
	code := Inside

	if x <= r.MinX {
		code |= Left
	} else if x >= r.MaxX {
		code |= Right
	}

	if y <= r.MinY {
		code |= Top
	} else if y >= r.MaxY {
		code |= Bottom
	}

	return code
}

// Reject returns true if both endpoints share an outer band, so the
// segment between them cannot enter the open rectangle.
func Reject(c0, c1 Code) bool {
	return c0&c1 != 0
}

// Accept returns true if both endpoints are strictly inside.
func Accept(c0, c1 Code) bool {
	return c0|c1 == Inside
}

func (c Code) String() string {
	if c == Inside {
		return "inside"
	}
	var parts []string
	for _, b := range []struct {
		bit  Code
		name string
	}{{Left, "left"}, {Right, "right"}, {Top, "top"}, {Bottom, "bottom"}} {
		if c&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}
