package lineclip

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/lineclip/internal/clip"
)

// Clipper clips segments against a fixed Viewport.
//
// A Clipper holds no mutable state; Clip may be called concurrently from
// multiple goroutines.
type Clipper struct {
	vp     Viewport
	logger *slog.Logger
	strict bool
}

// NewClipper creates a clipper for the viewport spanned by its upper-left
// and lower-right corners. It returns ErrInvalidViewport if the corners do
// not span a rectangle with a non-empty interior.
func NewClipper(leftUpper, rightLower Point, opts ...ClipperOption) (*Clipper, error) {
	vp, err := NewViewport(leftUpper, rightLower)
	if err != nil {
		return nil, err
	}
	return NewClipperForViewport(vp, opts...)
}

// NewClipperForViewport creates a clipper for an existing viewport.
func NewClipperForViewport(vp Viewport, opts ...ClipperOption) (*Clipper, error) {
	if vp.IsZero() {
		return nil, fmt.Errorf("%w: zero viewport", ErrInvalidViewport)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Clipper{vp: vp, logger: o.logger, strict: o.strict}, nil
}

// Viewport returns the clipping window.
func (c *Clipper) Viewport() Viewport {
	return c.vp
}

func (c *Clipper) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Clip classifies s against the viewport and returns the part of it that
// lies inside. The input is never modified.
//
// A segment sharing an outer band with both endpoints (at or beyond the
// same side) is Outside. A segment with both endpoints strictly inside is
// FullyInside. Otherwise the four sides are searched for crossings and the
// result is ClippedToBoundary, or Outside when the segment only grazes a
// corner or passes beside it. A segment whose inside part truncates to a
// single grid point is ClippedToBoundary with a zero-length result.
//
// A zero-length segment is always resolved by the first two tests: its
// single point is either strictly inside or at or beyond some side.
//
// Clip returns an error wrapping ErrCoordinateRange for an endpoint beyond
// ±MaxCoord. Any other error wraps ErrInvariantViolation.
func (c *Clipper) Clip(s Segment) (Result, error) {
	if !inRange(s.Start, MaxCoord) || !inRange(s.Finish, MaxCoord) {
		return Result{}, fmt.Errorf("%w: segment %v", ErrCoordinateRange, s)
	}

	c0 := c.vp.outcode(s.Start)
	c1 := c.vp.outcode(s.Finish)

	if clip.Reject(c0, c1) {
		return Result{Segment: s, Class: Outside}, nil
	}
	if clip.Accept(c0, c1) {
		return Result{Segment: s, Class: FullyInside}, nil
	}

	return c.resolve(s, c.cross(s))
}

// crossings is a deduplicated set of boundary intersection points.
// There are four sides, so at most four distinct points.
type crossings struct {
	pts [4]Point
	via [4]BoundarySet
	n   int
}

func (cs *crossings) add(p Point, b Boundary) {
	for i := 0; i < cs.n; i++ {
		if cs.pts[i] == p {
			cs.via[i] = cs.via[i].Add(b)
			return
		}
	}
	cs.pts[cs.n] = p
	cs.via[cs.n] = BoundarySet(0).Add(b)
	cs.n++
}

// extremes returns the indices of the first and last crossing along s.
// Requires at least two crossings.
func (cs *crossings) extremes(s Segment) (int, int) {
	lo, hi := 0, 0
	for i := 1; i < cs.n; i++ {
		if before(s, cs.pts[i], cs.pts[lo]) {
			lo = i
		}
		if before(s, cs.pts[hi], cs.pts[i]) {
			hi = i
		}
	}
	return lo, hi
}

// before reports whether p comes before q when walking from s.Start to
// s.Finish. Points are ordered along the axis s moves most on, then along
// the other one, so distinct points never tie.
func before(s Segment, p, q Point) bool {
	dx := s.Finish.X - s.Start.X
	dy := s.Finish.Y - s.Start.Y

	px, qx := p.X, q.X
	if dx < 0 {
		px, qx = -px, -qx
	}
	py, qy := p.Y, q.Y
	if dy < 0 {
		py, qy = -py, -qy
	}

	if abs(dx) >= abs(dy) {
		return px < qx || px == qx && py < qy
	}
	return py < qy || py == qy && px < qx
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// cross tests every side of the viewport and collects the points where s
// crosses one, including endpoints of s lying on the border.
func (c *Clipper) cross(s Segment) crossings {
	log := c.log()

	var cs crossings
	for i, edge := range c.vp.edges {
		b := Boundary(i)
		if !HasIntersection(s, edge) {
			log.Debug("lineclip: boundary tested", "segment", s, "boundary", b, "hit", false)
			continue
		}

		p, err := IntersectionPoint(s, edge)
		if err != nil {
			log.Debug("lineclip: boundary skipped", "segment", s, "boundary", b, "err", err)
			continue
		}

		log.Debug("lineclip: boundary tested", "segment", s, "boundary", b, "hit", true, "point", p)
		cs.add(p, b)
	}

	// The straddle test may miss an endpoint lying exactly on a side.
	for _, p := range [2]Point{s.Start, s.Finish} {
		if c.vp.Contains(p) || !c.vp.ContainsClosed(p) {
			continue
		}
		for i, edge := range c.vp.edges {
			if onEdge(p, edge) {
				cs.add(p, Boundary(i))
			}
		}
	}
	return cs
}

// onEdge returns true if p lies on the axis-aligned segment e.
func onEdge(p Point, e Segment) bool {
	if e.Start.X == e.Finish.X {
		return p.X == e.Start.X && p.Y >= e.Start.Y && p.Y <= e.Finish.Y
	}
	return p.Y == e.Start.Y && p.X >= e.Start.X && p.X <= e.Finish.X
}

// resolve builds the result of the general case from the crossings found.
func (c *Clipper) resolve(s Segment, cs crossings) (Result, error) {
	switch cs.n {
	case 0:
		if c.vp.Contains(s.Start) || c.vp.Contains(s.Finish) {
			return c.violation(s, "no boundary crossing for a segment with an inside endpoint")
		}
		return Result{Segment: s, Class: Outside}, nil

	case 1:
		p := cs.pts[0]
		end, ok := c.anchor(s)
		if !ok {
			if !c.splitsCorners(s) {
				// Grazes a corner.
				return Result{Segment: s, Class: Outside}, nil
			}
			// The inside part truncates to a single grid point.
			end = p
		}
		return Result{
			Segment: Seg(end, p),
			Class:   ClippedToBoundary,
			Crossed: cs.via[0],
		}, nil
	}

	i, j := cs.extremes(s)
	return Result{
		Segment: Seg(cs.pts[i], cs.pts[j]),
		Class:   ClippedToBoundary,
		Crossed: cs.via[i] | cs.via[j],
	}, nil
}

// splitsCorners reports whether the line through s has viewport corners
// strictly on both sides, i.e. passes through the open rectangle.
func (c *Clipper) splitsCorners(s Segment) bool {
	var neg, pos bool
	for _, p := range c.vp.corners() {
		switch z := s.side(p); {
		case z < 0:
			neg = true
		case z > 0:
			pos = true
		}
	}
	return neg && pos
}

// anchor returns the endpoint of s strictly inside the viewport.
func (c *Clipper) anchor(s Segment) (Point, bool) {
	switch {
	case c.vp.Contains(s.Start):
		return s.Start, true
	case c.vp.Contains(s.Finish):
		return s.Finish, true
	}
	return Point{}, false
}

func (c *Clipper) violation(s Segment, reason string) (Result, error) {
	err := fmt.Errorf("%w: %s: segment %v, viewport %v", ErrInvariantViolation, reason, s, c.vp)
	c.log().Error("lineclip: invariant violated", "segment", s, "viewport", c.vp, "err", err)
	if c.strict {
		panic(err)
	}
	return Result{}, err
}
