package lineclip

import (
	"math"
	"math/big"
	"math/bits"
)

// MaxCoord is the largest coordinate magnitude NewViewport and Clip accept.
// Differences of accepted coordinates always fit in an int.
const MaxCoord = math.MaxInt >> 1

// fastLimit bounds the coordinates for which the products in side and
// IntersectionPoint fit in an int: 2^19 on 64-bit platforms.
const fastLimit = 1 << ((bits.UintSize - 7) / 3)

func inRange(p Point, limit int) bool {
	return p.X >= -limit && p.X <= limit && p.Y >= -limit && p.Y <= limit
}

func fits(a, b, c, d Point) bool {
	return inRange(a, fastLimit) && inRange(b, fastLimit) &&
		inRange(c, fastLimit) && inRange(d, fastLimit)
}

func bigInt(v int) *big.Int {
	return big.NewInt(int64(v))
}

func bigSub(a, b int) *big.Int {
	return new(big.Int).Sub(bigInt(a), bigInt(b))
}

// sideBig returns the sign of s.side(p) without overflow.
func sideBig(s Segment, p Point) int {
	dx := bigSub(s.Finish.X, s.Start.X)
	dy := bigSub(s.Start.Y, s.Finish.Y)
	tx := bigSub(p.X, s.Start.X)
	ty := bigSub(s.Start.Y, p.Y)
	return new(big.Int).Mul(dx, ty).Cmp(new(big.Int).Mul(dy, tx))
}

func coefficientsBig(s Segment) (d, e, f *big.Int) {
	d = bigSub(s.Finish.Y, s.Start.Y)
	e = bigSub(s.Start.X, s.Finish.X)
	f = new(big.Int).Mul(bigInt(s.Start.Y), bigInt(s.Finish.X))
	f.Sub(f, new(big.Int).Mul(bigInt(s.Start.X), bigInt(s.Finish.Y)))
	return d, e, f
}

// mulSub returns a*b - c*d.
func mulSub(a, b, c, d *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Sub(r, new(big.Int).Mul(c, d))
}

// intersectionBig is IntersectionPoint in arbitrary precision. Quo
// truncates toward zero like the int division of the fast path.
func intersectionBig(a, b Segment) (Point, error) {
	da, ea, fa := coefficientsBig(a)
	db, eb, fb := coefficientsBig(b)

	den := mulSub(da, eb, db, ea)
	if den.Sign() == 0 {
		return Point{}, ErrNoIntersection
	}

	x := mulSub(ea, fb, eb, fa)
	x.Quo(x, den)
	y := mulSub(db, fa, da, fb)
	y.Quo(y, den)

	if !fitsInt(x) || !fitsInt(y) {
		return Point{}, ErrCoordinateRange
	}
	return Point{X: int(x.Int64()), Y: int(y.Int64())}, nil
}

func fitsInt(v *big.Int) bool {
	return v.IsInt64() && v.Int64() >= math.MinInt && v.Int64() <= math.MaxInt
}
