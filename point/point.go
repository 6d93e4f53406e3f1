// Package point defines Point, the foundational exact geometric primitive
// used throughout the verifier. Every other geometry type (polygon,
// polygon-with-holes, region) is built on top of it.
//
// Every coordinate is an exact rational number: every operation here is
// exact, and there is no epsilon-tolerant comparison - two points are equal
// iff their coordinates are exactly equal.
package point

import "github.com/cgshop2023/verifier/exactnum"

// Point is an immutable ordered pair (x, y) ∈ ℚ².
type Point struct {
	x exactnum.Number
	y exactnum.Number
}

// New creates a new Point with the given exact coordinates.
func New(x, y exactnum.Number) Point {
	return Point{x: x, y: y}
}

// X returns the point's x-coordinate.
func (p Point) X() exactnum.Number { return p.x }

// Y returns the point's y-coordinate.
func (p Point) Y() exactnum.Number { return p.y }

// Eq reports whether p and q denote exactly the same coordinates.
func (p Point) Eq(q Point) bool {
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Sub returns p - q, treating both as position vectors.
func (p Point) Sub(q Point) Point {
	return Point{x: p.x.Sub(q.x), y: p.y.Sub(q.y)}
}

// Add returns p + q, treating both as position vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x.Add(q.x), y: p.y.Add(q.y)}
}

// Cross returns the exact 2D cross product p × q (p.x*q.y - p.y*q.x),
// treating both points as vectors from the origin.
func (p Point) Cross(q Point) exactnum.Number {
	return p.x.Mul(q.y).Sub(p.y.Mul(q.x))
}

// Dot returns the exact dot product p · q.
func (p Point) Dot(q Point) exactnum.Number {
	return p.x.Mul(q.x).Add(p.y.Mul(q.y))
}

// Less defines a total order over points (lexicographic by x then y), used
// to find canonical starting vertices (e.g. the lowest-leftmost point of a
// ring) and as a sweep-line ordering key.
func (p Point) Less(q Point) bool {
	if c := p.x.Cmp(q.x); c != 0 {
		return c < 0
	}
	return p.y.Cmp(q.y) < 0
}

// String renders p as "(x, y)" using each coordinate's lossless rational
// form, e.g. "(1/2, -3)".
func (p Point) String() string {
	return "(" + p.x.String() + ", " + p.y.String() + ")"
}
