// Package polygon defines Polygon and PolygonWithHoles, the exact polygonal
// building blocks the verifier operates on.
//
// Coordinates are exact rationals throughout, and PolygonWithHoles models
// an outer boundary together with its holes as a flat, explicit value
// rather than an implicit parent/child nesting.
package polygon

import (
	"github.com/cgshop2023/verifier/exactnum"
	"github.com/cgshop2023/verifier/point"
)

// Polygon is a finite, ordered sequence of points interpreted as a closed
// polyline v0 -> v1 -> ... -> v(n-1) -> v0. It retains its points verbatim:
// construction never reorders, deduplicates, or validates them. Validity
// (simplicity, orientation, non-degeneracy) is checked at use sites by the
// predicate package.
type Polygon struct {
	points []point.Point
}

// New constructs a Polygon from pts, retained verbatim and in order.
func New(pts []point.Point) Polygon {
	cp := make([]point.Point, len(pts))
	copy(cp, pts)
	return Polygon{points: cp}
}

// Boundary returns the polygon's vertex sequence. The returned slice is a
// copy; mutating it does not affect the polygon.
func (p Polygon) Boundary() []point.Point {
	cp := make([]point.Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// VertexCount returns the number of vertices in the polygon's boundary.
func (p Polygon) VertexCount() int {
	return len(p.points)
}

// At returns the i-th vertex, indices wrapping modulo VertexCount so that
// edges can be walked as p.At(i) -> p.At(i+1) without a bounds check at the
// seam.
func (p Polygon) At(i int) point.Point {
	n := len(p.points)
	return p.points[((i%n)+n)%n]
}

// Area returns the exact signed area A(P) = ½ Σ (xi·yi+1 - xi+1·yi). The
// result is positive iff the boundary is wound counter-clockwise, negative
// iff clockwise, and zero for a degenerate polygon (fewer than 3 vertices,
// or collinear/coincident points summing to no enclosed area).
func (p Polygon) Area() exactnum.Number {
	n := len(p.points)
	if n < 3 {
		return exactnum.Zero()
	}
	sum := exactnum.Zero()
	for i := 0; i < n; i++ {
		a := p.points[i]
		b := p.points[(i+1)%n]
		sum = sum.Add(a.X().Mul(b.Y()).Sub(b.X().Mul(a.Y())))
	}
	two := exactnum.FromInt64(2)
	result, _ := sum.Div(two)
	return result
}

// IsCCW reports whether the polygon's signed area is strictly positive.
func (p Polygon) IsCCW() bool {
	return p.Area().Sign() > 0
}

// Reversed returns a new Polygon with the vertex order reversed, which
// negates the signed area.
func (p Polygon) Reversed() Polygon {
	n := len(p.points)
	out := make([]point.Point, n)
	for i, v := range p.points {
		out[n-1-i] = v
	}
	return New(out)
}

// PolygonWithHoles is an outer boundary B (expected CCW, A(B) > 0) together
// with a sequence of hole boundaries (each expected CW, A(H) < 0). It stores
// its boundary and holes verbatim: construction never re-orients or
// re-orders them.
type PolygonWithHoles struct {
	outer Polygon
	holes []Polygon
}

// NewPolygonWithHoles constructs a PolygonWithHoles from an outer boundary
// and a (possibly empty) sequence of holes, retained verbatim.
func NewPolygonWithHoles(outer Polygon, holes []Polygon) PolygonWithHoles {
	cp := make([]Polygon, len(holes))
	copy(cp, holes)
	return PolygonWithHoles{outer: outer, holes: cp}
}

// Outer returns the outer boundary.
func (p PolygonWithHoles) Outer() Polygon {
	return p.outer
}

// Holes returns the hole boundaries. The returned slice is a copy.
func (p PolygonWithHoles) Holes() []Polygon {
	cp := make([]Polygon, len(p.holes))
	copy(cp, p.holes)
	return cp
}

// Area returns the signed outer area minus the unsigned area of each hole:
// A(outer) - Σ|A(hole)|. With the expected orientation (outer CCW, holes
// CW) this equals outer's positive area plus the holes' (already negative)
// signed areas.
func (p PolygonWithHoles) Area() exactnum.Number {
	total := p.outer.Area()
	for _, h := range p.holes {
		total = total.Sub(h.Area().Abs())
	}
	return total
}
