package predicate

import "github.com/cgshop2023/verifier/polygon"

// Convex reports whether p is convex:
//
//  1. its boundary is simple (see Simple);
//  2. the orientations of all consecutive edge triples are either all ≥ 0
//     or all ≤ 0, with at least one strictly nonzero;
//  3. its signed area is nonzero.
//
// Collinear vertex triples are tolerated: a convex polygon with redundant
// collinear vertices is still reported convex.
func Convex(p polygon.Polygon) (bool, error) {
	n := p.VertexCount()
	if n < 3 {
		return false, nil
	}
	if p.Area().IsZero() {
		return false, nil
	}
	simple, err := Simple(p)
	if err != nil {
		return false, err
	}
	if !simple {
		return false, nil
	}

	sawPositive := false
	sawNegative := false
	for i := 0; i < n; i++ {
		a := p.At(i)
		b := p.At(i + 1)
		c := p.At(i + 2)
		switch OrientationOf(a, b, c) {
		case CounterClockwise:
			sawPositive = true
		case Clockwise:
			sawNegative = true
		}
		if sawPositive && sawNegative {
			return false, nil
		}
	}
	return sawPositive || sawNegative, nil
}
