package predicate

import (
	"github.com/cgshop2023/verifier/point"
	"github.com/cgshop2023/verifier/polygon"
)

// Location classifies a query point's relationship to a simple polygon's
// boundary.
type Location uint8

// Valid values for Location.
const (
	// Outside indicates the point lies strictly outside the polygon.
	Outside Location = iota
	// Inside indicates the point lies strictly inside the polygon.
	Inside
	// Boundary indicates the point lies exactly on the polygon's boundary.
	Boundary
)

// String returns a human-readable name for l.
func (l Location) String() string {
	switch l {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case Boundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// PointInPolygon classifies q against the simple polygon p using an exact
// ray cast. Boundary membership is checked first via exact collinearity and
// bounding-box containment of each edge, so a point exactly on an edge is
// always reported as Boundary rather than being subject to ray-parity
// ambiguity.
func PointInPolygon(q point.Point, p polygon.Polygon) Location {
	n := p.VertexCount()
	if n < 3 {
		return Outside
	}

	for i := 0; i < n; i++ {
		a := p.At(i)
		b := p.At(i + 1)
		if SegmentContainsPoint(a, b, q) {
			return Boundary
		}
	}

	// Exact ray cast: count edges crossing a horizontal ray from q to +x,
	// using the standard "half-open at the lower endpoint" rule to avoid
	// double-counting vertices the ray passes through.
	inside := false
	for i := 0; i < n; i++ {
		a := p.At(i)
		b := p.At(i + 1)

		ay, by := a.Y(), b.Y()
		qy := q.Y()

		crossesY := (ay.Cmp(qy) > 0) != (by.Cmp(qy) > 0)
		if !crossesY {
			continue
		}

		// x-intersection of edge (a,b) with the horizontal line y = qy:
		// x = a.x + (qy - a.y) * (b.x - a.x) / (b.y - a.y)
		dy := by.Sub(ay)
		t, err := qy.Sub(ay).Div(dy)
		if err != nil {
			continue // dy == 0 cannot happen here since crossesY implies ay != by
		}
		xIntersect := a.X().Add(t.Mul(b.X().Sub(a.X())))

		if xIntersect.Cmp(q.X()) > 0 {
			inside = !inside
		}
	}

	if inside {
		return Inside
	}
	return Outside
}

// PointInPolygonWithHoles classifies q against a polygon-with-holes region:
// Inside the outer boundary and not Inside any hole. A point on any
// boundary (outer or hole) is reported as Boundary.
func PointInPolygonWithHoles(q point.Point, outer polygon.Polygon, holes []polygon.Polygon) Location {
	outerLoc := PointInPolygon(q, outer)
	if outerLoc != Inside {
		return outerLoc
	}
	for _, h := range holes {
		switch PointInPolygon(q, h) {
		case Boundary:
			return Boundary
		case Inside:
			return Outside
		}
	}
	return Inside
}
