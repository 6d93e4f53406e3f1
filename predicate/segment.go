package predicate

import (
	"github.com/cgshop2023/verifier/exactnum"
	"github.com/cgshop2023/verifier/point"
)

// SegmentRelationship classifies how two line segments relate to each
// other, distinguishing proper crossings from endpoint-only coincidences
// and from collinear overlaps.
type SegmentRelationship uint8

// Valid values for SegmentRelationship.
const (
	// SegmentsDisjoint indicates the segments share no point.
	SegmentsDisjoint SegmentRelationship = iota
	// SegmentsCrossProper indicates the segments cross at a single point
	// that is an interior point of both segments.
	SegmentsCrossProper
	// SegmentsTouch indicates the segments meet only at a shared endpoint,
	// or at a single point that is an endpoint of at least one segment.
	SegmentsTouch
	// SegmentsCollinearOverlap indicates the segments are collinear and
	// their closed extents overlap in more than a single point.
	SegmentsCollinearOverlap
)

// onSegment reports whether p, known to be collinear with segment (a, b),
// lies within the closed bounding box of (a, b) - i.e. on the segment.
func onSegment(a, b, p point.Point) bool {
	minX, maxX := a.X(), b.X()
	if minX.Cmp(maxX) > 0 {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y(), b.Y()
	if minY.Cmp(maxY) > 0 {
		minY, maxY = maxY, minY
	}
	return p.X().Cmp(minX) >= 0 && p.X().Cmp(maxX) <= 0 &&
		p.Y().Cmp(minY) >= 0 && p.Y().Cmp(maxY) <= 0
}

// Intersect classifies the intersection between segment (a1, a2) and
// segment (b1, b2) using the standard orientation-based exact segment
// intersection test. When the relationship is SegmentsCrossProper, the
// exact intersection point is also returned.
func Intersect(a1, a2, b1, b2 point.Point) (SegmentRelationship, point.Point) {
	o1 := OrientationOf(a1, a2, b1)
	o2 := OrientationOf(a1, a2, b2)
	o3 := OrientationOf(b1, b2, a1)
	o4 := OrientationOf(b1, b2, a2)

	// Collinear cases: a vertex of one segment lies exactly on the other's
	// line and within its bounding box. Resolve these first since a proper
	// crossing requires all four orientations to be non-collinear. The
	// meeting is a single point unless both segments lie on one line and
	// either the vertex is interior to the other segment or, from a shared
	// endpoint, both segments run on in the same direction.
	if o1 == Collinear && onSegment(a1, a2, b1) {
		if o2 != Collinear || (isEndpoint(b1, a1, a2) && b2.Sub(b1).Dot(a1.Add(a2).Sub(b1).Sub(b1)).Sign() <= 0) {
			return SegmentsTouch, b1
		}
		return SegmentsCollinearOverlap, b1
	}
	if o2 == Collinear && onSegment(a1, a2, b2) {
		if o1 != Collinear || (isEndpoint(b2, a1, a2) && b1.Sub(b2).Dot(a1.Add(a2).Sub(b2).Sub(b2)).Sign() <= 0) {
			return SegmentsTouch, b2
		}
		return SegmentsCollinearOverlap, b2
	}
	if o3 == Collinear && onSegment(b1, b2, a1) {
		if o4 != Collinear || (isEndpoint(a1, b1, b2) && a2.Sub(a1).Dot(b1.Add(b2).Sub(a1).Sub(a1)).Sign() <= 0) {
			return SegmentsTouch, a1
		}
		return SegmentsCollinearOverlap, a1
	}
	if o4 == Collinear && onSegment(b1, b2, a2) {
		if o3 != Collinear || (isEndpoint(a2, b1, b2) && a1.Sub(a2).Dot(b1.Add(b2).Sub(a2).Sub(a2)).Sign() <= 0) {
			return SegmentsTouch, a2
		}
		return SegmentsCollinearOverlap, a2
	}

	if o1 != o2 && o3 != o4 {
		pt, ok := properCrossPoint(a1, a2, b1, b2)
		if ok {
			return SegmentsCrossProper, pt
		}
	}

	return SegmentsDisjoint, point.Point{}
}

func isEndpoint(p, a, b point.Point) bool {
	return p.Eq(a) || p.Eq(b)
}

// properCrossPoint computes the exact intersection point of two segments
// known to cross properly (neither endpoint lies on the other segment).
func properCrossPoint(a1, a2, b1, b2 point.Point) (point.Point, bool) {
	// Solve a1 + t*(a2-a1) = b1 + u*(b2-b1) for t using Cramer's rule.
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.X().Mul(d2.Y()).Sub(d1.Y().Mul(d2.X()))
	if denom.IsZero() {
		return point.Point{}, false
	}
	diff := b1.Sub(a1)
	tNum := diff.X().Mul(d2.Y()).Sub(diff.Y().Mul(d2.X()))
	t, err := tNum.Div(denom)
	if err != nil {
		return point.Point{}, false
	}
	x := a1.X().Add(t.Mul(d1.X()))
	y := a1.Y().Add(t.Mul(d1.Y()))
	return point.New(x, y), true
}

// SegmentContainsPoint reports whether p lies on the closed segment (a, b).
func SegmentContainsPoint(a, b, p point.Point) bool {
	if OrientationOf(a, b, p) != Collinear {
		return false
	}
	return onSegment(a, b, p)
}

// midpoint returns the exact midpoint of segment (a, b).
func midpoint(a, b point.Point) point.Point {
	two := exactnum.FromInt64(2)
	sumX := a.X().Add(b.X())
	sumY := a.Y().Add(b.Y())
	mx, _ := sumX.Div(two)
	my, _ := sumY.Div(two)
	return point.New(mx, my)
}

// Midpoint returns the exact midpoint of segment (a, b). Exported for use
// by the region package, which samples edge midpoints to classify which
// side of each operand an arrangement edge lies on.
func Midpoint(a, b point.Point) point.Point {
	return midpoint(a, b)
}
