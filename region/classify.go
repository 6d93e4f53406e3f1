package region

import (
	"github.com/cgshop2023/verifier/point"
	"github.com/cgshop2023/verifier/predicate"
)

// sideMembership reports whether the region (A or B, whichever ref's labels
// belong to) contains the left side and the right side of a canonically
// directed atomic edge.
//
// When one or more labels from that operand touch the edge, membership
// follows directly from the touching ring's own orientation: a ring's own
// interior lies on its left when traversed in the direction that makes its
// signed area positive, and on its right otherwise. Crossing from a ring's
// own interior into its exterior adds that ring's boundary to the operand's
// region if the ring is an outer boundary, or removes it if the ring is a
// hole.
//
// When no label from that operand touches the edge, the edge's open
// interior cannot lie on that operand's boundary (every crossing was
// already cut into its own breakpoint while building the arrangement), so
// both sides share one membership value, found by a single point-in-region
// test at the edge's midpoint.
func sideMembership(e atomicEdge, owner operand, r Region) (left, right bool) {
	var touching []edgeLabel
	for _, l := range e.labels {
		if l.ring.owner == owner {
			touching = append(touching, l)
		}
	}

	if len(touching) == 0 {
		mid := midpoint(e.p1, e.p2)
		inside := insideRegion(mid, r)
		return inside, inside
	}

	// In a well-formed operand, at most one ring can touch a given edge
	// (rings within one operand don't cross or overlap each other), but
	// accumulate defensively in case of an exactly coincident hole/outer
	// edge pair.
	left, right = false, false
	for _, l := range touching {
		ringInteriorOnLeft := l.ring.polygon.IsCCW() == l.sameDirection
		memberInside, memberOutside := true, false
		if !l.ring.isOuter {
			memberInside, memberOutside = false, true
		}
		if ringInteriorOnLeft {
			left = left || memberInside
			right = right || memberOutside
		} else {
			left = left || memberOutside
			right = right || memberInside
		}
	}
	return left, right
}

// insideRegion reports whether q lies inside (not merely on the boundary
// of) any component of r.
func insideRegion(q point.Point, r Region) bool {
	for _, c := range r.components {
		if predicate.PointInPolygonWithHoles(q, c.Outer(), c.Holes()) == predicate.Inside {
			return true
		}
	}
	return false
}

// midpoint returns the exact midpoint of segment (a,b).
func midpoint(a, b point.Point) point.Point {
	return predicate.Midpoint(a, b)
}

// combine applies a Boolean set operation to a pair of per-operand
// membership values.
func combine(op Operation, inA, inB bool) bool {
	switch op {
	case OpIntersection:
		return inA && inB
	case OpUnion:
		return inA || inB
	case OpDifference:
		return inA && !inB
	default:
		return false
	}
}
