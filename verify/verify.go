// Package verify composes the exact predicates and Boolean set operations
// into the full minimum-convex-cover acceptance check: is a candidate
// solution a valid cover of an instance domain, and if not, why.
package verify

import (
	"github.com/cgshop2023/verifier/polygon"
	"github.com/cgshop2023/verifier/predicate"
	"github.com/cgshop2023/verifier/region"
)

// Fixed diagnostic strings. On failure Verify returns one of these, or the
// coverage message "the union of the polygons leaves uncovered <area> of
// the instance"; it returns "" on success.
const (
	DiagEmptyUnion       = "polygons have empty union"
	DiagZeroSize         = "solution contains polygons of zero size"
	DiagNonSimple        = "solution contains non-simple polygon"
	DiagNonConvex        = "solution contains non-convex polygon"
	DiagWrongOrientation = "solution polygon has wrong orientation"
	DiagLeavesBoundary   = "solution polygon leaves the instance boundary"
)

// VerifyInstance reports whether I is a well-formed instance domain: its
// outer boundary is simple and counter-clockwise with positive area, each
// hole is simple and clockwise with negative area, each hole lies inside
// the outer boundary, and holes are pairwise interior-disjoint.
func VerifyInstance(inst polygon.PolygonWithHoles) bool {
	outer := inst.Outer()
	if ok, err := predicate.Simple(outer); err != nil || !ok {
		return false
	}
	if outer.Area().Sign() <= 0 {
		return false
	}

	holes := inst.Holes()
	for _, h := range holes {
		if ok, err := predicate.Simple(h); err != nil || !ok {
			return false
		}
		if h.Area().Sign() >= 0 {
			return false
		}
		if !holeInsideOuter(h, outer) {
			return false
		}
	}

	for i := 0; i < len(holes); i++ {
		for j := i + 1; j < len(holes); j++ {
			if !holesInteriorDisjoint(holes[i], holes[j]) {
				return false
			}
		}
	}
	return true
}

func holeInsideOuter(hole, outer polygon.Polygon) bool {
	rh := region.New(polygon.NewPolygonWithHoles(hole.Reversed(), nil))
	ro := region.New(polygon.NewPolygonWithHoles(outer, nil))
	return region.IsEmpty(region.Difference(rh, ro))
}

func holesInteriorDisjoint(a, b polygon.Polygon) bool {
	ra := region.New(polygon.NewPolygonWithHoles(a, nil))
	rb := region.New(polygon.NewPolygonWithHoles(b, nil))
	return region.IsEmpty(region.Intersection(ra, rb))
}

// Verify checks solution against instance and returns a diagnostic string
// on failure, or "" if the solution is a valid cover.
//
// Only genuinely empty entries (zero vertices - a placeholder for a
// skipped index) are filtered out before the non-empty-solution check.
// A polygon with one or more vertices that happens to be degenerate is
// kept and fails step 2 rather than being silently dropped: one with
// fewer than three vertices fails with DiagZeroSize. Simplicity is checked
// before area, so a zero-area polygon of three or more vertices that is
// not simple (collinear points, a symmetric bowtie) fails with
// DiagNonSimple.
func Verify(inst polygon.PolygonWithHoles, solution []polygon.Polygon) string {
	filtered := filterPlaceholders(solution)

	instArea := inst.Area()
	if len(filtered) == 0 {
		if instArea.IsZero() {
			return ""
		}
		return DiagEmptyUnion
	}

	for _, q := range filtered {
		if q.VertexCount() < 3 {
			return DiagZeroSize
		}
		ok, err := predicate.Simple(q)
		if err != nil {
			return DiagNonSimple
		}
		if !ok {
			return DiagNonSimple
		}
		if q.Area().IsZero() {
			return DiagZeroSize
		}
		convex, err := predicate.Convex(q)
		if err != nil {
			return DiagNonConvex
		}
		if !convex {
			return DiagNonConvex
		}
		if !q.IsCCW() {
			return DiagWrongOrientation
		}
	}

	instRegion := region.New(inst)
	union := region.Region{}
	for _, q := range filtered {
		piece := region.New(polygon.NewPolygonWithHoles(q, nil))
		if !region.IsEmpty(region.Difference(piece, instRegion)) {
			return DiagLeavesBoundary
		}
		union = region.Union(union, piece)
	}

	uncovered := region.Difference(instRegion, union)
	if !region.IsEmpty(uncovered) {
		return "the union of the polygons leaves uncovered " + region.Area(uncovered).String() + " of the instance"
	}
	return ""
}

func filterPlaceholders(solution []polygon.Polygon) []polygon.Polygon {
	out := make([]polygon.Polygon, 0, len(solution))
	for _, q := range solution {
		if q.VertexCount() > 0 {
			out = append(out, q)
		}
	}
	return out
}
