package region

// Operation names a Boolean set operation over two regions.
type Operation uint8

// Valid values for Operation.
const (
	OpIntersection Operation = iota
	OpUnion
	OpDifference
)

// Intersection returns the region A ∩ B.
func Intersection(a, b Region) Region {
	if IsEmpty(a) || IsEmpty(b) {
		return Region{}
	}
	return booleanOp(a, b, OpIntersection)
}

// Union returns the region A ∪ B.
func Union(a, b Region) Region {
	if IsEmpty(a) {
		return b
	}
	if IsEmpty(b) {
		return a
	}
	return booleanOp(a, b, OpUnion)
}

// Difference returns the region A \ B.
func Difference(a, b Region) Region {
	if IsEmpty(a) {
		return Region{}
	}
	if IsEmpty(b) {
		return a
	}
	return booleanOp(a, b, OpDifference)
}

// booleanOp implements every Boolean set operation via a single shared
// pipeline: build the planar arrangement of both operands, classify each
// atomic edge's two sides against the requested operation, keep the edges
// where the two sides disagree (the result's boundary), and trace the kept
// edges back into rings.
func booleanOp(a, b Region, op Operation) Region {
	arrangement := buildArrangement(a, b)

	var kept []directedEdge
	for _, e := range arrangement {
		leftA, rightA := sideMembership(e, operandA, a)
		leftB, rightB := sideMembership(e, operandB, b)

		resultLeft := combine(op, leftA, leftB)
		resultRight := combine(op, rightA, rightB)
		if resultLeft == resultRight {
			continue // interior on both sides, or exterior on both: not a boundary edge
		}

		if resultLeft {
			kept = append(kept, directedEdge{from: e.p1, to: e.p2})
		} else {
			kept = append(kept, directedEdge{from: e.p2, to: e.p1})
		}
	}

	rings := traceRings(kept)
	return assembleRegion(rings)
}
