package predicate

import "github.com/cgshop2023/verifier/polygon"

// Simple reports whether p's boundary is a simple polygon: adjacent edges
// meet only at their shared endpoint, and non-adjacent edges share no
// point. This checks each pair of edges directly: adjacent edges must
// meet only at the shared vertex, and non-adjacent edges must be disjoint.
func Simple(p polygon.Polygon) (bool, error) {
	n := p.VertexCount()
	if n < 3 {
		return false, nil
	}

	for i := 0; i < n; i++ {
		a1, a2 := p.At(i), p.At(i+1)
		for j := i + 1; j < n; j++ {
			b1, b2 := p.At(j), p.At(j+1)

			adjacent := j == i+1 || (i == 0 && j == n-1)
			rel, _ := Intersect(a1, a2, b1, b2)

			if adjacent {
				// Adjacent edges are expected to touch at exactly their
				// shared vertex and nowhere else.
				if rel == SegmentsCrossProper || rel == SegmentsCollinearOverlap {
					return false, nil
				}
				continue
			}

			if rel != SegmentsDisjoint {
				return false, nil
			}
		}
	}
	return true, nil
}
