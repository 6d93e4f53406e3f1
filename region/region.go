// Package region implements the exact polygon Boolean kernel: intersection,
// difference, union, area, emptiness, and region equality over
// [polygon.PolygonWithHoles] values.
//
// The kernel builds a planar arrangement of every operand edge, splitting
// edges at their pairwise intersections, classifying each resulting atomic
// edge against both operands, and tracing the surviving directed edges back
// into simple rings. Edge-splitting uses a B-tree (github.com/google/btree)
// to order breakpoints along an edge, and a red-black tree
// (github.com/emirpasic/gods/trees/redblacktree) to index the distinct
// arrangement vertices for deterministic, ordered face-tracing.
//
// No coordinate in this package is ever a float64; every comparison and
// every intersection point is computed in exactnum.Number arithmetic.
package region

import (
	"github.com/cgshop2023/verifier/exactnum"
	"github.com/cgshop2023/verifier/polygon"
)

// Region is an unordered collection of polygons-with-holes whose closures
// are pairwise disjoint. The zero value is the empty region.
type Region struct {
	components []polygon.PolygonWithHoles
}

// New constructs a Region from its components, retained verbatim.
func New(components ...polygon.PolygonWithHoles) Region {
	cp := make([]polygon.PolygonWithHoles, len(components))
	copy(cp, components)
	return Region{components: cp}
}

// Components returns the region's polygon-with-holes components.
func (r Region) Components() []polygon.PolygonWithHoles {
	cp := make([]polygon.PolygonWithHoles, len(r.components))
	copy(cp, r.components)
	return cp
}

// Area returns the exact total area of the region: the sum of each
// component's area (outer minus holes).
func Area(r Region) exactnum.Number {
	total := exactnum.Zero()
	for _, c := range r.components {
		total = total.Add(c.Area())
	}
	return total
}

// IsEmpty reports whether r has no 2-dimensional component. Isolated
// boundary curves (zero-area slivers the kernel may produce as
// intermediate artifacts) count as empty.
func IsEmpty(r Region) bool {
	for _, c := range r.components {
		if !c.Area().IsZero() {
			return false
		}
	}
	return true
}

// Equals reports whether a and b denote the same region modulo measure-zero
// boundary differences: equals(A,B) = is_empty(A−B) ∧ is_empty(B−A).
func Equals(a, b Region) bool {
	return IsEmpty(Difference(a, b)) && IsEmpty(Difference(b, a))
}
