package region

import (
	"github.com/cgshop2023/verifier/point"
	"github.com/cgshop2023/verifier/polygon"
	"github.com/cgshop2023/verifier/predicate"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// directedEdge is one kept boundary edge of a Boolean-operation result, with
// the result's interior always on its left.
type directedEdge struct {
	from, to point.Point
}

// traceRings decomposes a set of directed edges - known, by construction,
// to partition into vertex-disjoint-except-at-shared-vertices simple
// cycles - into those cycles.
//
// At each vertex, the next edge to follow is the outgoing edge immediately
// clockwise from the reverse of the incoming direction; this is the
// standard rule for tracing a planar subdivision's faces so that each
// traced cycle bounds a single face with its interior on the left. The
// vertex index is kept in a red-black tree
// (github.com/emirpasic/gods/trees/redblacktree) so that the order in which
// unvisited edges are picked as new ring starts is deterministic rather
// than dependent on Go's randomized map iteration.
func traceRings(edges []directedEdge) [][]point.Point {
	byVertex := redblacktree.NewWithStringComparator()
	for _, e := range edges {
		key := e.from.String()
		v, found := byVertex.Get(key)
		if !found {
			v = []directedEdge{}
		}
		byVertex.Put(key, append(v.([]directedEdge), e))
	}

	visited := make(map[string]bool, len(edges))
	var rings [][]point.Point

	for _, key := range byVertex.Keys() {
		v, _ := byVertex.Get(key)
		for _, start := range v.([]directedEdge) {
			if visited[edgeKey(start)] {
				continue
			}
			rings = append(rings, traceOneRing(start, byVertex, visited))
		}
	}
	return rings
}

func edgeKey(e directedEdge) string {
	return e.from.String() + "->" + e.to.String()
}

// traceOneRing follows directed edges starting at start until it returns to
// start, and returns the ring as its distinct vertices (no repeated closing
// point: ring[i] -> ring[i+1 mod n] reconstructs every traversed edge).
func traceOneRing(start directedEdge, byVertex *redblacktree.Tree, visited map[string]bool) []point.Point {
	var ring []point.Point
	current := start
	for {
		visited[edgeKey(current)] = true
		ring = append(ring, current.from)

		v, _ := byVertex.Get(current.to.String())
		outgoing := v.([]directedEdge)

		reference := current.from.Sub(current.to) // reversed incoming direction
		next := pickClockwiseNext(reference, outgoing)

		if next.from.Eq(start.from) && next.to.Eq(start.to) {
			break
		}
		current = next
	}
	return ring
}

// pickClockwiseNext returns the candidate whose direction (candidate.to -
// candidate.from) is the first one encountered sweeping clockwise from
// reference around the full circle.
func pickClockwiseNext(reference point.Point, candidates []directedEdge) directedEdge {
	best := candidates[0]
	bestDir := best.to.Sub(best.from)
	bestRank := clockwiseRank(reference, bestDir)
	for _, c := range candidates[1:] {
		dir := c.to.Sub(c.from)
		rank := clockwiseRank(reference, dir)
		// within one rank, dir comes first if bestDir is clockwise from it
		if rank < bestRank || (rank == bestRank && dir.Cross(bestDir).Sign() < 0) {
			best, bestDir, bestRank = c, dir, rank
		}
	}
	return best
}

// clockwiseRank measures how far clockwise v is from reference, sweeping
// from just after reference (rank 1) around to reference itself (rank 4,
// a literal U-turn back the way we came, the least preferred choice). It is
// computed purely from cross- and dot-product signs, with no trigonometry
// and no loss of exactness.
func clockwiseRank(reference, v point.Point) int {
	cross := reference.Cross(v)
	dot := reference.Dot(v)
	switch {
	case cross.Sign() < 0:
		return 1 // v is clockwise from reference, within the first half-turn
	case cross.Sign() == 0 && dot.Sign() < 0:
		return 2 // directly opposite reference
	case cross.Sign() > 0:
		return 3 // v is clockwise from reference, within the second half-turn
	default:
		return 4 // same direction as reference: a U-turn
	}
}

// assembleRegion groups traced rings into PolygonWithHoles components:
// every ring with positive or zero signed area is an outer boundary; every ring
// with negative signed area is a hole, nested into whichever outer ring's
// interior contains it.
func assembleRegion(rings [][]point.Point) Region {
	var outers []polygon.Polygon
	var holes []polygon.Polygon

	for _, r := range rings {
		p := polygon.New(r)
		if p.Area().Sign() >= 0 {
			outers = append(outers, p)
		} else {
			holes = append(holes, p)
		}
	}

	holesByOuter := make([][]polygon.Polygon, len(outers))
	for _, h := range holes {
		owner := findOwner(outers, h)
		if owner == -1 {
			continue // a hole with no enclosing outer ring denotes a measure-zero artifact
		}
		holesByOuter[owner] = append(holesByOuter[owner], h)
	}

	components := make([]polygon.PolygonWithHoles, 0, len(outers))
	for i, outer := range outers {
		components = append(components, polygon.NewPolygonWithHoles(outer, holesByOuter[i]))
	}
	return Region{components: components}
}

// findOwner returns the index of the outer ring in outers whose interior
// contains hole, or -1 if none does.
func findOwner(outers []polygon.Polygon, hole polygon.Polygon) int {
	sample := midpoint(hole.At(0), hole.At(1))
	for i, outer := range outers {
		loc := predicate.PointInPolygon(sample, outer)
		if loc == predicate.Inside || loc == predicate.Boundary {
			return i
		}
	}
	return -1
}
