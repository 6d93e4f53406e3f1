package region

import (
	"github.com/cgshop2023/verifier/exactnum"
	"github.com/cgshop2023/verifier/point"
	"github.com/cgshop2023/verifier/polygon"
	"github.com/cgshop2023/verifier/predicate"
	"github.com/google/btree"
)

// collectEdges flattens every ring of every component of a Region into its
// labeled boundary edges.
func collectEdges(owner operand, r Region) []labeledEdge {
	var out []labeledEdge
	for _, c := range r.components {
		out = append(out, ringEdges(owner, c.Outer(), true)...)
		for _, h := range c.Holes() {
			out = append(out, ringEdges(owner, h, false)...)
		}
	}
	return out
}

func ringEdges(owner operand, p polygon.Polygon, isOuter bool) []labeledEdge {
	n := p.VertexCount()
	edges := make([]labeledEdge, 0, n)
	ref := ringRef{owner: owner, polygon: p, isOuter: isOuter}
	for i := 0; i < n; i++ {
		edges = append(edges, labeledEdge{p1: p.At(i), p2: p.At(i + 1), ring: ref})
	}
	return edges
}

// atomicEdge is a maximal sub-segment of the arrangement that no other edge
// crosses or touches except possibly at its two endpoints. It carries the
// list of original labeled edges it was cut from, each tagged with whether
// its direction matches the atomic edge's canonical direction.
type atomicEdge struct {
	p1, p2 point.Point
	labels []edgeLabel
}

type edgeLabel struct {
	ring          ringRef
	sameDirection bool
}

// breakpointEntry orders points along a single labeled edge by their
// parametric position t = (p-p1)·(p2-p1), using a B-tree so the traversal
// that emits atomic sub-segments sees them in strictly increasing order.
type breakpointEntry struct {
	t exactnum.Number
	p point.Point
}

func breakpointLess(a, b breakpointEntry) bool {
	return a.t.Cmp(b.t) < 0
}

// buildArrangement splits every labeled edge of a and b at every point
// where it meets another labeled edge, then merges coincident sub-segments
// (edges shared verbatim between operands) into single atomic edges.
func buildArrangement(a, b Region) []atomicEdge {
	edges := append(collectEdges(operandA, a), collectEdges(operandB, b)...)

	breakpoints := make([][]point.Point, len(edges))
	for i := range edges {
		breakpoints[i] = []point.Point{edges[i].p1, edges[i].p2}
	}

	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			rel, p := predicate.Intersect(edges[i].p1, edges[i].p2, edges[j].p1, edges[j].p2)
			switch rel {
			case predicate.SegmentsCrossProper, predicate.SegmentsTouch:
				breakpoints[i] = append(breakpoints[i], p)
				breakpoints[j] = append(breakpoints[j], p)
			case predicate.SegmentsCollinearOverlap:
				for _, cand := range []point.Point{edges[i].p1, edges[i].p2, edges[j].p1, edges[j].p2} {
					if predicate.SegmentContainsPoint(edges[i].p1, edges[i].p2, cand) {
						breakpoints[i] = append(breakpoints[i], cand)
					}
					if predicate.SegmentContainsPoint(edges[j].p1, edges[j].p2, cand) {
						breakpoints[j] = append(breakpoints[j], cand)
					}
				}
			}
		}
	}

	bySegment := make(map[[2]string][]edgeLabel)
	endpoints := make(map[[2]string][2]point.Point)
	var order [][2]string

	for i, e := range edges {
		ordered := sortAlongEdge(e, breakpoints[i])
		for k := 0; k+1 < len(ordered); k++ {
			p1, p2 := ordered[k], ordered[k+1]
			if p1.Eq(p2) {
				continue
			}
			key, sameDir := canonicalKey(p1, p2)
			bySegment[key] = append(bySegment[key], edgeLabel{ring: e.ring, sameDirection: sameDir})
			if _, ok := endpoints[key]; !ok {
				if sameDir {
					endpoints[key] = [2]point.Point{p1, p2}
				} else {
					endpoints[key] = [2]point.Point{p2, p1}
				}
				order = append(order, key)
			}
		}
	}

	out := make([]atomicEdge, 0, len(order))
	for _, key := range order {
		ep := endpoints[key]
		out = append(out, atomicEdge{p1: ep[0], p2: ep[1], labels: bySegment[key]})
	}
	return out
}

// canonicalKey returns a direction-independent key for the undirected
// segment (p1,p2), along with whether (p1,p2) matches the canonical
// (lexicographically smaller-first) direction used by that key.
func canonicalKey(p1, p2 point.Point) ([2]string, bool) {
	s1, s2 := p1.String(), p2.String()
	if s1 <= s2 {
		return [2]string{s1, s2}, true
	}
	return [2]string{s2, s1}, false
}

// sortAlongEdge orders pts by their parametric position along e, using a
// B-tree keyed on that position so duplicate breakpoints (the common case:
// every edge's own two endpoints plus zero or more intersection points)
// collapse naturally as the tree is built.
func sortAlongEdge(e labeledEdge, pts []point.Point) []point.Point {
	dir := e.vector()
	tree := btree.NewG(32, breakpointLess)
	for _, p := range pts {
		t := p.Sub(e.p1).Dot(dir)
		tree.ReplaceOrInsert(breakpointEntry{t: t, p: p})
	}
	out := make([]point.Point, 0, tree.Len())
	tree.Ascend(func(item breakpointEntry) bool {
		out = append(out, item.p)
		return true
	})
	return out
}
