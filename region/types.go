package region

import (
	"github.com/cgshop2023/verifier/point"
	"github.com/cgshop2023/verifier/polygon"
)

// operand identifies which of the two Boolean-operation inputs a ring
// belongs to.
type operand uint8

const (
	operandA operand = iota
	operandB
)

// ringRef names one ring (the outer boundary or a single hole) of one
// component of one operand.
type ringRef struct {
	owner   operand
	polygon polygon.Polygon
	isOuter bool
}

// labeledEdge is one directed edge of a ringRef, in the ring's stored
// vertex order.
type labeledEdge struct {
	p1, p2 point.Point
	ring   ringRef
}

// vector returns the edge's direction, p2-p1.
func (e labeledEdge) vector() point.Point {
	return e.p2.Sub(e.p1)
}
