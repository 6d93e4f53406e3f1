// Package predicate implements the exact geometric predicates the verifier
// is built on: point orientation, point-in-polygon classification, segment
// intersection, convexity, and simplicity.
//
// Every predicate here is computed purely in exactnum.Number arithmetic -
// there is no epsilon, no floating-point fallback, and no approximate
// branch.
package predicate

import (
	"fmt"

	"github.com/cgshop2023/verifier/point"
)

// Orientation describes the turn direction of three ordered points.
type Orientation int8

// Valid values for Orientation.
const (
	// Clockwise indicates the three points make a clockwise turn.
	Clockwise Orientation = -1
	// Collinear indicates the three points lie on a single line.
	Collinear Orientation = 0
	// CounterClockwise indicates the three points make a counter-clockwise turn.
	CounterClockwise Orientation = 1
)

// String returns a human-readable name for o.
func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case Collinear:
		return "Collinear"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		panic(fmt.Errorf("unsupported Orientation: %d", o))
	}
}

// OrientationOf computes the exact orientation of the ordered triple
// (a, b, c): the sign of (b.x-a.x)(c.y-a.y) - (b.y-a.y)(c.x-a.x).
//
// A positive sign means a->b->c turns counter-clockwise, negative means
// clockwise, and zero means the three points are collinear.
func OrientationOf(a, b, c point.Point) Orientation {
	ab := b.Sub(a)
	ac := c.Sub(a)
	cross := ab.X().Mul(ac.Y()).Sub(ab.Y().Mul(ac.X()))
	switch cross.Sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}
