package predicate

import (
	"testing"

	"github.com/cgshop2023/verifier/exactnum"
	"github.com/cgshop2023/verifier/point"
	"github.com/cgshop2023/verifier/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) point.Point {
	return point.New(exactnum.FromInt64(x), exactnum.FromInt64(y))
}

func unitSquare() polygon.Polygon {
	return polygon.New([]point.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)})
}

func TestOrientationOf(t *testing.T) {
	assert.Equal(t, CounterClockwise, OrientationOf(pt(0, 0), pt(1, 0), pt(1, 1)))
	assert.Equal(t, Clockwise, OrientationOf(pt(0, 0), pt(1, 1), pt(1, 0)))
	assert.Equal(t, Collinear, OrientationOf(pt(0, 0), pt(1, 0), pt(2, 0)))
}

func TestIntersect_ProperCross(t *testing.T) {
	rel, p := Intersect(pt(0, 0), pt(2, 2), pt(0, 2), pt(2, 0))
	assert.Equal(t, SegmentsCrossProper, rel)
	assert.True(t, p.Eq(pt(1, 1)))
}

func TestIntersect_Disjoint(t *testing.T) {
	rel, _ := Intersect(pt(0, 0), pt(1, 0), pt(0, 5), pt(1, 5))
	assert.Equal(t, SegmentsDisjoint, rel)
}

func TestIntersect_SharedEndpoint(t *testing.T) {
	rel, p := Intersect(pt(0, 0), pt(1, 1), pt(1, 1), pt(2, 0))
	assert.Equal(t, SegmentsTouch, rel)
	assert.True(t, p.Eq(pt(1, 1)))
}

func TestIntersect_CollinearOverlap(t *testing.T) {
	rel, _ := Intersect(pt(0, 0), pt(2, 0), pt(1, 0), pt(3, 0))
	assert.Equal(t, SegmentsCollinearOverlap, rel)
}

func TestPointInPolygon_Classification(t *testing.T) {
	sq := unitSquare()
	half := point.New(mustParse("1/2"), mustParse("1/2"))
	assert.Equal(t, Inside, PointInPolygon(half, sq))
	assert.Equal(t, Boundary, PointInPolygon(pt(0, 0), sq))
	assert.Equal(t, Boundary, PointInPolygon(point.New(mustParse("1/2"), exactnum.FromInt64(0)), sq))
	assert.Equal(t, Outside, PointInPolygon(pt(2, 2), sq))
}

func mustParse(s string) exactnum.Number {
	n, err := exactnum.Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func TestConvex_Square(t *testing.T) {
	ok, err := Convex(unitSquare())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConvex_Bowtie(t *testing.T) {
	bowtie := polygon.New([]point.Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1)})
	ok, err := Convex(bowtie)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConvex_NonConvex(t *testing.T) {
	// an "L" shape
	l := polygon.New([]point.Point{
		pt(0, 0), pt(2, 0), pt(2, 1), pt(1, 1), pt(1, 2), pt(0, 2),
	})
	ok, err := Convex(l)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSimple_Square(t *testing.T) {
	ok, err := Simple(unitSquare())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSimple_Bowtie(t *testing.T) {
	bowtie := polygon.New([]point.Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1)})
	ok, err := Simple(bowtie)
	require.NoError(t, err)
	assert.False(t, ok)
}
