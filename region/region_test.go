package region

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

func square(x0, y0, x1, y1 int64) polygon.Polygon {
	return polygon.New([]point.Point{pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1)})
}

func solid(p polygon.Polygon) Region {
	return New(polygon.NewPolygonWithHoles(p, nil))
}

func TestArea_SingleSquare(t *testing.T) {
	r := solid(square(0, 0, 2, 2))
	assert.Equal(t, "4", Area(r).String())
}

func TestIsEmpty_ZeroValue(t *testing.T) {
	assert.True(t, IsEmpty(Region{}))
}

func TestIsEmpty_NonEmpty(t *testing.T) {
	assert.False(t, IsEmpty(solid(square(0, 0, 1, 1))))
}

func TestUnion_DisjointSquares(t *testing.T) {
	a := solid(square(0, 0, 1, 1))
	b := solid(square(5, 5, 6, 6))
	u := Union(a, b)
	require.Len(t, u.Components(), 2)
	assert.Equal(t, "2", Area(u).String())
}

func TestUnion_OverlappingSquares(t *testing.T) {
	// [0,2]x[0,2] union [1,3]x[1,3]: total area = 4+4-1 = 7
	a := solid(square(0, 0, 2, 2))
	b := solid(square(1, 1, 3, 3))
	u := Union(a, b)
	assert.Equal(t, "7", Area(u).String())
}

func TestIntersection_OverlappingSquares(t *testing.T) {
	a := solid(square(0, 0, 2, 2))
	b := solid(square(1, 1, 3, 3))
	i := Intersection(a, b)
	assert.Equal(t, "1", Area(i).String())
}

func TestDifference_OverlappingSquares(t *testing.T) {
	a := solid(square(0, 0, 2, 2))
	b := solid(square(1, 1, 3, 3))
	d := Difference(a, b)
	assert.Equal(t, "3", Area(d).String())
}

func TestIntersection_Disjoint(t *testing.T) {
	a := solid(square(0, 0, 1, 1))
	b := solid(square(5, 5, 6, 6))
	assert.True(t, IsEmpty(Intersection(a, b)))
}

func TestEquals_SameSquareTwoWays(t *testing.T) {
	a := solid(square(0, 0, 2, 2))
	b := solid(square(0, 0, 2, 2))
	assert.True(t, Equals(a, b))
}

func TestEquals_DifferentSquares(t *testing.T) {
	a := solid(square(0, 0, 2, 2))
	b := solid(square(0, 0, 3, 3))
	assert.False(t, Equals(a, b))
}

func TestDifference_CarvesHole(t *testing.T) {
	// [0,4]x[0,4] minus [1,3]x[1,3] leaves a square annulus of area 16-4=12
	a := solid(square(0, 0, 4, 4))
	b := solid(square(1, 1, 3, 3))
	d := Difference(a, b)
	assert.Equal(t, "12", Area(d).String())
	require.Len(t, d.Components(), 1)
	assert.Len(t, d.Components()[0].Holes(), 1)
}
