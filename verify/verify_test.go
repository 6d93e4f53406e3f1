package verify

import (
	"strings"
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

func unitSquareInstance() polygon.PolygonWithHoles {
	outer := polygon.New([]point.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)})
	return polygon.NewPolygonWithHoles(outer, nil)
}

func TestVerifyInstance_Square(t *testing.T) {
	assert.True(t, VerifyInstance(unitSquareInstance()))
}

func TestVerifyInstance_BadOrientation(t *testing.T) {
	outer := polygon.New([]point.Point{pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 0)}) // CW
	inst := polygon.NewPolygonWithHoles(outer, nil)
	assert.False(t, VerifyInstance(inst))
}

func TestVerifyInstance_ValidHole(t *testing.T) {
	outer := polygon.New([]point.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)})
	hole := polygon.New([]point.Point{pt(1, 1), pt(1, 2), pt(2, 2), pt(2, 1)}) // CW
	inst := polygon.NewPolygonWithHoles(outer, []polygon.Polygon{hole})
	assert.True(t, VerifyInstance(inst))
}

func TestVerify_ExactCover(t *testing.T) {
	inst := unitSquareInstance()
	solution := []polygon.Polygon{
		polygon.New([]point.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}),
	}
	assert.Equal(t, "", Verify(inst, solution))
}

func TestVerify_EmptySolution(t *testing.T) {
	inst := unitSquareInstance()
	assert.Equal(t, DiagEmptyUnion, Verify(inst, nil))
}

func TestVerify_Undercoverage(t *testing.T) {
	inst := unitSquareInstance()
	solution := []polygon.Polygon{
		polygon.New([]point.Point{pt(0, 0), pt(1, 0), pt(1, 1)}),
	}
	diag := Verify(inst, solution)
	assert.True(t, strings.Contains(diag, "leaves uncovered"))
	assert.True(t, strings.Contains(diag, "1/2"))
}

func TestVerify_LeavesBoundary(t *testing.T) {
	inst := unitSquareInstance()
	solution := []polygon.Polygon{
		polygon.New([]point.Point{pt(0, 0), pt(2, 0), pt(2, 1), pt(0, 1)}),
	}
	assert.Equal(t, DiagLeavesBoundary, Verify(inst, solution))
}

func TestVerify_NonSimplePolygon(t *testing.T) {
	inst := unitSquareInstance()
	solution := []polygon.Polygon{
		polygon.New([]point.Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1)}), // bowtie
	}
	diag := Verify(inst, solution)
	assert.True(t, diag == DiagNonSimple || diag == DiagNonConvex)
}

func TestVerify_ZeroSizePolygon(t *testing.T) {
	inst := unitSquareInstance()
	solution := []polygon.Polygon{
		polygon.New([]point.Point{pt(0, 0), pt(1, 0)}), // 2 vertices, not a placeholder
	}
	assert.Equal(t, DiagZeroSize, Verify(inst, solution))
}

func TestVerify_WrongOrientationPolygon(t *testing.T) {
	inst := unitSquareInstance()
	solution := []polygon.Polygon{
		polygon.New([]point.Point{pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 0)}), // CW square
	}
	assert.Equal(t, DiagWrongOrientation, Verify(inst, solution))
}

// TestVerify_HoleCoveredByConvexPieces covers an instance that actually has
// a hole: a 4x4 outer square with a concentric 2x2 CW hole. The outer
// square's two diagonals pass exactly through the hole's corners, so they
// split the surrounding frame into four congruent convex trapezoids with no
// overlap; their union equals the instance exactly.
func TestVerify_HoleCoveredByConvexPieces(t *testing.T) {
	outer := polygon.New([]point.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)})
	hole := polygon.New([]point.Point{pt(1, 1), pt(1, 3), pt(3, 3), pt(3, 1)}) // CW
	inst := polygon.NewPolygonWithHoles(outer, []polygon.Polygon{hole})
	require.True(t, VerifyInstance(inst))

	solution := []polygon.Polygon{
		polygon.New([]point.Point{pt(0, 4), pt(1, 3), pt(3, 3), pt(4, 4)}), // top
		polygon.New([]point.Point{pt(4, 4), pt(3, 3), pt(3, 1), pt(4, 0)}), // right
		polygon.New([]point.Point{pt(4, 0), pt(3, 1), pt(1, 1), pt(0, 0)}), // bottom
		polygon.New([]point.Point{pt(0, 0), pt(1, 1), pt(1, 3), pt(0, 4)}), // left
	}
	assert.Equal(t, "", Verify(inst, solution))
}
