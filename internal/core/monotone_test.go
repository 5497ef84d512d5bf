package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangulateCoords partitions and triangulates coords in one step, the
// same pipeline fastmono.Polygon.Indices drives.
func triangulateCoords(t *testing.T, coords []float64) (*Chain[float64, uint32], []uint32) {
	t.Helper()
	c, parts := partitionCoords(t, coords)
	out := Triangulate[float64, uint32](c, parts, nil)
	return c, out
}

// assertValidTriangulation checks invariant 4 from spec §8 (n-2
// triangles, 3(n-2) indices), that every index is in range, and that no
// triangle is collinear (degenerate, zero-area). It does not check
// non-overlap or that every vertex is used.
func assertValidTriangulation(t *testing.T, c *Chain[float64, uint32], out []uint32) {
	t.Helper()
	n := int(c.Len())
	require.Equal(t, 3*(n-2), len(out), "expected %d triangles", n-2)

	for i := 0; i+3 <= len(out); i += 3 {
		a, b, cc := out[i], out[i+1], out[i+2]
		require.Less(t, a, uint32(n))
		require.Less(t, b, uint32(n))
		require.Less(t, cc, uint32(n))

		ax, ay := c.At(a)
		bx, by := c.At(b)
		cx, cy := c.At(cc)
		cross := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
		assert.NotZero(t, cross, "triangle (%d,%d,%d) is degenerate", a, b, cc)
	}
}

func TestTriangulateSquareProducesTwoTriangles(t *testing.T) {
	c, out := triangulateCoords(t, []float64{0, 0, 0, 1, 1, 1, 1, 0})
	assertValidTriangulation(t, c, out)
}

func TestTriangulateRightTriangleIsUnchanged(t *testing.T) {
	c, out := triangulateCoords(t, []float64{0, 0, 0, 1, 1, 0})
	assertValidTriangulation(t, c, out)
	require.Len(t, out, 3)
	seen := map[uint32]bool{out[0]: true, out[1]: true, out[2]: true}
	for i := uint32(0); i < 3; i++ {
		assert.True(t, seen[i], "triangle is missing source vertex %d", i)
	}
}

func TestTriangulateConvexPentagonProducesThreeTriangles(t *testing.T) {
	c, out := triangulateCoords(t, []float64{0, 0, 0, 2, 1, 3, 2, 2, 2, 0})
	assertValidTriangulation(t, c, out)
}

func TestTriangulateLShapeProducesFourTriangles(t *testing.T) {
	c, out := triangulateCoords(t, []float64{0, 0, 0, 3, 2, 3, 2, 1, 3, 1, 3, 0})
	assertValidTriangulation(t, c, out)
}

func TestTriangulateSplitAndMergeShape(t *testing.T) {
	c, out := triangulateCoords(t, []float64{0, 1, 3, 3, 2, 6, 8, 6, 6, 2, 9, 0})
	assertValidTriangulation(t, c, out)
}

// Every source vertex must appear in at least one triangle (invariant 3,
// "vertex conservation").
func TestTriangulateCoversEveryVertex(t *testing.T) {
	coords := []float64{0, 1, 3, 3, 2, 6, 8, 6, 6, 2, 9, 0}
	_, out := triangulateCoords(t, coords)

	seen := make(map[uint32]bool)
	for _, idx := range out {
		seen[idx] = true
	}
	for i := uint32(0); i < uint32(len(coords)/2); i++ {
		assert.True(t, seen[i], "vertex %d not used in any triangle", i)
	}
}

func TestIsFanVisibleRejectsCollinearTriple(t *testing.T) {
	c := New[float64, uint32]([]float64{0, 0, 1, 0, 2, 0})
	assert.False(t, isFanVisible[float64, uint32](c, [3]uint32{0, 1, 2}))
}

func TestIsFanVisibleAcceptsClockwiseTriple(t *testing.T) {
	c := New[float64, uint32]([]float64{0, 0, 0, 1, 1, 1})
	assert.True(t, isFanVisible[float64, uint32](c, [3]uint32{0, 1, 2}))
}
