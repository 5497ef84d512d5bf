package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKinds(set *EventSet[float64, uint32]) map[Kind]int {
	counts := map[Kind]int{}
	if set.Ring == nil {
		return counts
	}
	ev := set.Ring
	for {
		counts[ev.Kind]++
		ev = ev.Next
		if ev == set.Ring {
			break
		}
	}
	return counts
}

func classifyCoords(coords []float64) *EventSet[float64, uint32] {
	c := New[float64, uint32](coords)
	return classify[float64, uint32](c, 0, 0, 0, 0)
}

// The "L" shape from spec §8 scenario (d). Its notch is a vertical edge
// from (2,3) to (2,1): the tied x means (2,3) sees no direction reversal
// against its own predecessor and stops the ascending chain outright,
// while (2,1) is where the chain resumes rightward with a reflex angle —
// a SPLIT, not the single MERGE a coarser reading of the shape suggests.
func TestClassifyLShapeNotchIsReflex(t *testing.T) {
	coords := []float64{0, 0, 0, 3, 2, 3, 2, 1, 3, 1, 3, 0}
	set := classifyCoords(coords)
	counts := countKinds(set)

	// Only the real split at the notch is in the event ring; the sentinel
	// split lives in set.Splits alone.
	assert.Equal(t, 1, counts[KindSplit])
	assert.Equal(t, 1, counts[KindStart])
	assert.Equal(t, 0, counts[KindMerge])
	assert.Equal(t, 2, counts[KindStop])

	require.Len(t, set.Splits, 2)
	var notch *SplitData[float64, uint32]
	for _, s := range set.Splits {
		if !s.Sentinel {
			notch = s
		}
	}
	require.NotNil(t, notch)
	assert.Equal(t, 2.0, notch.X)
	assert.Equal(t, 1.0, notch.Y)
}

// #START + #SPLIT == #STOP + #MERGE is the balance invariant a correct
// classification must satisfy for any simple polygon (counted over the
// event ring, which never contains the sentinel split).
func TestClassifyEventBalance(t *testing.T) {
	cases := [][]float64{
		{0, 0, 0, 1, 1, 1, 1, 0},              // square
		{0, 0, 0, 1, 1, 0},                    // right triangle
		{0, 0, 0, 2, 1, 3, 2, 2, 2, 0},         // convex pentagon
		{0, 0, 0, 3, 2, 3, 2, 1, 3, 1, 3, 0},   // L shape
		{0, 1, 3, 3, 2, 6, 8, 6, 6, 2, 9, 0},   // split + merge
	}
	for _, coords := range cases {
		set := classifyCoords(coords)
		counts := countKinds(set)
		starts, splits := counts[KindStart], counts[KindSplit]
		stops, merges := counts[KindStop], counts[KindMerge]
		assert.Equal(t, stops+merges, starts+splits, "coords=%v counts=%v", coords, counts)
	}
}

func TestClassifyConvexPolygonHasNoMergeOrSplit(t *testing.T) {
	set := classifyCoords([]float64{0, 0, 0, 2, 1, 3, 2, 2, 2, 0})
	counts := countKinds(set)
	assert.Equal(t, 0, counts[KindMerge])
	assert.Equal(t, 0, counts[KindSplit]) // the sentinel is not in the ring
}

func TestClassifySentinelSplitIsPastMaxX(t *testing.T) {
	set := classifyCoords([]float64{0, 0, 0, 1, 1, 1, 1, 0})
	last := set.Splits[len(set.Splits)-1]
	assert.True(t, last.Sentinel)
	assert.Greater(t, last.X, 1.0)
}
