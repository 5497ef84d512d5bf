package regiontree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/he-la/fastmono/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (t *Tree[C, D]) inorderKeys() []C {
	var keys []C
	var walk func(*Node[C, D])
	walk = func(n *Node[C, D]) {
		if n == t.nilv {
			return
		}
		walk(n.left)
		keys = append(keys, n.Key)
		walk(n.right)
	}
	walk(t.root)
	return keys
}

// blackHeight verifies the red-black invariants (no red-red edges, every
// path from a node to a descendant nil has the same number of black
// nodes) and returns the black height, or fails the test.
func blackHeight[C numeric.Coord, D any](t *testing.T, tr *Tree[C, D], n *Node[C, D]) int {
	t.Helper()
	if n == tr.nilv {
		return 1
	}
	if n.color == red {
		require.False(t, n.left.color == red, "red node has red left child")
		require.False(t, n.right.color == red, "red node has red right child")
	}
	left := blackHeight(t, tr, n.left)
	right := blackHeight(t, tr, n.right)
	require.Equal(t, left, right, "black height mismatch")
	if n.color == black {
		return left + 1
	}
	return left
}

func TestInsertKeepsSortedOrder(t *testing.T) {
	tr := New[float64, string]()
	values := []float64{5, 2, 8, 1, 9, 3, 7, 4, 6, 0}
	for _, v := range values {
		tr.Insert(v, "x")
	}
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, tr.inorderKeys())
	assert.Equal(t, black, tr.root.color)
	blackHeight(t, tr, tr.root)
}

func TestFindFloorQuery(t *testing.T) {
	tr := New[float64, float64]()
	for _, v := range []float64{1, 3, 5, 7, 9} {
		tr.Insert(v, v)
	}
	cases := []struct {
		query    float64
		expected float64
		ok       bool
	}{
		{0, 0, false},
		{1, 1, true},
		{2, 1, true},
		{5, 5, true},
		{8.5, 7, true},
		{100, 9, true},
	}
	for _, c := range cases {
		got, ok := tr.Find(c.query)
		assert.Equal(t, c.ok, ok)
		if c.ok {
			assert.Equal(t, c.expected, got)
		}
	}
}

func TestSetKeyWithinGapPreservesOrder(t *testing.T) {
	tr := New[float64, string]()
	a := tr.Insert(1, "a")
	b := tr.Insert(5, "b")
	c := tr.Insert(10, "c")
	_ = a
	tr.SetKey(b, 7) // still between a and c
	assert.Equal(t, []float64{1, 7, 10}, tr.inorderKeys())
	got, ok := tr.Find(7)
	assert.True(t, ok)
	assert.Equal(t, "b", got)
	_ = c
}

func TestRemoveMaintainsInvariants(t *testing.T) {
	tr := New[float64, float64]()
	var handles []*Node[float64, float64]
	for _, v := range []float64{15, 6, 18, 3, 7, 17, 20, 2, 4, 13, 9} {
		handles = append(handles, tr.Insert(v, v))
	}
	blackHeight(t, tr, tr.root)

	// Remove half the nodes in an arbitrary order and check invariants hold
	// after each removal.
	toRemove := []int{0, 3, 7, 10, 1}
	for _, idx := range toRemove {
		tr.Remove(handles[idx])
		blackHeight(t, tr, tr.root)
	}

	assert.Equal(t, len(handles)-len(toRemove), tr.Len())
	keys := tr.inorderKeys()
	assert.True(t, sort.Float64sAreSorted(keys))
}

func TestRandomizedInsertRemoveAgainstReference(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	tr := New[float64, float64]()
	reference := map[float64]*Node[float64, float64]{}

	for round := 0; round < 500; round++ {
		if len(reference) == 0 || r.Intn(2) == 0 {
			key := float64(r.Intn(1000))
			if _, exists := reference[key]; exists {
				continue
			}
			reference[key] = tr.Insert(key, key)
		} else {
			// Remove an arbitrary existing key.
			for k, n := range reference {
				tr.Remove(n)
				delete(reference, k)
				break
			}
		}
		blackHeight(t, tr, tr.root)

		var expected []float64
		for k := range reference {
			expected = append(expected, k)
		}
		sort.Float64s(expected)
		assert.Equal(t, expected, tr.inorderKeys())
	}
}
