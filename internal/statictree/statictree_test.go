package statictree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSuccessor(t *testing.T) {
	data := []float64{1, 3, 5, 7, 9, 11}
	tree := Build(data, func(f float64) float64 { return f })

	cases := []struct {
		query    float64
		expected float64
	}{
		{0, 1},
		{1, 1},
		{2, 3},
		{5, 5},
		{5.5, 7},
		{11, 11},
	}
	for _, c := range cases {
		got, ok := tree.Find(c.query)
		assert.True(t, ok)
		assert.Equal(t, c.expected, got)
	}
}

func TestFindPastEndFails(t *testing.T) {
	tree := Build([]float64{1, 2, 3}, func(f float64) float64 { return f })
	_, ok := tree.Find(4)
	assert.False(t, ok)
}

func TestEmptyTree(t *testing.T) {
	tree := Build([]float64{}, func(f float64) float64 { return f })
	_, ok := tree.Find(0)
	assert.False(t, ok)
}

func TestSingleElement(t *testing.T) {
	tree := Build([]float64{42}, func(f float64) float64 { return f })
	got, ok := tree.Find(0)
	assert.True(t, ok)
	assert.Equal(t, 42.0, got)
}
