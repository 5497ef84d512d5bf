// Package statictree implements the static balanced search tree over split
// vertices (spec component C2): built once, in linear time, from a
// pre-sorted slice, answering "successor by key" queries in logarithmic
// time.
//
// Grounded on original_source/bst.hpp's BST<T_key,T_data,T_ind>, whose own
// doc comment describes Find as "finds next higher key." spec §9 notes this
// could equally be a plain sorted-array binary search; an explicit tree is
// kept here because it gives node identity to hang debug output off, the
// way the teacher's own query/trapezoid graph does.
package statictree

import "github.com/he-la/fastmono/internal/numeric"

type node[C numeric.Coord, D any] struct {
	left, right *node[C, D]
	key         C
	data        D
}

// Tree is an immutable balanced search tree, built once from a sorted
// slice and never mutated afterward.
type Tree[C numeric.Coord, D any] struct {
	root *node[C, D]
}

// Build constructs a Tree from data, which must already be sorted
// ascending by the key that keyOf extracts. Construction recurses by
// repeated midpoint split, so the resulting tree is perfectly balanced and
// built in O(n) time.
func Build[C numeric.Coord, D any](data []D, keyOf func(D) C) *Tree[C, D] {
	if len(data) == 0 {
		return &Tree[C, D]{}
	}
	return &Tree[C, D]{root: build(data, keyOf)}
}

func build[C numeric.Coord, D any](data []D, keyOf func(D) C) *node[C, D] {
	if len(data) == 0 {
		return nil
	}
	mid := len(data) / 2
	n := &node[C, D]{key: keyOf(data[mid]), data: data[mid]}
	n.left = build(data[:mid], keyOf)
	n.right = build(data[mid+1:], keyOf)
	return n
}

// Find returns the data element with the smallest key that is still >=
// key — the successor-or-equal by key — and reports whether one was
// found. A tree built over data whose largest key is a sentinel greater
// than every query key will always find a match.
func (t *Tree[C, D]) Find(key C) (result D, ok bool) {
	n := t.root
	var best *node[C, D]
	for n != nil {
		if key <= n.key {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if best == nil {
		return result, false
	}
	return best.data, true
}
