// Package regiontree implements the red-black interval tree (spec
// component C3): a dynamic ordered map keyed by the y-coordinate of the
// lower boundary of each active region, exposing insert, in-place key
// update, remove, and a floor point-query.
//
// Grounded on original_source/rb_interval.hpp's RB_Interval<T_key,T_data,
// T_ind>, including its sibling()/uncle()/grandfather() node helpers and
// its six-case delete fixup. Since the set of regions is an antichain of
// non-overlapping vertical strips, storing only each region's lower
// boundary is enough to answer "which region vertically contains this y"
// without needing true interval overlap logic.
package regiontree

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/he-la/fastmono/internal/numeric"
)

type color bool

const (
	red   color = true
	black color = false
)

// Node is a handle into the tree. It is returned by Insert and must be
// passed back to SetKey or Remove. A *Node is already opaque to callers
// outside this package, so it is exposed directly rather than wrapped in a
// further indirection — this is the "region handle" named in spec's
// glossary.
type Node[C numeric.Coord, D any] struct {
	Key  C
	Data D

	color               color
	left, right, parent *Node[C, D]
}

// String renders the node's key colorized by its red-black color, the same
// role Trapezoid.String's color-by-shape coding plays in the teacher: red
// for a red node, green for black (black-on-black would be unreadable).
func (n *Node[C, D]) String() string {
	key := fmt.Sprintf("%v", n.Key)
	if n.color == red {
		key = aurora.Red(key).String()
	} else {
		key = aurora.Green(key).String()
	}
	return fmt.Sprintf("Node(%s)", key)
}

// sibling mirrors rb_interval.hpp's sibling() node helper. There are no
// uncle or grandfather helpers: insertFixup and deleteFixup inline that
// logic directly.
func (n *Node[C, D]) sibling() *Node[C, D] {
	if n.parent == nil {
		return nil
	}
	if n.parent.left == n {
		return n.parent.right
	}
	return n.parent.left
}

// Tree is a red-black tree ordered by C, with a shared black sentinel leaf
// standing in for nil children so the fixup routines don't need to
// special-case missing nodes.
type Tree[C numeric.Coord, D any] struct {
	root *Node[C, D]
	nilv *Node[C, D]
	size int
}

// New creates an empty tree.
func New[C numeric.Coord, D any]() *Tree[C, D] {
	nilv := &Node[C, D]{color: black}
	nilv.left, nilv.right, nilv.parent = nilv, nilv, nilv
	return &Tree[C, D]{root: nilv, nilv: nilv}
}

// Len reports the number of nodes currently in the tree.
func (t *Tree[C, D]) Len() int { return t.size }

func (t *Tree[C, D]) leftRotate(x *Node[C, D]) {
	y := x.right
	x.right = y.left
	if y.left != t.nilv {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilv {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[C, D]) rightRotate(x *Node[C, D]) {
	y := x.left
	x.left = y.right
	if y.right != t.nilv {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilv {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// Insert adds a new node with the given key and data, returning a handle
// to it. O(log n).
func (t *Tree[C, D]) Insert(key C, data D) *Node[C, D] {
	z := &Node[C, D]{Key: key, Data: data, color: red, left: t.nilv, right: t.nilv, parent: t.nilv}
	y := t.nilv
	x := t.root
	for x != t.nilv {
		y = x
		if z.Key < x.Key {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	switch {
	case y == t.nilv:
		t.root = z
	case z.Key < y.Key:
		y.left = z
	default:
		y.right = z
	}
	t.size++
	t.insertFixup(z)
	return z
}

func (t *Tree[C, D]) insertFixup(z *Node[C, D]) {
	for z.parent.color == red {
		grandparent := z.parent.parent
		if z.parent == grandparent.left {
			y := grandparent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := grandparent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

// SetKey updates a node's key in place. The caller is responsible for only
// moving a key within the gap between its neighbors — regions are
// non-overlapping strips, so a region's lower-boundary y only ever moves
// within its own gap, and no restructuring is required.
func (t *Tree[C, D]) SetKey(n *Node[C, D], key C) {
	n.Key = key
}

func (t *Tree[C, D]) transplant(u, v *Node[C, D]) {
	switch {
	case u.parent == t.nilv:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[C, D]) minimum(x *Node[C, D]) *Node[C, D] {
	for x.left != t.nilv {
		x = x.left
	}
	return x
}

// Remove deletes the node identified by the handle. O(log n).
func (t *Tree[C, D]) Remove(z *Node[C, D]) {
	y := z
	yOriginalColor := y.color
	var x *Node[C, D]
	switch {
	case z.left == t.nilv:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.nilv:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if yOriginalColor == black {
		t.deleteFixup(x)
	}
	t.size--
}

func (t *Tree[C, D]) deleteFixup(x *Node[C, D]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// Find returns the data of the greatest node with key <= the query key —
// a floor query — and reports whether one was found. Traverses right
// whenever the current node qualifies as a candidate (n.Key <= key),
// remembering it, and left otherwise; the last remembered candidate is the
// answer once the walk falls off the bottom of the tree.
func (t *Tree[C, D]) Find(key C) (result D, ok bool) {
	n := t.root
	var candidate *Node[C, D]
	for n != t.nilv {
		if n.Key > key {
			n = n.left
		} else {
			candidate = n
			n = n.right
		}
	}
	if candidate == nil {
		return result, false
	}
	return candidate.Data, true
}
