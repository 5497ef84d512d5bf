// Package core implements the plane-sweep monotone partitioner and the
// fan triangulator that consumes its output (spec components C1, C4, C5,
// C6): the polygon's array-backed vertex ring, event classification, the
// three-phase sweep that resolves merge/split vertices into diagonals, and
// the final per-piece triangulation.
package core

import "github.com/he-la/fastmono/internal/numeric"

// This file implements the polygon chain (spec component C1): vertex
// storage overlaid with a doubly-linked ring whose next/prev links may be
// rewritten by diagonals.
//
// This is the Go rendition of original_source/polygon.hpp's Vertex/Polygon:
// the C++ version is a std::vector<Vertex*>, an arena of heap-allocated
// nodes addressed by pointer. A Go slice of value structs addressed by
// index is the idiomatic equivalent — the teacher reaches for the same
// pattern wherever it reasonably can (PointStack, TrapezoidNeighborList are
// both slices standing in for what a pointer-heavy implementation would do
// with linked structures).

// Vertex is one point of the polygon, with ring links into the same
// backing slice. Initially Next[i] = i+1 mod n and Prev[i] = i-1 mod n;
// diagonals overwrite these fields in place.
type Vertex[C numeric.Coord, I numeric.Index] struct {
	X, Y C
	Next I
	Prev I
}

// Chain is the array-backed vertex ring.
type Chain[C numeric.Coord, I numeric.Index] struct {
	Vertices []Vertex[C, I]
}

// New builds a chain from a flat buffer of alternating x, y coordinates,
// wiring up the canonical (non-diagonal) ring. The caller is responsible
// for validating buf (see the public Polygon facade); New assumes
// len(buf) is even and len(buf)/2 >= 3.
func New[C numeric.Coord, I numeric.Index](buf []C) *Chain[C, I] {
	c := &Chain[C, I]{}
	c.Set(buf)
	return c
}

// Set rewires the chain from buf, reusing the existing backing slice where
// possible, and resets the ring to the canonical non-diagonal cycle. Like
// New, it assumes buf has already been validated.
func (c *Chain[C, I]) Set(buf []C) {
	n := len(buf) / 2
	if cap(c.Vertices) >= n {
		c.Vertices = c.Vertices[:n]
	} else {
		c.Vertices = make([]Vertex[C, I], n)
	}
	for i := 0; i < n; i++ {
		c.Vertices[i].X = buf[2*i]
		c.Vertices[i].Y = buf[2*i+1]
	}
	c.ClearDiagonals()
}

// PushBack appends a single vertex and resets the ring to the canonical
// cycle including the new vertex. Grounded on polygon.hpp's push_back,
// which the distilled spec never names but which is a natural, cheap
// operation given array-backed storage.
func (c *Chain[C, I]) PushBack(x, y C) {
	c.Vertices = append(c.Vertices, Vertex[C, I]{X: x, Y: y})
	c.ClearDiagonals()
}

// Len returns the number of vertices.
func (c *Chain[C, I]) Len() I {
	return I(len(c.Vertices))
}

// At returns the coordinates of vertex i.
func (c *Chain[C, I]) At(i I) (x, y C) {
	v := c.Vertices[i]
	return v.X, v.Y
}

// AddDiagonal rewrites next[from] := to and prev[to] := from. It does not
// touch the opposite direction; the resulting ring from `to` is always the
// "upper" of the two strips created, per spec §4.1.
func (c *Chain[C, I]) AddDiagonal(from, to I) {
	c.Vertices[from].Next = to
	c.Vertices[to].Prev = from
}

// ClearDiagonals restores the canonical ring: Next[i] = i+1 mod n, Prev[i] =
// i-1 mod n.
func (c *Chain[C, I]) ClearDiagonals() {
	n := len(c.Vertices)
	for i := 0; i < n; i++ {
		c.Vertices[i].Next = I((i + 1) % n)
		c.Vertices[i].Prev = I((i - 1 + n) % n)
	}
}

// Next returns the index following i along the current ring (which may
// have been rewritten by diagonals).
func (c *Chain[C, I]) Next(i I) I { return c.Vertices[i].Next }

// Prev returns the index preceding i along the current ring.
func (c *Chain[C, I]) Prev(i I) I { return c.Vertices[i].Prev }
