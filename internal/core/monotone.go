package core

import "github.com/he-la/fastmono/internal/numeric"

// This file implements the monotone triangulator (spec component C6): a
// classic O(m) stack sweep per monotone piece, consuming the upper and
// lower chains from head to tail in x-ascending order and appending
// triangle index triples.
//
// Grounded on _examples/osuushi-triangulate/internal/monotone.go's
// TriangulateMonotone, which does the same stack sweep over a polygon
// merge-sorted top-down by its lexicographic Point.Below ordering. Two
// adaptations: the teacher assumes a counterclockwise polygon and merges
// two freshly-sorted point slices by y; here the chain's own Next/Prev
// links already give the two boundaries in order, the sweep key is x
// instead of y, and every visibility test is mirrored for clockwise
// orientation (isFanVisible below is the teacher's IsCCW with the
// inequality flipped).

type monotoneVertex[I numeric.Index] struct {
	index I
	upper bool
}

// Triangulate appends a triangle-index triple (a, b, c) per triangle of
// every part in parts to out, and returns the extended slice.
func Triangulate[C numeric.Coord, I numeric.Index](c *Chain[C, I], parts []*MonoPart[C, I], out []I) []I {
	for _, part := range parts {
		out = triangulatePart(c, part, out)
	}
	return out
}

func triangulatePart[C numeric.Coord, I numeric.Index](c *Chain[C, I], p *MonoPart[C, I], out []I) []I {
	head, tail := p.Head, p.Tail

	sorted := []monotoneVertex[I]{{head, true}}
	upperCursor := c.Next(head)
	lowerCursor := c.Prev(head)
	for upperCursor != tail || lowerCursor != tail {
		takeUpper := lowerCursor == tail
		if upperCursor != tail && lowerCursor != tail {
			ux, _ := c.At(upperCursor)
			lx, _ := c.At(lowerCursor)
			takeUpper = ux <= lx
		}
		if takeUpper {
			sorted = append(sorted, monotoneVertex[I]{upperCursor, true})
			upperCursor = c.Next(upperCursor)
		} else {
			sorted = append(sorted, monotoneVertex[I]{lowerCursor, false})
			lowerCursor = c.Prev(lowerCursor)
		}
	}
	// upperCursor == lowerCursor == tail here; tail is handled separately
	// below, the same way the teacher's bottomPoint is.

	if len(sorted) == 2 {
		if sorted[1].upper {
			return append(out, sorted[0].index, sorted[1].index, tail)
		}
		return append(out, sorted[0].index, tail, sorted[1].index)
	}

	stack := make([]monotoneVertex[I], 0, len(sorted))
	stack = append(stack, sorted[0], sorted[1])

	for i := 2; i < len(sorted); i++ {
		cur := sorted[i]
		top := stack[len(stack)-1]

		if cur.upper != top.upper {
			// Switched chains: by monotonicity every vertex still on the
			// stack is visible from cur, so fan the whole stack out.
			for len(stack) > 1 {
				a := stack[len(stack)-1]
				b := stack[len(stack)-2]
				stack = stack[:len(stack)-1]
				if cur.upper {
					out = append(out, cur.index, a.index, b.index)
				} else {
					out = append(out, a.index, cur.index, b.index)
				}
			}
			stack = append(stack[:0], top, cur)
		} else {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for len(stack) > 0 {
				apex := stack[len(stack)-1]
				var tri [3]I
				if cur.upper {
					tri = [3]I{cur.index, apex.index, v.index}
				} else {
					tri = [3]I{cur.index, v.index, apex.index}
				}
				if !isFanVisible(c, tri) {
					break
				}
				v = apex
				stack = stack[:len(stack)-1]
				out = append(out, tri[0], tri[1], tri[2])
			}
			stack = append(stack, v, cur)
		}
	}

	// tail is adjacent to both chains and sees every vertex still on the
	// stack, regardless of which chain each belongs to.
	l := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l.upper {
			out = append(out, tail, q.index, l.index)
		} else {
			out = append(out, tail, l.index, q.index)
		}
		l = q
	}

	return out
}

// isFanVisible reports whether tri, built from the current fan apex
// candidate, is wound clockwise — the orientation a valid triangle of a
// clockwise input polygon must have. Collinear triples (cross == 0) are
// rejected, matching the reflex test's tie-break in events.go.
func isFanVisible[C numeric.Coord, I numeric.Index](c *Chain[C, I], tri [3]I) bool {
	ax, ay := c.At(tri[0])
	bx, by := c.At(tri[1])
	cx, cy := c.At(tri[2])
	cross := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	return cross < 0
}
