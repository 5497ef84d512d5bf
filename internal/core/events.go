package core

import "github.com/he-la/fastmono/internal/numeric"

// This file implements the event classifier (spec component C4): a single
// pass over the polygon chain that detects x-direction reversals, applies
// the reflex test, and emits a typed, doubly-linked event sequence.
//
// Grounded on original_source/partition.hpp's EventVertex/VertexType and
// is_reflex. The original's MergeVertex/SplitVertex carry an untyped void*
// back to their EventVertex (spec §9 calls this out as a pattern a cleaner
// implementation would replace with a typed payload); here MergeData and
// SplitData are the typed payload, referenced directly from Event rather
// than through an interface{}.

// Kind is the classification of an event vertex. Kept numbered the way
// original_source/partition.hpp numbers VertexType (starting at 1, so a
// zero Kind is never confused with a valid classification).
type Kind uint8

const (
	KindStop Kind = iota + 1
	KindStart
	KindMerge
	KindSplit
	// KindNormal is the demotion state: an event that has been fully
	// consumed by the partitioner and should be skipped by any later
	// region-stepping pass.
	KindNormal
)

func (k Kind) String() string {
	switch k {
	case KindStop:
		return "STOP"
	case KindStart:
		return "START"
	case KindMerge:
		return "MERGE"
	case KindSplit:
		return "SPLIT"
	case KindNormal:
		return "NORMAL"
	default:
		return "UNKNOWN"
	}
}

// Event is one classified vertex, doubly linked to its neighbors in the
// order the sweep emitted them (polygon-chain order restricted to
// classified vertices), closed into a ring.
type Event[C numeric.Coord, I numeric.Index] struct {
	Index I
	Kind  Kind

	Next, Prev *Event[C, I]

	Merge *MergeData[C, I]
	Split *SplitData[C, I]
}

// MergeData is the side data attached to a MERGE event, filled in as the
// partitioner assigns regions incident to the merge vertex.
type MergeData[C numeric.Coord, I numeric.Index] struct {
	Event        *Event[C, I]
	Above, Below *MonoPart[C, I]
}

// SplitData is the side data attached to a SPLIT event, plus the cached
// coordinates and the (unordered) set of start events that belong to the
// strip ending at this split. Sentinel is true for the synthetic
// terminator split appended at (maxX+ε, 0); it has no backing Event.
type SplitData[C numeric.Coord, I numeric.Index] struct {
	Event    *Event[C, I]
	X, Y     C
	Starts   []*Event[C, I]
	Sentinel bool
}

// EventSet is the result of classify: the event ring (as a representative
// node, nil if the polygon had no classified vertices, which cannot happen
// for a valid simple polygon) plus the three parallel collections.
type EventSet[C numeric.Coord, I numeric.Index] struct {
	Ring   *Event[C, I]
	Starts []*Event[C, I]
	Merges []*MergeData[C, I]
	Splits []*SplitData[C, I] // ascending by X is NOT guaranteed here; see sortSplits
}

// isReflex implements spec §4.4's reflex test: the sign of
// (B.x−A.x)(C.y−A.y) − (B.y−A.y)(C.x−A.x) for consecutive A, B, C around a
// clockwise chain. Positive means reflex; the zero (collinear) case is
// treated as non-reflex per spec §4.5's tie-break notes.
func isReflex[C numeric.Coord](ax, ay, bx, by, cx, cy C) bool {
	cross := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	return cross > 0
}

// classify performs the single pass described in spec §4.4, with capacity
// hints for the four event-kind collections. A hint of 0 falls back to the
// original_source/polygon.hpp defaults (8, 10, 10, 8); every hint is then
// floored at 3 (2 for merges) per spec §6, so a tiny polygon never causes a
// zero-size reserve.
func classify[C numeric.Coord, I numeric.Index](c *Chain[C, I], fracStarts, fracMerges, fracSplits, fracStops I) *EventSet[C, I] {
	n := len(c.Vertices)

	fracStarts = fracOrDefault(fracStarts, 8, 3)
	fracMerges = fracOrDefault(fracMerges, 10, 2)
	fracSplits = fracOrDefault(fracSplits, 10, 3)
	fracStops = fracOrDefault(fracStops, 8, 3)

	set := &EventSet[C, I]{
		Starts: make([]*Event[C, I], 0, n/int(fracStarts)+1),
		Merges: make([]*MergeData[C, I], 0, n/int(fracMerges)+1),
		Splits: make([]*SplitData[C, I], 0, n/int(fracSplits)+1),
	}

	events := make([]*Event[C, I], 0, n/int(fracStops)+n/int(fracStarts)+n/int(fracMerges)+n/int(fracSplits)+1)

	x0, _ := c.At(0)
	x1, _ := c.At(I(1 % n))
	sweepingRight := x1 > x0

	minX, maxX := x0, x0

	// classify keeps a running sweepingRight flag: the direction of the
	// last edge confirmed to continue the sweep, updated only when a
	// vertex's incoming edge disagrees with it. A disagreement noticed
	// while arriving at vertex i means the reversal happened one edge
	// earlier — sweepingRight at that point still holds dir(edge(i-2,i-1)),
	// the direction *into* i-1, so the vertex whose own incoming and
	// outgoing edges actually disagree is i-1, not i. The event belongs to
	// i-1, classified with i-1's own neighbors (i-2, i-1, i), never i's.
	//
	// The loop runs one step past n so vertex 0 — whose own reversal, if
	// any, spans the wrap-around edges (n-1,0) and (0,1) — gets classified
	// too, once sweepingRight has been updated by a full pass around the
	// ring. Step 1 is always a no-op for this reason: sweepingRight is
	// seeded with dir(edge(0,1)) itself, so it can never disagree with the
	// incomingRight computed there.
	//
	// Ties (bx == ax) fall out of the strict comparison as "not right",
	// which is what lets a run of vertical edges be skipped over without
	// registering a spurious reversal at either endpoint.
	for step := 1; step <= n+1; step++ {
		i := I(step % n)
		prevI := I((int(i) - 1 + n) % n)

		ax, ay := c.At(prevI)
		bx, by := c.At(i)

		if bx < minX {
			minX = bx
		}
		if bx > maxX {
			maxX = bx
		}

		incomingRight := bx > ax
		if incomingRight == sweepingRight {
			continue
		}
		sweepingRight = incomingRight

		prevPrevI := I((int(prevI) - 1 + n) % n)
		ppx, ppy := c.At(prevPrevI)

		reflex := isReflex(ppx, ppy, ax, ay, bx, by)

		var kind Kind
		switch {
		case reflex && !sweepingRight:
			kind = KindMerge
		case reflex && sweepingRight:
			kind = KindSplit
		case !reflex && sweepingRight:
			kind = KindStart
		default: // !reflex && !sweepingRight
			kind = KindStop
		}

		ev := &Event[C, I]{Index: prevI, Kind: kind}
		events = append(events, ev)

		switch kind {
		case KindStart:
			set.Starts = append(set.Starts, ev)
		case KindMerge:
			md := &MergeData[C, I]{Event: ev}
			ev.Merge = md
			set.Merges = append(set.Merges, md)
		case KindSplit:
			sd := &SplitData[C, I]{Event: ev, X: ax, Y: ay}
			ev.Split = sd
			set.Splits = append(set.Splits, sd)
		}
	}

	// Link the ring.
	for idx, ev := range events {
		ev.Next = events[(idx+1)%len(events)]
		ev.Prev = events[(idx-1+len(events))%len(events)]
	}
	if len(events) > 0 {
		set.Ring = events[0]
	}

	// Append the sentinel split terminator at (maxX+ε, 0), per spec §4.4.
	span := maxX - minX
	var eps C
	if span > 0 {
		eps = span * C(1e-6)
	} else {
		eps = C(1)
	}
	set.Splits = append(set.Splits, &SplitData[C, I]{X: maxX + eps, Y: 0, Sentinel: true})

	return set
}

func fracOrDefault[I numeric.Index](frac, def, floor I) I {
	if frac == 0 {
		frac = def
	}
	if frac < floor {
		frac = floor
	}
	return frac
}
