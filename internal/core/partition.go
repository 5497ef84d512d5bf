package core

import (
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"

	"github.com/he-la/fastmono/internal/dbgname"
	"github.com/he-la/fastmono/internal/fail"
	"github.com/he-la/fastmono/internal/numeric"
	"github.com/he-la/fastmono/internal/regiontree"
	"github.com/he-la/fastmono/internal/statictree"
)

// This file implements the partitioner (spec component C5): the driver
// that turns a classified event set into a list of monotone pieces,
// rewriting the chain's ring with diagonals as it goes.
//
// Grounded on original_source/partition.hpp's MonoPart and the surrounding
// prose description of the three-phase sweep (the .ipp translation unit
// carrying the original loop body was not part of the retrieved material,
// so the sweep below is built from the component's literal behavioral
// description rather than transliterated from a reference loop). Two
// judgment calls, recorded here and in the design ledger:
//
//   - "Opposite chain" in a merge resolution is read as the SAME region's
//     other boundary, not a neighboring region's — MonoPart only ever
//     carries two chain pointers, and a merge vertex pinches them
//     together, closing the region at the vertex the scan lands on.
//   - MergeData.Above/Below are populated for introspection (which side of
//     the merge each region touches) but a successful resolution always
//     closes the consuming region; the "otherwise propagate" branch in the
//     distilled description describes a topology (cross-region merge
//     hand-off) this reading of the algorithm does not construct.

// MonoPart is one monotone region discovered by Partition. Head and Tail
// are the only fields that remain meaningful once Partition has returned;
// the rest exist purely to drive the sweep.
type MonoPart[C numeric.Coord, I numeric.Index] struct {
	Head I
	Tail I

	upper, lower *Event[C, I]
	active       bool
	node         *regiontree.Node[C, *MonoPart[C, I]]
}

// String renders the region for debug output, coloring its dbgname alias
// green while still active on the sweep and red once closed, the way the
// teacher colors Trapezoid.DbgName by whether the trapezoid is still
// bounded on every side.
func (p *MonoPart[C, I]) String() string {
	alias := dbgname.Name("region", regionKey(p))
	if p.active {
		alias = aurora.Green(alias).String()
	} else {
		alias = aurora.Red(alias).String()
	}
	return fmt.Sprintf("Region %s { head: %d, tail: %d }", alias, p.Head, p.Tail)
}

// regionKey derives a stable debug-naming key from the region's head
// vertex, since MonoPart has no index of its own within partitionState.
func regionKey[C numeric.Coord, I numeric.Index](p *MonoPart[C, I]) uint64 {
	return uint64(p.Head)
}

type partitionState[C numeric.Coord, I numeric.Index] struct {
	chain   *Chain[C, I]
	tree    *regiontree.Tree[C, *MonoPart[C, I]]
	active  []*MonoPart[C, I]
	results []*MonoPart[C, I]
}

// Partition classifies c's vertices, sweeps the resulting events, and
// returns the list of monotone pieces the sweep produced. c's ring is
// rewritten in place with the diagonals the sweep inserts.
func Partition[C numeric.Coord, I numeric.Index](c *Chain[C, I], fracStarts, fracMerges, fracSplits, fracStops I) (parts []*MonoPart[C, I], err error) {
	defer func() { err = fail.Recover(recover(), err) }()

	if len(c.Vertices) < 3 {
		fail.Throw(fail.InvalidInput, "partition: chain has %d vertices, need at least 3", len(c.Vertices))
	}

	set := classify(c, fracStarts, fracMerges, fracSplits, fracStops)

	// Phase A: bind starts to splits.
	sort.Slice(set.Splits, func(i, j int) bool { return set.Splits[i].X < set.Splits[j].X })
	splitTree := statictree.Build(set.Splits, func(s *SplitData[C, I]) C { return s.X })
	for _, start := range set.Starts {
		sx, _ := c.At(start.Index)
		winner, ok := splitTree.Find(sx)
		if !ok {
			winner = set.Splits[len(set.Splits)-1] // the sentinel; always present
		}
		winner.Starts = append(winner.Starts, start)
	}

	st := &partitionState[C, I]{chain: c, tree: regiontree.New[C, *MonoPart[C, I]]()}

	// Phase B: sweep. resolveSplit runs before stepActive/refreshTree so a
	// region whose closing frontier ties the split's own x is still
	// active (and, if opened by this same split, still missing from the
	// tree) when the split needs to find it. Stepping and re-keying then
	// see the frontiers resolveSplit already advanced, rather than racing
	// to retire the region out from under it.
	for i, split := range set.Splits {
		st.openRegions(split)
		if !split.Sentinel {
			var next *SplitData[C, I]
			if i+1 < len(set.Splits) {
				next = set.Splits[i+1]
			}
			st.resolveSplit(split, next)
		}
		st.stepActive(split.X)
		st.refreshTree(split.X)
	}

	return st.results, nil
}

// openRegions implements Phase B step 1: for every start attached to this
// split, create a new MonoPart and back-link any adjacent merge.
func (st *partitionState[C, I]) openRegions(split *SplitData[C, I]) {
	for _, start := range split.Starts {
		part := &MonoPart[C, I]{
			Head:   start.Index,
			upper:  start.Next,
			lower:  start.Prev,
			active: true,
		}
		if start.Next.Kind == KindMerge {
			start.Next.Merge.Below = part
		}
		if start.Prev.Kind == KindMerge {
			start.Prev.Merge.Above = part
		}
		st.active = append(st.active, part)
	}
}

// exhausted reports whether ev cannot be advanced onto during this split's
// stepping pass: either it is already past sx, or it is a split vertex,
// which is never consumed by ordinary stepping — only resolveSplit
// resolves a split, once its turn in x-order arrives.
func (st *partitionState[C, I]) exhausted(ev *Event[C, I], sx C) bool {
	if ev.Kind == KindSplit {
		return true
	}
	x, _ := st.chain.At(ev.Index)
	return x > sx
}

// stepActive implements Phase B step 2, run once per split across every
// still-active region.
func (st *partitionState[C, I]) stepActive(sx C) {
	for _, r := range st.active {
		if r.active {
			st.stepRegion(r, sx)
		}
	}
}

// stepRegion advances r's two chain frontiers up to sx. upper and lower
// always name the next unhandled event on each chain (not the last
// handled one): a fresh region's frontiers are its start's immediate
// neighbors, which may themselves already be the region's stop.
func (st *partitionState[C, I]) stepRegion(r *MonoPart[C, I], sx C) {
	for r.active {
		upDone := st.exhausted(r.upper, sx)
		loDone := st.exhausted(r.lower, sx)
		if upDone && loDone {
			return
		}

		var onUpper bool
		switch {
		case loDone:
			onUpper = true
		case upDone:
			onUpper = false
		default:
			ux, _ := st.chain.At(r.upper.Index)
			lx, _ := st.chain.At(r.lower.Index)
			onUpper = ux <= lx // ties prefer the upper chain
		}

		cand := r.lower
		if onUpper {
			cand = r.upper
		}

		switch cand.Kind {
		case KindNormal:
			if onUpper {
				r.upper = r.upper.Next
			} else {
				r.lower = r.lower.Prev
			}
		case KindStop:
			r.Tail = cand.Index
			r.active = false
			st.results = append(st.results, r)
			return
		case KindMerge:
			if !st.resolveMerge(r, cand, onUpper, sx) {
				return // blocked; a later, wider split will retry
			}
			if !r.active {
				return
			}
		default:
			fail.Assert(false, "stepRegion: unexpected frontier kind %v", cand.Kind)
			return
		}
	}
}

// resolveMerge tries to pinch r closed at its merge vertex v, scanning r's
// other chain for the first vertex past v in x. Success inserts the
// diagonal and closes r there; failure leaves v as r's frontier so the
// next, wider split retries the same scan.
func (st *partitionState[C, I]) resolveMerge(r *MonoPart[C, I], v *Event[C, I], onUpper bool, sx C) bool {
	vx, _ := st.chain.At(v.Index)

	cursor := r.lower
	if !onUpper {
		cursor = r.upper
	}

	for {
		cx, _ := st.chain.At(cursor.Index)
		if cx > sx {
			return false
		}
		if cx > vx {
			break
		}
		if onUpper {
			cursor = cursor.Prev
		} else {
			cursor = cursor.Next
		}
	}

	target := cursor
	st.chain.AddDiagonal(v.Index, target.Index)
	v.Kind = KindNormal

	if onUpper {
		r.lower = target
		v.Merge.Below = r
	} else {
		r.upper = target
		v.Merge.Above = r
	}

	r.Tail = target.Index
	r.active = false
	st.results = append(st.results, r)
	return true
}

// refreshTree implements Phase B step 3: drop inactive regions from the
// interval tree, and re-key every survivor to the y of its lower
// boundary's rightmost vertex not yet past sx.
func (st *partitionState[C, I]) refreshTree(sx C) {
	live := st.active[:0]
	for _, r := range st.active {
		if !r.active {
			if r.node != nil {
				st.tree.Remove(r.node)
				r.node = nil
			}
			continue
		}
		live = append(live, r)
		key := st.lowerBoundaryY(r, sx)
		if r.node == nil {
			r.node = st.tree.Insert(key, r)
		} else {
			st.tree.SetKey(r.node, key)
		}
	}
	st.active = live
}

// lowerBoundaryY walks r's lower chain backward along the polygon ring
// (not the event ring, which skips ordinary vertices) from its current
// event frontier, returning the y of the rightmost vertex still at or
// before sx.
func (st *partitionState[C, I]) lowerBoundaryY(r *MonoPart[C, I], sx C) C {
	idx := r.lower.Index
	for {
		prev := st.chain.Prev(idx)
		px, _ := st.chain.At(prev)
		if px > sx {
			break
		}
		idx = prev
	}
	_, y := st.chain.At(idx)
	return y
}

// findRegion locates the region straddling s.Y. The interval tree is the
// fast path, keyed by each region's lower-boundary y as of the previous
// split; it can miss a region that this same split just opened via
// openRegions (refreshTree hasn't inserted it yet) or one stepActive
// would otherwise retire on this exact x before resolveSplit gets to it.
// The fallback recomputes lowerBoundaryY directly against every active
// region and picks the floor by hand, mirroring what the tree would hold
// once refreshTree next runs.
func (st *partitionState[C, I]) findRegion(s *SplitData[C, I]) (*MonoPart[C, I], bool) {
	if r, ok := st.tree.Find(s.Y); ok {
		return r, true
	}
	var best *MonoPart[C, I]
	var bestY C
	for _, r := range st.active {
		if !r.active {
			continue
		}
		y := st.lowerBoundaryY(r, s.X)
		if y <= s.Y && (best == nil || y > bestY) {
			best, bestY = r, y
		}
	}
	return best, best != nil
}

// resolveSplit implements Phase B step 4: find the region straddling S,
// pick the nearer first-past-S.x vertex on either of its chains as the
// diagonal target, cut the diagonal, and synthesize a new start event for
// next's Phase A to open.
func (st *partitionState[C, I]) resolveSplit(s *SplitData[C, I], next *SplitData[C, I]) {
	r, ok := st.findRegion(s)
	if !ok {
		// Only reachable on malformed input a debug build wants to catch;
		// see fail.Assert.
		fail.Assert(false, "partition: no active region contains split at (%v, %v)", s.X, s.Y)
		return
	}

	upT := st.firstPast(r.upper, s.X, true)
	loT := st.firstPast(r.lower, s.X, false)
	upX, _ := st.chain.At(upT.Index)
	loX, _ := st.chain.At(loT.Index)

	target, onUpper := upT, true
	if loX < upX {
		target, onUpper = loT, false
	}

	st.chain.AddDiagonal(s.Event.Index, target.Index)

	start := &Event[C, I]{Index: target.Index, Kind: KindStart}
	if onUpper {
		start.Next, start.Prev = s.Event.Next, s.Event
		s.Event.Next.Prev = start
		s.Event.Next = start
	} else {
		start.Prev, start.Next = s.Event.Prev, s.Event
		s.Event.Prev.Next = start
		s.Event.Prev = start
	}

	if next != nil {
		next.Starts = append(next.Starts, start)
	}

	s.Event.Kind = KindNormal
	r.upper, r.lower = upT, loT
}

// firstPast walks forward (upper chains, via Next) or backward (lower
// chains, via Prev) from frontier until it finds an event strictly past
// sx, which may be frontier itself.
func (st *partitionState[C, I]) firstPast(frontier *Event[C, I], sx C, forward bool) *Event[C, I] {
	cur := frontier
	for {
		x, _ := st.chain.At(cur.Index)
		if x > sx {
			return cur
		}
		if forward {
			cur = cur.Next
		} else {
			cur = cur.Prev
		}
	}
}
