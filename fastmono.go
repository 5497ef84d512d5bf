// Package fastmono triangulates simple, clockwise-oriented planar polygons
// by first partitioning them into x-monotone pieces via a plane sweep, then
// fan-triangulating each piece. It does not handle self-intersecting input,
// holes, or incremental re-triangulation after mutation.
package fastmono

import (
	"github.com/pkg/errors"

	"github.com/he-la/fastmono/internal/core"
	"github.com/he-la/fastmono/internal/fail"
	"github.com/he-la/fastmono/internal/numeric"
)

// ErrInvalidInput and ErrDegenerateGeometry are re-exported from
// internal/fail so callers can compare with errors.Is without reaching into
// an internal package.
var (
	ErrInvalidInput       = fail.ErrInvalidInput
	ErrDegenerateGeometry = fail.ErrDegenerateGeometry
)

// Part is one monotone piece produced by Partition. Its fields are only
// meaningful as an argument to Triangulate; Head and Tail are polygon
// vertex indices.
type Part[C numeric.Coord, I numeric.Index] struct {
	inner *core.MonoPart[C, I]
}

// Head returns the part's start vertex index.
func (p Part[C, I]) Head() I { return p.inner.Head }

// Tail returns the part's stop vertex index.
func (p Part[C, I]) Tail() I { return p.inner.Tail }

// cacheState is the tri-state bookkeeping named in spec §4.1: has_diagonals,
// has_valid_diagonals, has_valid_indices. It lives on the public facade
// rather than on Chain, since caching is a policy the caller owns, not a
// property of the vertex storage.
type cacheState struct {
	hasDiagonals      bool
	hasValidDiagonals bool
	hasValidIndices   bool
}

func (c *cacheState) invalidate() {
	c.hasDiagonals = false
	c.hasValidDiagonals = false
	c.hasValidIndices = false
}

// Polygon is a simple, clockwise-oriented polygon with a cached
// triangulation. C is the coordinate type, I is the vertex index type.
type Polygon[C numeric.Coord, I numeric.Index] struct {
	chain *core.Chain[C, I]
	cache cacheState

	parts   []*core.MonoPart[C, I]
	indices []I
}

// New builds a Polygon from a flat buffer of alternating x, y coordinates.
// len(coords) must be even and at least 6 (three vertices); coords is
// assumed clockwise, per spec — orientation is not independently validated.
func New[C numeric.Coord, I numeric.Index](coords []C) (p *Polygon[C, I], err error) {
	defer func() { err = fail.Recover(recover(), err) }()
	validateCoords(coords)
	p = &Polygon[C, I]{chain: core.New[C, I](coords)}
	return p, nil
}

// SetVertices rewires p from coords, reusing existing storage where
// possible, and invalidates the cache. Same contract as New.
func (p *Polygon[C, I]) SetVertices(coords []C) (err error) {
	defer func() { err = fail.Recover(recover(), err) }()
	validateCoords(coords)
	p.chain.Set(coords)
	p.cache.invalidate()
	return nil
}

// AppendVertex appends a single vertex and invalidates the cache. Grounded
// on original_source/polygon.hpp's push_back, which spec.md never names
// but which is a natural operation given array-backed storage (SPEC_FULL.md
// §C.1).
func (p *Polygon[C, I]) AppendVertex(x, y C) {
	p.chain.PushBack(x, y)
	p.cache.invalidate()
}

// Len returns the number of vertices.
func (p *Polygon[C, I]) Len() I { return p.chain.Len() }

// At returns the coordinates of vertex i.
func (p *Polygon[C, I]) At(i I) (x, y C) { return p.chain.At(i) }

func validateCoords[C numeric.Coord](coords []C) {
	if len(coords)%2 != 0 {
		fail.Throw(fail.InvalidInput, "fastmono: coordinate buffer has odd length %d", len(coords))
	}
	if len(coords)/2 < 3 {
		fail.Throw(fail.InvalidInput, "fastmono: polygon has %d vertices, need at least 3", len(coords)/2)
	}
}

// Partition runs the plane sweep (C4) and the three-phase partitioner (C5),
// returning the monotone pieces. The four fraction hints are reciprocal
// capacity hints for the START/MERGE/SPLIT/STOP event classes (0 selects
// the original's defaults of 8, 10, 10, 8); they only affect performance.
// The polygon's ring is rewritten in place with the diagonals the sweep
// introduces.
func (p *Polygon[C, I]) Partition(fracStarts, fracMerges, fracSplits, fracStops I) (parts []Part[C, I], err error) {
	defer func() { err = fail.Recover(recover(), err) }()

	raw, perr := core.Partition(p.chain, fracStarts, fracMerges, fracSplits, fracStops)
	if perr != nil {
		return nil, perr
	}

	p.parts = raw
	p.cache.hasDiagonals = true
	p.cache.hasValidDiagonals = true
	p.cache.hasValidIndices = false

	parts = make([]Part[C, I], len(raw))
	for i, rp := range raw {
		parts[i] = Part[C, I]{inner: rp}
	}
	return parts, nil
}

// Triangulate fan-triangulates every part in parts (as returned by
// Partition) and writes the resulting triangle-index triples into the
// polygon's cached index buffer, returning it.
func (p *Polygon[C, I]) Triangulate(parts []Part[C, I]) (indices []I, err error) {
	defer func() { err = fail.Recover(recover(), err) }()

	raw := make([]*core.MonoPart[C, I], len(parts))
	for i, part := range parts {
		raw[i] = part.inner
	}

	p.indices = core.Triangulate(p.chain, raw, p.indices[:0])
	p.cache.hasValidIndices = true
	return p.indices, nil
}

// Indices returns the polygon's triangulation as a flat buffer of index
// triples, computing it if the cache is stale: clearing any diagonals left
// over from a prior call for a different purpose, partitioning, then
// triangulating with the original's default fraction hints.
func (p *Polygon[C, I]) Indices() (indices []I, err error) {
	defer func() { err = fail.Recover(recover(), err) }()

	if p.cache.hasValidIndices {
		return p.indices, nil
	}

	if p.cache.hasDiagonals && !p.cache.hasValidDiagonals {
		p.chain.ClearDiagonals()
		p.cache.hasDiagonals = false
	}

	var zero I
	parts, perr := p.Partition(zero, zero, zero, zero)
	if perr != nil {
		return nil, errors.WithStack(perr)
	}
	return p.Triangulate(parts)
}
