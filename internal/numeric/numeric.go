// Package numeric holds the type constraints shared by every layer of the
// triangulator. The coordinate and index types are generic parameters on the
// public Polygon type, and every internal package that touches a vertex or
// an index needs to agree on what those parameters are allowed to be.
package numeric

// Coord is the constraint on a polygon's coordinate component type.
type Coord interface {
	~float32 | ~float64
}

// Index is the constraint on a polygon's vertex index type. It must be
// unsigned, since indices are never negative and a signed type would waste
// half its range.
type Index interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
