// Package testpoly generates deterministic, simple, clockwise polygons for
// the large-n stress scenario (spec §8 scenario f, "many-vertex smooth
// polygon"). Hand-authoring a thousand-vertex fixture is awkward; a
// constructive generator that can guarantee simplicity and distinct
// x-coordinates at every vertex is not.
//
// Grounded on triangulate/querygraph.go's AddPolygon, which seeds a
// math/rand.Source explicitly rather than using the package-level source,
// for the same reason: reproducible debugging output by default, with an
// escape hatch for callers that want real randomness.
package testpoly

import (
	"math"
	"math/rand"
)

// Star returns a clockwise n-vertex polygon (n >= 3) approximating a star
// with the given number of points, jittered by a seeded random source so
// it is not perfectly convex (which would make every event a START or
// STOP and never exercise MERGE/SPLIT). Radii alternate between an outer
// and inner radius per classic star construction; the jitter keeps
// x-coordinates distinct with overwhelming probability, and any accidental
// collision is nudged apart directly rather than re-rolled, so the
// generator is still O(n) for any seed.
func Star(n int, seed int64) []float64 {
	if n < 3 {
		n = 3
	}
	r := rand.New(rand.NewSource(seed))

	const outerR, innerR = 100.0, 45.0
	coords := make([]float64, 0, 2*n)
	angleStep := 2 * math.Pi / float64(n)

	for i := 0; i < n; i++ {
		angle := float64(i) * angleStep
		radius := outerR
		if i%2 == 1 {
			radius = innerR
		}
		jitter := 1 + (r.Float64()-0.5)*0.1
		x := radius * radius / outerR * jitter * math.Cos(angle)
		y := radius * radius / outerR * jitter * math.Sin(angle)
		coords = append(coords, x, y)
	}

	// Star() generated vertices in increasing-angle (counterclockwise)
	// order; reverse to get clockwise winding, the orientation this module
	// assumes throughout.
	reverse(coords)

	dedupeX(coords, r)
	return coords
}

func reverse(coords []float64) {
	n := len(coords) / 2
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		coords[2*i], coords[2*j] = coords[2*j], coords[2*i]
		coords[2*i+1], coords[2*j+1] = coords[2*j+1], coords[2*i+1]
	}
}

// dedupeX nudges any vertex whose x-coordinate collides with an
// earlier-seen one, since the sweep (spec §1 Non-goals) assumes distinct
// x-coordinates at event vertices.
func dedupeX(coords []float64, r *rand.Rand) {
	seen := make(map[float64]bool, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		for seen[coords[i]] {
			coords[i] += (r.Float64() - 0.5) * 1e-4
		}
		seen[coords[i]] = true
	}
}
