package fastmono

import (
	"strconv"
	"testing"

	"github.com/he-la/fastmono/internal/testpoly"
)

// Benchmarks construction, partitioning, and triangulation separately, at
// the power-of-two sizes original_source/benchmarks/bench.cpp favors (64
// through 8192), against internal/testpoly's star generator rather than a
// fixed fixture so every size is a fresh, non-degenerate polygon.

var benchSizes = []int{64, 128, 256, 512, 1024, 2048, 4096, 8192}

func BenchmarkNew(b *testing.B) {
	for _, n := range benchSizes {
		coords := testpoly.Star(n, int64(n))
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := New[float64, uint32](coords); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPartition(b *testing.B) {
	for _, n := range benchSizes {
		coords := testpoly.Star(n, int64(n))
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				p, err := New[float64, uint32](coords)
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if _, err := p.Partition(0, 0, 0, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTriangulate(b *testing.B) {
	for _, n := range benchSizes {
		coords := testpoly.Star(n, int64(n))
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				p, err := New[float64, uint32](coords)
				if err != nil {
					b.Fatal(err)
				}
				parts, err := p.Partition(0, 0, 0, 0)
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if _, err := p.Triangulate(parts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
