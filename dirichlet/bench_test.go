package dirichlet_test

import (
	"testing"

	"github.com/katalvlaran/dirichlet/dirichlet"
	"github.com/katalvlaran/dirichlet/orbit"
)

// BenchmarkComputeBoundary prunes the bisectors of a depth-4 orbit.
func BenchmarkComputeBoundary(b *testing.B) {
	g := classicOrbit(b, 4, false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dirichlet.ComputeBoundary(g, orbit.Root)
	}
}

// BenchmarkTessellate measures domain computation plus propagation.
func BenchmarkTessellate(b *testing.B) {
	g := classicOrbit(b, 4, false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dirichlet.Tessellate(g)
	}
}
