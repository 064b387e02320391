package builder_test

import (
	"testing"

	"github.com/katalvlaran/hemesh/builder"
)

// BenchmarkFromFaces measures full assembly of a 100x100 triangulated
// grid (10201 vertices, 20000 faces) from its face table.
// Complexity: O(total face corners)
func BenchmarkFromFaces(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(builder.TriangleGrid(100, 100)); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuildQuad measures the fixed cost of the orchestrator on the
// smallest useful mesh.
// Complexity: O(1)
func BenchmarkBuildQuad(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(builder.Quad()); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
