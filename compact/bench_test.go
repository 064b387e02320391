package compact_test

import (
	"testing"

	"github.com/katalvlaran/hemesh/builder"
	"github.com/katalvlaran/hemesh/compact"
)

// BenchmarkCompact measures a dense rebuild of a 100x100 triangulated
// grid carrying tombstones from a prior collapse.
// Complexity: O(total entries, dead included)
func BenchmarkCompact(b *testing.B) {
	m, err := builder.Build(builder.TriangleGrid(100, 100))
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	hs := m.Halfedges()
	center := hs.FindHalfedge(50*101+50, 50*101+51)
	if !hs.CollapseEdge(center).Valid() {
		b.Fatal("setup collapse rejected")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := compact.Compact(m); err != nil {
			b.Fatalf("Compact failed: %v", err)
		}
	}
}
