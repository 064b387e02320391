// File: vertices.go
// Role: vertex arena — positions, outgoing pointers, liveness.
package core

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// VertexStore is the append-only, tombstone-on-delete arena of vertex
// records. Vertices are created here at the direction of the split
// operators and destroyed only by CollapseEdge.
type VertexStore struct {
	mesh *Mesh
	recs []Vertex
	dead *roaring.Bitmap
}

func newVertexStore(m *Mesh) *VertexStore {
	return &VertexStore{mesh: m, dead: roaring.New()}
}

func (s *VertexStore) check(v VertexIndex) {
	if v < 0 || int(v) >= len(s.recs) {
		panic(fmt.Sprintf("core: vertex index %d out of range [0,%d)", v, len(s.recs)))
	}
}

// Add appends a new vertex at the given position with no outgoing
// halfedge yet, and returns its index.
// Complexity: O(1) amortized.
func (s *VertexStore) Add(position Vec3) VertexIndex {
	s.recs = append(s.recs, Vertex{Position: position, Outgoing: InvalidHalfedge})

	return VertexIndex(len(s.recs) - 1)
}

// Count returns the number of vertex slots ever allocated, dead included.
func (s *VertexStore) Count() int { return len(s.recs) }

// LiveCount returns the number of vertices not tombstoned.
func (s *VertexStore) LiveCount() int {
	return len(s.recs) - int(s.dead.GetCardinality())
}

// IsDead reports whether v has been tombstoned.
func (s *VertexStore) IsDead(v VertexIndex) bool {
	s.check(v)

	return s.dead.Contains(uint32(v))
}

// Position returns the location of v.
func (s *VertexStore) Position(v VertexIndex) Vec3 {
	s.check(v)

	return s.recs[v].Position
}

// SetPosition moves v to p. Pure geometry, no topology is touched.
func (s *VertexStore) SetPosition(v VertexIndex, p Vec3) {
	s.check(v)
	s.recs[v].Position = p
}

// Outgoing returns the recorded outgoing halfedge of v, or
// InvalidHalfedge for an isolated vertex.
func (s *VertexStore) Outgoing(v VertexIndex) HalfedgeIndex {
	s.check(v)

	return s.recs[v].Outgoing
}

// SetOutgoing points v's outgoing reference at h. The caller guarantees
// h starts at v.
func (s *VertexStore) SetOutgoing(v VertexIndex, h HalfedgeIndex) {
	s.check(v)
	s.recs[v].Outgoing = h
}

// CirculateOutgoing returns the sequence of halfedges outgoing from v,
// rooted at its recorded outgoing halfedge. An isolated vertex yields an
// empty sequence. The mutation caveat of VertexLoop applies.
// Complexity: O(degree of v) per full consumption.
func (s *VertexStore) CirculateOutgoing(v VertexIndex) iter.Seq[HalfedgeIndex] {
	s.check(v)

	return func(yield func(HalfedgeIndex) bool) {
		out := s.recs[v].Outgoing
		if !out.Valid() {
			return
		}
		for e := range s.mesh.halfedges.VertexLoop(out) {
			if !yield(e) {
				return
			}
		}
	}
}

// remove tombstones v. Only CollapseEdge destroys vertices; the record
// lingers until external compaction.
func (s *VertexStore) remove(v VertexIndex) {
	s.check(v)
	s.dead.Add(uint32(v))
}
