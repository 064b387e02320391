// File: halfedges.go
// Role: halfedge arena — pairing, accessors, link setters, pair
// creation/removal.
//
// Mutation discipline: all link writes go through SetStart/SetFace/Link,
// never through aliases into the arena, so no caller ever holds a live
// mutable reference across another edit. The linking helpers validate
// nothing; every public operator validates before its first write.
package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// HalfedgeStore is the append-only, tombstone-on-delete arena of halfedge
// records. It implements the pairing convention, the circulators, the
// query helpers and the Euler operators.
type HalfedgeStore struct {
	mesh *Mesh
	recs []Halfedge
	dead *roaring.Bitmap
}

func newHalfedgeStore(m *Mesh) *HalfedgeStore {
	return &HalfedgeStore{mesh: m, dead: roaring.New()}
}

// check panics when h does not address a halfedge slot. Out-of-range
// indices are programming errors, never recovered from (contract tier).
func (s *HalfedgeStore) check(h HalfedgeIndex) {
	if h < 0 || int(h) >= len(s.recs) {
		panic(fmt.Sprintf("core: halfedge index %d out of range [0,%d)", h, len(s.recs)))
	}
}

// Count returns the number of halfedge slots ever allocated, dead
// included. Always even: halfedges are born in pairs.
func (s *HalfedgeStore) Count() int { return len(s.recs) }

// LiveCount returns the number of halfedges not tombstoned.
func (s *HalfedgeStore) LiveCount() int {
	return len(s.recs) - int(s.dead.GetCardinality())
}

// IsDead reports whether h has been tombstoned.
func (s *HalfedgeStore) IsDead(h HalfedgeIndex) bool {
	s.check(h)

	return s.dead.Contains(uint32(h))
}

// Partner returns the opposed halfedge of the same edge. Pairing is
// positional: the two halfedges of a pair occupy adjacent indices, so
// the partner is a pure function of index parity.
// Complexity: O(1), no storage access beyond the range check.
func (s *HalfedgeStore) Partner(h HalfedgeIndex) HalfedgeIndex {
	s.check(h)

	return h ^ 1
}

// Start returns the vertex h originates from.
func (s *HalfedgeStore) Start(h HalfedgeIndex) VertexIndex {
	s.check(h)

	return s.recs[h].Start
}

// Face returns the face on the left of h, or BoundaryFace.
func (s *HalfedgeStore) Face(h HalfedgeIndex) FaceIndex {
	s.check(h)

	return s.recs[h].Face
}

// Next returns the halfedge following h around its face or boundary loop.
func (s *HalfedgeStore) Next(h HalfedgeIndex) HalfedgeIndex {
	s.check(h)

	return s.recs[h].Next
}

// Prev returns the halfedge whose Next is h.
func (s *HalfedgeStore) Prev(h HalfedgeIndex) HalfedgeIndex {
	s.check(h)

	return s.recs[h].Prev
}

// SetStart re-roots h at vertex v. No other state is touched.
func (s *HalfedgeStore) SetStart(h HalfedgeIndex, v VertexIndex) {
	s.check(h)
	s.recs[h].Start = v
}

// SetFace moves h to face f (or BoundaryFace). No other state is touched.
func (s *HalfedgeStore) SetFace(h HalfedgeIndex, f FaceIndex) {
	s.check(h)
	s.recs[h].Face = f
}

// Link makes b follow a: next(a) = b and prev(b) = a in one step, which
// is the only way next and prev are ever written and keeps them exact
// inverses at all times. Performs no validation; callers splice whole
// cycles consistently.
func (s *HalfedgeStore) Link(a, b HalfedgeIndex) {
	s.check(a)
	s.check(b)
	s.recs[a].Next = b
	s.recs[b].Prev = a
}

// AddPair appends a fresh halfedge pair for the edge start→end and
// returns the index of the first halfedge: start→end with face on its
// left. The second halfedge runs end→start with BoundaryFace. The two
// are linked into a private 2-cycle; the caller splices them into the
// target loops and assigns the partner's face. No other mesh state is
// touched.
// Complexity: O(1) amortized.
func (s *HalfedgeStore) AddPair(start, end VertexIndex, face FaceIndex) HalfedgeIndex {
	s.mesh.vertices.check(start)
	s.mesh.vertices.check(end)

	i := HalfedgeIndex(len(s.recs))
	j := i + 1
	s.recs = append(s.recs,
		Halfedge{Start: start, Face: face, Next: j, Prev: j},
		Halfedge{Start: end, Face: BoundaryFace, Next: i, Prev: i},
	)

	return i
}

// RemovePair splices the pair containing h out of its cycles and
// tombstones both halves. The cycles are reconnected to skip the whole
// pair: the predecessor of each half is linked to the successor of the
// other half, which joins the two incident loops into one (or, for a
// dangling edge, closes the single loop over the gap). Vertex and face
// records are not touched; callers needing outgoing/first repairs must
// do them before removal.
// Complexity: O(1).
func (s *HalfedgeStore) RemovePair(h HalfedgeIndex) {
	s.check(h)
	b := s.Partner(h)

	ph, nh := s.Prev(h), s.Next(h)
	pb, nb := s.Prev(b), s.Next(b)

	// When the pair members are cycle-adjacent one of these writes lands
	// on a record being removed, which is harmless.
	s.Link(ph, nb)
	s.Link(pb, nh)

	s.markPairDead(h)
}

// markPairDead tombstones both halves of h's pair. Splicing is the
// caller's duty.
func (s *HalfedgeStore) markPairDead(h HalfedgeIndex) {
	b := s.Partner(h)
	s.dead.Add(uint32(h))
	s.dead.Add(uint32(b))
}

// VerticesOf returns the edge's endpoints in h's direction: the start
// vertex of h, then the start vertex of its partner.
func (s *HalfedgeStore) VerticesOf(h HalfedgeIndex) (VertexIndex, VertexIndex) {
	return s.Start(h), s.Start(s.Partner(h))
}
