// File: faces.go
// Role: face arena — boundary anchors, loop extraction, face-level edits
// (split along a diagonal, merge across an edge, removal).
package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// FaceStore is the append-only, tombstone-on-delete arena of face
// records.
type FaceStore struct {
	mesh *Mesh
	recs []Face
	dead *roaring.Bitmap
}

func newFaceStore(m *Mesh) *FaceStore {
	return &FaceStore{mesh: m, dead: roaring.New()}
}

func (s *FaceStore) check(f FaceIndex) {
	if f < 0 || int(f) >= len(s.recs) {
		panic(fmt.Sprintf("core: face index %d out of range [0,%d)", f, len(s.recs)))
	}
}

// Add appends a new face anchored at first and returns its index. The
// caller is responsible for the loop's halfedges actually carrying the
// new face index.
func (s *FaceStore) Add(first HalfedgeIndex) FaceIndex {
	s.recs = append(s.recs, Face{First: first})

	return FaceIndex(len(s.recs) - 1)
}

// Count returns the number of face slots ever allocated, dead included.
func (s *FaceStore) Count() int { return len(s.recs) }

// LiveCount returns the number of faces not tombstoned.
func (s *FaceStore) LiveCount() int {
	return len(s.recs) - int(s.dead.GetCardinality())
}

// IsDead reports whether f has been tombstoned.
func (s *FaceStore) IsDead(f FaceIndex) bool {
	s.check(f)

	return s.dead.Contains(uint32(f))
}

// First returns the anchor halfedge of f's boundary loop.
func (s *FaceStore) First(f FaceIndex) HalfedgeIndex {
	s.check(f)

	return s.recs[f].First
}

// SetFirst re-anchors f at h. The caller guarantees h lies on f's loop.
func (s *FaceStore) SetFirst(f FaceIndex, h HalfedgeIndex) {
	s.check(f)
	s.recs[f].First = h
}

// BoundaryHalfedges returns f's boundary loop in anticlockwise order,
// starting at its anchor.
// Complexity: O(degree of f).
func (s *FaceStore) BoundaryHalfedges(f FaceIndex) []HalfedgeIndex {
	s.check(f)

	hs := s.mesh.halfedges
	var loop []HalfedgeIndex
	for e := range hs.FaceLoop(s.recs[f].First) {
		loop = append(loop, e)
	}

	return loop
}

// Degree returns the number of sides of f.
// Complexity: O(degree of f).
func (s *FaceStore) Degree(f FaceIndex) int {
	s.check(f)

	hs := s.mesh.halfedges
	n := 0
	for range hs.FaceLoop(s.recs[f].First) {
		n++
	}

	return n
}

// SplitFace splits the face shared by a and b into two along the
// diagonal from Start(a) to Start(b), and returns the new face. The
// original face keeps the loop segment from b up to a's predecessor plus
// the diagonal; the new face takes the segment from a up to b's
// predecessor plus the diagonal's partner.
//
// Both halfedges must lie on the same live face; that is a caller
// contract, violated calls panic. Degenerate diagonals (b adjacent to a
// in the loop) are not rejected: the resulting 2-gon is the caller's
// problem, as with every internal linking helper.
// Complexity: O(degree of the new face).
func (s *FaceStore) SplitFace(a, b HalfedgeIndex) FaceIndex {
	hs := s.mesh.halfedges
	f := hs.Face(a)
	if f != hs.Face(b) {
		panic(fmt.Sprintf("core: SplitFace halfedges %d and %d lie on different faces", a, b))
	}
	s.check(f)

	pa := hs.Prev(a)
	pb := hs.Prev(b)

	d := hs.AddPair(hs.Start(a), hs.Start(b), f)
	db := hs.Partner(d)

	// Close the two loops: f becomes d → b … pa → d, the new face
	// becomes db → a … pb → db.
	hs.Link(pa, d)
	hs.Link(d, b)
	hs.Link(pb, db)
	hs.Link(db, a)

	nf := s.Add(db)
	hs.SetFace(db, nf)
	for e := a; e != db; e = hs.Next(e) {
		hs.SetFace(e, nf)
	}
	s.SetFirst(f, d)

	return nf
}

// MergeFaces merges the face on the left of h with the face across the
// edge, absorbing both into the left face, and returns the merged face.
// The shared edge is removed. Fails — returning false with the mesh
// unmodified — when either side is the boundary or both sides are the
// same face.
// Complexity: O(degree of the absorbed face).
func (s *FaceStore) MergeFaces(h HalfedgeIndex) (FaceIndex, bool) {
	hs := s.mesh.halfedges
	b := hs.Partner(h)
	f := hs.Face(h)
	g := hs.Face(b)
	if !f.Valid() || !g.Valid() || f == g {
		return BoundaryFace, false
	}

	nh := hs.Next(h)
	nb := hs.Next(b)

	// Absorb g's loop into f.
	for e := nb; e != b; e = hs.Next(e) {
		hs.SetFace(e, f)
	}

	// Repair references into the dying pair before removing it.
	vs := s.mesh.vertices
	v0, v1 := hs.VerticesOf(h)
	if vs.Outgoing(v0) == h {
		vs.SetOutgoing(v0, nb)
	}
	if vs.Outgoing(v1) == b {
		vs.SetOutgoing(v1, nh)
	}
	s.SetFirst(f, nh)
	s.remove(g)

	hs.RemovePair(h)

	return f, true
}

// RemoveFace detaches f from its boundary loop — every halfedge of the
// loop becomes a boundary halfedge — and tombstones the record. The loop
// itself stays linked; no edge is removed.
// Complexity: O(degree of f).
func (s *FaceStore) RemoveFace(f FaceIndex) {
	s.check(f)

	hs := s.mesh.halfedges
	for e := range hs.FaceLoop(s.recs[f].First) {
		hs.SetFace(e, BoundaryFace)
	}
	s.remove(f)
}

func (s *FaceStore) remove(f FaceIndex) {
	s.dead.Add(uint32(f))
}
