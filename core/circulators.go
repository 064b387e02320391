// File: circulators.go
// Role: the two lazy traversal sequences — around a vertex, around a face.
package core

import "iter"

// VertexLoop returns the sequence of halfedges outgoing from Start(h),
// beginning at h, in the rotational order implied by the Next convention.
// The advance rule is h := Next(Partner(h)); the sequence ends when h is
// seen again. The sequence is restartable: ranging over it twice walks
// the ring twice from live state.
//
// The sequence is a view over live links. Editing the mesh while a loop
// is being consumed is undefined: it may terminate early, revisit
// entries, or never terminate. Callers serialize edits against
// traversals (see package doc).
// Complexity: O(degree of the vertex) per full consumption.
func (s *HalfedgeStore) VertexLoop(h HalfedgeIndex) iter.Seq[HalfedgeIndex] {
	s.check(h)

	return func(yield func(HalfedgeIndex) bool) {
		e := h
		for {
			if !yield(e) {
				return
			}
			e = s.Next(s.Partner(e))
			if e == h {
				return
			}
		}
	}
}

// FaceLoop returns the sequence of halfedges bounding Face(h), beginning
// at h and advancing by Next until h is seen again. For a boundary
// halfedge it walks the outer boundary loop instead.
//
// The same mutation caveat as VertexLoop applies.
// Complexity: O(degree of the face) per full consumption.
func (s *HalfedgeStore) FaceLoop(h HalfedgeIndex) iter.Seq[HalfedgeIndex] {
	s.check(h)

	return func(yield func(HalfedgeIndex) bool) {
		e := h
		for {
			if !yield(e) {
				return
			}
			e = s.Next(e)
			if e == h {
				return
			}
		}
	}
}
