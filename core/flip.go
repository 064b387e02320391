// File: flip.go
// Role: Euler operator — rotate an interior edge inside its two faces.
package core

// FlipEdge rotates the edge containing h by one vertex on each side,
// within the two faces incident to it. The operator is not restricted
// to triangles: for faces of any degree, each endpoint of the edge
// advances to the following vertex of the opposite face.
//
// Writing a = h and b = its partner, with an = Next(a), bn = Next(b),
// ap = Prev(a), bp = Prev(b): the flipped edge runs from the destination
// of bn to the destination of an, the halfedges an and bn change sides,
// and the two face loops are re-closed by six relinks:
//
//	before            after
//	… ap a  an  …     … ap bn a  Next(an) …   (face of a)
//	… bp b  bn  …     … bp an b  Next(bn) …   (face of b)
//
// Rejections, both returning false with the mesh untouched: either side
// of h is the boundary, or the edge the flip would create already exists
// (looked up via FindHalfedge on the prospective endpoints). On success
// stale vertex outgoing and face anchor references are redirected and
// the operator returns true.
// Complexity: O(degree of the flip endpoints) for the duplicate lookup,
// O(1) relinking.
func (s *HalfedgeStore) FlipEdge(h HalfedgeIndex) bool {
	s.check(h)

	a := h
	b := s.Partner(a)
	f := s.Face(a)
	g := s.Face(b)
	if f == BoundaryFace || g == BoundaryFace {
		return false
	}

	an := s.Next(a)
	bn := s.Next(b)
	u := s.EndVertex(bn) // new start of a
	w := s.EndVertex(an) // new start of b
	if s.FindHalfedge(u, w).Valid() {
		return false
	}

	an2 := s.Next(an)
	bn2 := s.Next(bn)
	ap := s.Prev(a)
	bp := s.Prev(b)
	v0 := s.Start(a)
	v1 := s.Start(b)

	// Six relinks close both rotated loops; every operand was captured
	// above, so the order of the writes is immaterial.
	s.Link(a, an2)
	s.Link(b, bn2)
	s.Link(ap, bn)
	s.Link(bp, an)
	s.Link(an, b)
	s.Link(bn, a)

	// The pair gets its rotated endpoints; the two halfedges that
	// migrated across the edge change sides.
	s.SetStart(a, u)
	s.SetStart(b, w)
	s.SetFace(an, g)
	s.SetFace(bn, f)

	// Redirect references that pointed at something that moved.
	vs := s.mesh.vertices
	if vs.Outgoing(v0) == a {
		vs.SetOutgoing(v0, bn)
	}
	if vs.Outgoing(v1) == b {
		vs.SetOutgoing(v1, an)
	}
	fs := s.mesh.faces
	if fs.First(f) == an {
		fs.SetFirst(f, a)
	}
	if fs.First(g) == bn {
		fs.SetFirst(g, b)
	}

	return true
}
