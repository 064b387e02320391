// File: split.go
// Role: Euler operators — insert a vertex into an edge; refine a
// two-triangle edge into four triangles.
package core

// SplitEdge inserts a new vertex into the edge containing h, splitting
// it into two collinear edges. The new vertex clones the position of h's
// destination; a new pair from the new vertex to the old destination is
// spliced into both incident loops, inheriting h's face on one side and
// the partner's face on the other. Always succeeds.
//
// Returns the new halfedge running from the new vertex toward the
// original destination.
// Complexity: O(1).
func (s *HalfedgeStore) SplitEdge(h HalfedgeIndex) HalfedgeIndex {
	s.check(h)

	b := s.Partner(h)
	v1 := s.Start(b) // old destination
	vs := s.mesh.vertices
	nv := vs.Add(vs.Position(v1))

	t := s.AddPair(nv, v1, s.Face(h))
	tb := s.Partner(t)
	s.SetFace(tb, s.Face(b))

	// Splice t between h and its old successor. Prev(b) is read after
	// this: when h and b are cycle-adjacent (a dangling edge) the first
	// splice changes b's predecessor.
	s.Link(t, s.Next(h))
	s.Link(h, t)

	// Splice tb between b's predecessor and b.
	s.Link(s.Prev(b), tb)
	s.Link(tb, b)

	// b now leaves the new vertex.
	s.SetStart(b, nv)
	if vs.Outgoing(v1) == b {
		vs.SetOutgoing(v1, tb)
	}
	vs.SetOutgoing(nv, t)

	return t
}

// TriangleSplitEdge refines an edge shared by two triangles: it splits
// the edge, moves the new vertex to the true midpoint of the original
// endpoints, then splits each of the two (now quadrilateral) incident
// faces along the diagonal from the new vertex to the far vertex,
// producing four triangles in place of the original two.
//
// The caller guarantees both sides of h are triangles. Returns the new
// halfedge from the new vertex toward the original destination, exactly
// as SplitEdge does.
// Complexity: O(1).
func (s *HalfedgeStore) TriangleSplitEdge(h HalfedgeIndex) HalfedgeIndex {
	s.check(h)

	vs := s.mesh.vertices
	p0 := vs.Position(s.Start(h))
	p1 := vs.Position(s.EndVertex(h))

	t := s.SplitEdge(h)
	nv := s.Start(t)
	vs.SetPosition(nv, Midpoint(p0, p1))

	// After the split each side is a quad: h t n1 n2 around h's face and
	// tb hb m1 m2 around the partner's. The diagonals run from the new
	// vertex to the quads' far corners, Start(Prev(h)) and
	// Start(Prev(tb)).
	fs := s.mesh.faces
	fs.SplitFace(t, s.Prev(h))
	tb := s.Partner(t)
	fs.SplitFace(s.Partner(h), s.Prev(tb))

	return t
}
