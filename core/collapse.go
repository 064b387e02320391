// File: collapse.go
// Role: Euler operator — contract an edge, merging its endpoints.
package core

// CollapseEdge removes the edge containing h by merging its two
// endpoints: the destination vertex is deleted and every halfedge that
// left it is re-rooted at the surviving start vertex.
//
// Rejection: an interior edge (a face on both sides) whose endpoints are
// both boundary vertices would glue two boundary fans at a point and
// create a non-manifold vertex; such a collapse returns InvalidHalfedge
// with the mesh untouched. The boundary test deliberately inspects only
// the two endpoints' recorded outgoing halfedges, not their full rings;
// construction points boundary vertices at boundary halfedges, which is
// what makes the narrow test meaningful.
//
// Any incident face the contraction would push below three sides is
// first merged with its neighbor across the edge entering the surviving
// vertex; when that merge is refused (boundary neighbor, or the loops
// already coincide) the face is removed outright instead, its loop
// becoming boundary.
//
// Returns the halfedge that follows the collapsed edge around the
// surviving vertex — a natural continuation point for iterative
// algorithms.
// Complexity: O(degree of the dying vertex + degrees of the dissolved
// faces).
func (s *HalfedgeStore) CollapseEdge(h HalfedgeIndex) HalfedgeIndex {
	s.check(h)

	b := s.Partner(h)
	vs := s.mesh.vertices
	fs := s.mesh.faces
	vKeep := s.Start(h)
	vGone := s.Start(b)

	if !s.IsBoundary(h) &&
		s.IsBoundary(vs.Outgoing(vKeep)) &&
		s.IsBoundary(vs.Outgoing(vGone)) {
		return InvalidHalfedge
	}

	// Faces about to drop below triangle degree are dissolved first,
	// while their loops are still intact.
	s.dissolveSmallFace(h)
	s.dissolveSmallFace(b)

	// Re-root the full outgoing ring of the dying vertex. Only Start
	// fields change, so walking the ring while rewriting them is safe.
	for e := range vs.CirculateOutgoing(vGone) {
		s.SetStart(e, vKeep)
	}

	// The surviving vertex inherits an anchor: prefer the dying vertex's
	// boundary outgoing (so boundary vertices keep pointing at the
	// boundary), otherwise just move off the collapsed halfedge.
	goneOut := vs.Outgoing(vGone)
	if s.IsBoundary(goneOut) && goneOut != b {
		vs.SetOutgoing(vKeep, goneOut)
	} else if vs.Outgoing(vKeep) == h {
		vs.SetOutgoing(vKeep, s.Next(b))
	}

	ret := s.Next(b)

	// Bypass each half inside its own loop. This is not RemovePair: the
	// two loops must stay separate, and the face anchors still reference
	// the dying pair until the step after.
	s.Link(s.Prev(h), s.Next(h))
	s.Link(s.Prev(b), s.Next(b))

	if f := s.Face(h); f.Valid() && fs.First(f) == h {
		fs.SetFirst(f, s.Next(h))
	}
	if g := s.Face(b); g.Valid() && fs.First(g) == b {
		fs.SetFirst(g, s.Next(b))
	}

	s.markPairDead(h)
	vs.remove(vGone)

	return ret
}

// dissolveSmallFace merges away the face on the left of x when the
// collapse of x's edge would leave it with fewer than three sides. The
// merge happens across the loop edge entering Start(x); a refused merge
// degrades to removing the face outright.
func (s *HalfedgeStore) dissolveSmallFace(x HalfedgeIndex) {
	f := s.Face(x)
	if !f.Valid() {
		return
	}
	fs := s.mesh.faces
	if fs.Degree(f) >= 4 {
		return
	}
	if _, ok := fs.MergeFaces(s.Prev(x)); !ok {
		fs.RemoveFace(f)
	}
}
