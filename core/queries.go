// File: queries.go
// Role: read-only lookup helpers over the halfedge arena.
package core

// EndVertex returns the destination of h: the start vertex of its
// partner.
func (s *HalfedgeStore) EndVertex(h HalfedgeIndex) VertexIndex {
	return s.Start(s.Partner(h))
}

// IsBoundary reports whether h belongs to a boundary edge, i.e. whether
// h or its partner has no adjacent face.
func (s *HalfedgeStore) IsBoundary(h HalfedgeIndex) bool {
	return s.Face(h) == BoundaryFace || s.Face(s.Partner(h)) == BoundaryFace
}

// FindHalfedge returns the halfedge running start→end, or
// InvalidHalfedge when the two vertices are not connected by an edge.
// It scans the outgoing ring of start, so isolated vertices are simply
// not connected to anything.
// Complexity: O(degree of start).
func (s *HalfedgeStore) FindHalfedge(start, end VertexIndex) HalfedgeIndex {
	s.mesh.vertices.check(start)
	s.mesh.vertices.check(end)

	found := InvalidHalfedge
	for e := range s.mesh.vertices.CirculateOutgoing(start) {
		if s.EndVertex(e) == end {
			found = e
			break
		}
	}

	return found
}
