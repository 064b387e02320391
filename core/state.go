// File: state.go
// Role: raw arena state transfer for the snapshot and compact
// collaborators. State copies everything out, including tombstones, so
// handles survive a save/load round trip unchanged.
package core

// MeshState is a deep copy of the three arenas of a mesh: the full
// record slices plus the tombstoned index sets. It is the unit the
// snapshot package serializes.
type MeshState struct {
	Halfedges     []Halfedge
	DeadHalfedges []HalfedgeIndex
	Vertices      []Vertex
	DeadVertices  []VertexIndex
	Faces         []Face
	DeadFaces     []FaceIndex
}

// State returns a deep copy of the mesh's raw arena state. The copy
// shares nothing with the mesh; mutating either afterwards does not
// affect the other.
// Complexity: O(total entries, dead included).
func (m *Mesh) State() *MeshState {
	st := &MeshState{
		Halfedges: make([]Halfedge, len(m.halfedges.recs)),
		Vertices:  make([]Vertex, len(m.vertices.recs)),
		Faces:     make([]Face, len(m.faces.recs)),
	}
	copy(st.Halfedges, m.halfedges.recs)
	copy(st.Vertices, m.vertices.recs)
	copy(st.Faces, m.faces.recs)

	for _, i := range m.halfedges.dead.ToArray() {
		st.DeadHalfedges = append(st.DeadHalfedges, HalfedgeIndex(i))
	}
	for _, i := range m.vertices.dead.ToArray() {
		st.DeadVertices = append(st.DeadVertices, VertexIndex(i))
	}
	for _, i := range m.faces.dead.ToArray() {
		st.DeadFaces = append(st.DeadFaces, FaceIndex(i))
	}

	return st
}

// FromState reconstructs a mesh from previously captured state. Index
// handles valid against the source mesh are valid against the result.
// Returns ErrBadState when the state cannot describe a mesh: an odd
// number of halfedges or a dead index out of range. Link consistency is
// not re-verified here; run Validate on the result when the state comes
// from an untrusted medium.
// Complexity: O(total entries).
func FromState(st *MeshState) (*Mesh, error) {
	if len(st.Halfedges)%2 != 0 {
		return nil, ErrBadState
	}

	m := NewMesh()
	m.halfedges.recs = make([]Halfedge, len(st.Halfedges))
	copy(m.halfedges.recs, st.Halfedges)
	m.vertices.recs = make([]Vertex, len(st.Vertices))
	copy(m.vertices.recs, st.Vertices)
	m.faces.recs = make([]Face, len(st.Faces))
	copy(m.faces.recs, st.Faces)

	for _, h := range st.DeadHalfedges {
		if h < 0 || int(h) >= len(m.halfedges.recs) {
			return nil, ErrBadState
		}
		m.halfedges.dead.Add(uint32(h))
	}
	for _, v := range st.DeadVertices {
		if v < 0 || int(v) >= len(m.vertices.recs) {
			return nil, ErrBadState
		}
		m.vertices.dead.Add(uint32(v))
	}
	for _, f := range st.DeadFaces {
		if f < 0 || int(f) >= len(m.faces.recs) {
			return nil, ErrBadState
		}
		m.faces.dead.Add(uint32(f))
	}

	return m, nil
}
