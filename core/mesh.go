// File: mesh.go
// Role: the Mesh aggregate wiring the three arena stores together.
package core

// Mesh aggregates the halfedge, vertex and face stores of one polygonal
// mesh. Each store holds a non-owning back reference to the Mesh so the
// Euler operators can keep cross-references in all three arenas
// consistent within a single edit.
//
// A Mesh is not safe for concurrent use.
type Mesh struct {
	halfedges *HalfedgeStore
	vertices  *VertexStore
	faces     *FaceStore
}

// NewMesh creates an empty mesh: no halfedges, no vertices, no faces.
// Complexity: O(1).
func NewMesh() *Mesh {
	m := &Mesh{}
	m.halfedges = newHalfedgeStore(m)
	m.vertices = newVertexStore(m)
	m.faces = newFaceStore(m)

	return m
}

// Halfedges returns the halfedge store, the editing surface of the mesh.
func (m *Mesh) Halfedges() *HalfedgeStore { return m.halfedges }

// Vertices returns the vertex store.
func (m *Mesh) Vertices() *VertexStore { return m.vertices }

// Faces returns the face store.
func (m *Mesh) Faces() *FaceStore { return m.faces }
