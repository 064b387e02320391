// File: compact.go - dense rebuild of a mesh and the handle translation.
package compact

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
)

// Remap translates handles valid against the compacted mesh's source
// into handles valid against the compacted mesh. Each slice is indexed
// by the old handle; tombstoned entries map to the invalid sentinel.
type Remap struct {
	Halfedges []core.HalfedgeIndex
	Vertices  []core.VertexIndex
	Faces     []core.FaceIndex
}

// Halfedge translates an old halfedge handle, InvalidHalfedge for a
// handle that was dead (or invalid) in the source.
func (r *Remap) Halfedge(h core.HalfedgeIndex) core.HalfedgeIndex {
	if h < 0 || int(h) >= len(r.Halfedges) {
		return core.InvalidHalfedge
	}

	return r.Halfedges[h]
}

// Vertex translates an old vertex handle, InvalidVertex for a dead one.
func (r *Remap) Vertex(v core.VertexIndex) core.VertexIndex {
	if v < 0 || int(v) >= len(r.Vertices) {
		return core.InvalidVertex
	}

	return r.Vertices[v]
}

// Face translates an old face handle. BoundaryFace translates to itself
// so stored face references pass through unchanged.
func (r *Remap) Face(f core.FaceIndex) core.FaceIndex {
	if f == core.BoundaryFace {
		return core.BoundaryFace
	}
	if f < 0 || int(f) >= len(r.Faces) {
		return core.BoundaryFace
	}

	return r.Faces[f]
}

// Compact returns a tombstone-free copy of m plus the old→new handle
// translation. The input is left untouched. The copy's arenas contain
// exactly the live entities of m, in source order, with every internal
// reference rewritten.
// Complexity: O(total source entries, dead included).
func Compact(m *core.Mesh) (*core.Mesh, *Remap, error) {
	st := m.State()
	r := buildRemap(st)

	ns := &core.MeshState{
		Halfedges: make([]core.Halfedge, 0, m.Halfedges().LiveCount()),
		Vertices:  make([]core.Vertex, 0, m.Vertices().LiveCount()),
		Faces:     make([]core.Face, 0, m.Faces().LiveCount()),
	}

	for old, rec := range st.Halfedges {
		if !r.Halfedges[old].Valid() {
			continue
		}
		ns.Halfedges = append(ns.Halfedges, core.Halfedge{
			Start: r.Vertex(rec.Start),
			Face:  r.Face(rec.Face),
			Next:  r.Halfedge(rec.Next),
			Prev:  r.Halfedge(rec.Prev),
		})
	}
	for old, rec := range st.Vertices {
		if !r.Vertices[old].Valid() {
			continue
		}
		ns.Vertices = append(ns.Vertices, core.Vertex{
			Position: rec.Position,
			Outgoing: r.Halfedge(rec.Outgoing),
		})
	}
	for old, rec := range st.Faces {
		if !r.Faces[old].Valid() {
			continue
		}
		ns.Faces = append(ns.Faces, core.Face{First: r.Halfedge(rec.First)})
	}

	nm, err := core.FromState(ns)
	if err != nil {
		return nil, nil, fmt.Errorf("Compact: %w", err)
	}

	return nm, r, nil
}

// buildRemap assigns dense new indices to the live entries of st.
func buildRemap(st *core.MeshState) *Remap {
	r := &Remap{
		Halfedges: make([]core.HalfedgeIndex, len(st.Halfedges)),
		Vertices:  make([]core.VertexIndex, len(st.Vertices)),
		Faces:     make([]core.FaceIndex, len(st.Faces)),
	}

	deadH := make(map[core.HalfedgeIndex]struct{}, len(st.DeadHalfedges))
	for _, h := range st.DeadHalfedges {
		deadH[h] = struct{}{}
	}
	deadV := make(map[core.VertexIndex]struct{}, len(st.DeadVertices))
	for _, v := range st.DeadVertices {
		deadV[v] = struct{}{}
	}
	deadF := make(map[core.FaceIndex]struct{}, len(st.DeadFaces))
	for _, f := range st.DeadFaces {
		deadF[f] = struct{}{}
	}

	next := core.HalfedgeIndex(0)
	for old := range st.Halfedges {
		if _, dead := deadH[core.HalfedgeIndex(old)]; dead {
			r.Halfedges[old] = core.InvalidHalfedge
			continue
		}
		r.Halfedges[old] = next
		next++
	}
	nv := core.VertexIndex(0)
	for old := range st.Vertices {
		if _, dead := deadV[core.VertexIndex(old)]; dead {
			r.Vertices[old] = core.InvalidVertex
			continue
		}
		r.Vertices[old] = nv
		nv++
	}
	nf := core.FaceIndex(0)
	for old := range st.Faces {
		if _, dead := deadF[core.FaceIndex(old)]; dead {
			r.Faces[old] = core.BoundaryFace
			continue
		}
		r.Faces[old] = nf
		nf++
	}

	return r
}
