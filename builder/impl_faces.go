// File: impl_faces.go - general indexed-face-list assembly.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
)

// FromFaces returns a Constructor that assembles mesh topology from
// vertex positions and faces given as anticlockwise vertex index loops.
//
// Assembly: one halfedge pair per undirected edge, created when the edge
// is first seen and claimed from the boundary side when its other face
// arrives; face loops linked in input order; remaining unclaimed sides
// linked into the outer boundary loops; every boundary vertex's outgoing
// pointer set to its boundary halfedge, interior vertices to an
// arbitrary one.
//
// Errors:
//   - ErrFaceTooSmall: a face with fewer than three vertices.
//   - ErrVertexRange: a face referencing a missing position.
//   - ErrNonManifoldEdge: a directed edge used twice (three faces on an
//     edge, or two neighbors wound the same way).
//   - ErrOpenEdgeMismatch: boundary halfedges that fork or dead-end at a
//     vertex instead of chaining into loops.
//
// Input validation happens before the mesh is touched; the edge-chaining
// errors are detected during assembly, where Build discards the mesh.
// Complexity: O(total face corners).
func FromFaces(positions []core.Vec3, faces [][]int) Constructor {
	return func(m *core.Mesh) error {
		if err := checkFaceTable(len(positions), faces); err != nil {
			return err
		}

		vs := m.Vertices()
		hs := m.Halfedges()
		fs := m.Faces()

		vertexBase := core.VertexIndex(vs.Count())
		halfedgeBase := hs.Count()
		for _, p := range positions {
			vs.Add(p)
		}

		// Directed local edge -> its halfedge, for partner claiming.
		pairs := make(map[[2]int]core.HalfedgeIndex, 3*len(faces))
		for _, face := range faces {
			n := len(face)
			f := fs.Add(core.InvalidHalfedge)
			loop := make([]core.HalfedgeIndex, n)

			for k := 0; k < n; k++ {
				a, b := face[k], face[(k+1)%n]
				if rev, ok := pairs[[2]int{b, a}]; ok {
					h := hs.Partner(rev)
					hs.SetFace(h, f)
					loop[k] = h
				} else {
					h := hs.AddPair(vertexBase+core.VertexIndex(a), vertexBase+core.VertexIndex(b), f)
					pairs[[2]int{a, b}] = h
					loop[k] = h
				}
			}

			for k := 0; k < n; k++ {
				hs.Link(loop[k], loop[(k+1)%n])
				vs.SetOutgoing(hs.Start(loop[k]), loop[k])
			}
			fs.SetFirst(f, loop[0])
		}

		return linkBoundary(m, halfedgeBase)
	}
}

// checkFaceTable validates the raw input without touching any mesh.
func checkFaceTable(vertexCount int, faces [][]int) error {
	seen := make(map[[2]int]struct{})
	for i, face := range faces {
		if len(face) < 3 {
			return fmt.Errorf("FromFaces: face %d: %w", i, ErrFaceTooSmall)
		}
		for k, vi := range face {
			if vi < 0 || vi >= vertexCount {
				return fmt.Errorf("FromFaces: face %d vertex %d: %w", i, vi, ErrVertexRange)
			}
			e := [2]int{vi, face[(k+1)%len(face)]}
			if _, dup := seen[e]; dup {
				return fmt.Errorf("FromFaces: face %d edge %d→%d: %w", i, e[0], e[1], ErrNonManifoldEdge)
			}
			seen[e] = struct{}{}
		}
	}

	return nil
}

// linkBoundary chains the unclaimed halfedge sides created since
// halfedgeBase into boundary loops and roots boundary vertices there.
func linkBoundary(m *core.Mesh, halfedgeBase int) error {
	hs := m.Halfedges()
	vs := m.Vertices()

	open := make(map[core.VertexIndex]core.HalfedgeIndex)
	for i := halfedgeBase; i < hs.Count(); i++ {
		h := core.HalfedgeIndex(i)
		if hs.Face(h) != core.BoundaryFace {
			continue
		}
		v := hs.Start(h)
		if _, dup := open[v]; dup {
			return fmt.Errorf("FromFaces: vertex %d: %w", v, ErrOpenEdgeMismatch)
		}
		open[v] = h
	}

	for _, h := range open {
		next, ok := open[hs.EndVertex(h)]
		if !ok {
			return fmt.Errorf("FromFaces: halfedge %d: %w", h, ErrOpenEdgeMismatch)
		}
		hs.Link(h, next)
	}

	// Boundary vertices point at the boundary; the collapse operator's
	// narrow manifoldness test relies on this convention.
	for v, h := range open {
		vs.SetOutgoing(v, h)
	}

	return nil
}
