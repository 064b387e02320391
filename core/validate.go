// File: validate.go
// Role: full-mesh self-consistency check over every live entity.
package core

import "fmt"

// Validate walks every live halfedge, face and vertex and checks the
// kernel invariants at rest: pair liveness, next/prev inversion, face
// and vertex ring closure, and that nothing live references a dead or
// out-of-range entry. It returns the first violation found, wrapped with
// the offending index, or nil for a consistent mesh.
//
// Every walk is bounded by the number of live halfedges, so Validate
// terminates (with ErrUnboundedWalk) even when the links are corrupted
// into a cycle that misses its start. That bound exists only here; the
// circulators themselves stay unguarded.
// Complexity: O(total live halfedges) across all checks.
func (m *Mesh) Validate() error {
	hs := m.halfedges
	vs := m.vertices
	fs := m.faces
	bound := hs.LiveCount() + 1

	for i := 0; i < hs.Count(); i++ {
		h := HalfedgeIndex(i)
		if hs.IsDead(h) {
			continue
		}
		if err := m.validateHalfedge(h); err != nil {
			return err
		}
	}

	for i := 0; i < fs.Count(); i++ {
		f := FaceIndex(i)
		if fs.IsDead(f) {
			continue
		}
		if err := m.validateFaceLoop(f, bound); err != nil {
			return err
		}
	}

	for i := 0; i < vs.Count(); i++ {
		v := VertexIndex(i)
		if vs.IsDead(v) {
			continue
		}
		if err := m.validateVertexRing(v, bound); err != nil {
			return err
		}
	}

	return nil
}

func (m *Mesh) validateHalfedge(h HalfedgeIndex) error {
	hs := m.halfedges
	if hs.IsDead(hs.Partner(h)) {
		return fmt.Errorf("halfedge %d: %w", h, ErrPairParity)
	}

	n := hs.Next(h)
	p := hs.Prev(h)
	if !n.Valid() || int(n) >= hs.Count() || hs.IsDead(n) ||
		!p.Valid() || int(p) >= hs.Count() || hs.IsDead(p) {
		return fmt.Errorf("halfedge %d links: %w", h, ErrDeadReference)
	}
	if hs.Prev(n) != h || hs.Next(p) != h {
		return fmt.Errorf("halfedge %d: %w", h, ErrLinkInverse)
	}

	v := hs.Start(h)
	if !v.Valid() || int(v) >= m.vertices.Count() || m.vertices.IsDead(v) {
		return fmt.Errorf("halfedge %d start: %w", h, ErrDeadReference)
	}
	if f := hs.Face(h); f != BoundaryFace {
		if !f.Valid() || int(f) >= m.faces.Count() || m.faces.IsDead(f) {
			return fmt.Errorf("halfedge %d face: %w", h, ErrDeadReference)
		}
	}

	return nil
}

func (m *Mesh) validateFaceLoop(f FaceIndex, bound int) error {
	hs := m.halfedges
	first := m.faces.First(f)
	if !first.Valid() || int(first) >= hs.Count() || hs.IsDead(first) {
		return fmt.Errorf("face %d anchor: %w", f, ErrDeadReference)
	}

	e := first
	for steps := 0; ; steps++ {
		if steps >= bound {
			return fmt.Errorf("face %d: %w", f, ErrUnboundedWalk)
		}
		if hs.Face(e) != f {
			return fmt.Errorf("face %d at halfedge %d: %w", f, e, ErrFaceClosure)
		}
		e = hs.Next(e)
		if e == first {
			return nil
		}
	}
}

func (m *Mesh) validateVertexRing(v VertexIndex, bound int) error {
	hs := m.halfedges
	out := m.vertices.Outgoing(v)
	if !out.Valid() {
		// Isolated vertices are legal; nothing to walk.
		return nil
	}
	if int(out) >= hs.Count() || hs.IsDead(out) {
		return fmt.Errorf("vertex %d outgoing: %w", v, ErrDeadReference)
	}

	e := out
	for steps := 0; ; steps++ {
		if steps >= bound {
			return fmt.Errorf("vertex %d: %w", v, ErrUnboundedWalk)
		}
		if hs.Start(e) != v {
			return fmt.Errorf("vertex %d at halfedge %d: %w", v, e, ErrVertexClosure)
		}
		e = hs.Next(hs.Partner(e))
		if e == out {
			return nil
		}
	}
}
