// File: types.go
// Role: index handles, arena records, geometric helpers and sentinel errors
// shared by the three stores.
package core

import "errors"

// Sentinel errors reported by (*Mesh).Validate and FromState.
// Callers branch with errors.Is; Validate wraps each with the offending
// entity's index via %w.
var (
	// ErrPairParity indicates a halfedge whose partner does not share its
	// liveness, which can only happen if arena state was corrupted.
	ErrPairParity = errors.New("core: halfedge pair liveness mismatch")

	// ErrLinkInverse indicates next/prev links that are not exact inverses.
	ErrLinkInverse = errors.New("core: next/prev links are not inverse")

	// ErrDeadReference indicates a live entity referencing a dead or
	// invalid one.
	ErrDeadReference = errors.New("core: live entity references dead entry")

	// ErrFaceClosure indicates a face whose boundary walk does not return
	// to its first halfedge through halfedges of that face.
	ErrFaceClosure = errors.New("core: face boundary loop is not closed")

	// ErrVertexClosure indicates a vertex whose outgoing circulator does
	// not return to its recorded outgoing halfedge.
	ErrVertexClosure = errors.New("core: vertex ring is not closed")

	// ErrUnboundedWalk indicates a link walk that exceeded the number of
	// live halfedges, i.e. a cycle that does not contain its start.
	ErrUnboundedWalk = errors.New("core: link walk did not terminate")

	// ErrBadState indicates a MeshState that cannot describe a mesh
	// (odd halfedge count, out-of-range dead index, mismatched lengths).
	ErrBadState = errors.New("core: malformed mesh state")
)

// HalfedgeIndex is a stable handle into the halfedge arena.
type HalfedgeIndex int

// VertexIndex is a stable handle into the vertex arena.
type VertexIndex int

// FaceIndex is a stable handle into the face arena.
type FaceIndex int

const (
	// InvalidHalfedge is the "no halfedge" sentinel, returned by queries
	// that find nothing and by rejected operators.
	InvalidHalfedge HalfedgeIndex = -1

	// InvalidVertex is the "no vertex" sentinel.
	InvalidVertex VertexIndex = -1

	// BoundaryFace marks the open side of a boundary halfedge: the edge
	// has no face on that side and its next/prev links walk the outer
	// boundary loop instead of a face loop.
	BoundaryFace FaceIndex = -1
)

// Valid reports whether h refers to a halfedge slot.
func (h HalfedgeIndex) Valid() bool { return h >= 0 }

// Valid reports whether v refers to a vertex slot.
func (v VertexIndex) Valid() bool { return v >= 0 }

// Valid reports whether f refers to a face slot; BoundaryFace is not valid.
func (f FaceIndex) Valid() bool { return f >= 0 }

// Halfedge is one directed half of a mesh edge.
//
// Next walks anticlockwise around Face (or around the boundary loop when
// Face is BoundaryFace); Prev is maintained as the exact inverse of Next.
// The partner halfedge is not stored: it is the pair neighbor at index^1.
type Halfedge struct {
	// Start is the vertex this halfedge originates from.
	Start VertexIndex

	// Face is the face on the left of the halfedge, or BoundaryFace.
	Face FaceIndex

	// Next is the following halfedge around Face.
	Next HalfedgeIndex

	// Prev is the halfedge whose Next is this one.
	Prev HalfedgeIndex
}

// Vertex is a mesh vertex record: a position plus one arbitrary outgoing
// halfedge. By convention construction points Outgoing at a boundary
// halfedge whenever the vertex lies on the boundary.
type Vertex struct {
	// Position is the vertex location in space.
	Position Vec3

	// Outgoing is some halfedge starting at this vertex, or
	// InvalidHalfedge for an isolated vertex.
	Outgoing HalfedgeIndex
}

// Face is a mesh face record: one halfedge of its boundary loop.
type Face struct {
	// First is a halfedge with Face equal to this face's index.
	First HalfedgeIndex
}

// Vec3 is a position in 3-space. The kernel needs no geometry beyond
// coordinate averaging for the split operators; richer vector math
// belongs to the algorithm layers above.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the componentwise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec3) Vec3 {
	return a.Add(b).Scale(0.5)
}
