// File: errors.go — sentinel errors for the builder package.
//
// Error policy, inherited from the rest of the module: only package-level
// sentinels are exposed, callers branch with errors.Is, and constructors
// attach context with %w wrapping. Constructors never panic.
package builder

import "errors"

// ErrFaceTooSmall indicates a face with fewer than three vertices.
var ErrFaceTooSmall = errors.New("builder: face needs at least three vertices")

// ErrVertexRange indicates a face referencing a vertex index outside the
// supplied position table.
var ErrVertexRange = errors.New("builder: face vertex index out of range")

// ErrNonManifoldEdge indicates a directed edge used by more than one
// face, i.e. an undirected edge with more than two incident faces or
// inconsistent winding between neighbors.
var ErrNonManifoldEdge = errors.New("builder: non-manifold or inconsistently wound edge")

// ErrOpenEdgeMismatch indicates boundary halfedges that do not chain
// into closed loops — a vertex where the open fan forks or dead-ends.
var ErrOpenEdgeMismatch = errors.New("builder: boundary edges do not form closed loops")

// ErrGridTooSmall indicates a grid constructor invoked with fewer than
// one cell per direction.
var ErrGridTooSmall = errors.New("builder: grid needs at least one cell per direction")

// ErrConstructFailed indicates a nil constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
