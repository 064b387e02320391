// Package core implements the halfedge kernel: an index-based topological
// representation of a polygonal mesh with circulators for local traversal
// and Euler operators for in-place connectivity editing.
//
// # Representation
//
// Every undirected mesh edge is stored as a pair of opposed halfedges,
// allocated together and forever adjacent in creation order; the partner
// of a halfedge is recovered from index parity alone. A halfedge records
// its start vertex, the face on its left (or BoundaryFace on the open
// side), and next/prev links that walk the face boundary anticlockwise.
// Vertices, faces and halfedges live in three append-only arenas owned by
// VertexStore, FaceStore and HalfedgeStore; the Mesh aggregate wires the
// three stores together with non-owning back references.
//
// Indices are stable opaque handles. Deletion is logical: a tombstoned
// entry is unlinked from every live cycle, marked dead in a liveness
// bitmap, and lingers in storage until an external compaction pass (see
// the compact package) rebuilds the arenas. No index is ever reused or
// renumbered by this package.
//
// # Editing
//
// The five Euler operators — AddPair/RemovePair, FlipEdge, SplitEdge,
// TriangleSplitEdge and CollapseEdge — either complete fully, leaving
// every invariant holding, or reject before mutating anything. Expected
// topological rejections (flipping a boundary edge, flipping into an
// existing edge, collapsing into a non-manifold vertex) are reported via
// boolean or sentinel returns; out-of-range indices are contract
// violations and panic.
//
// # Concurrency
//
// The kernel is single-threaded and performs no locking. Circulators are
// lazy views over live link state: mutating the mesh while one is being
// consumed is undefined and may loop forever or visit stale entries.
// Serializing edits against traversals is the caller's obligation.
package core
