// Package hemesh is an in-memory halfedge kernel for polygonal meshes —
// the topology layer beneath remeshing, subdivision and simplification
// algorithms that need fast "what touches this?" queries and cheap,
// consistent connectivity edits.
//
// 🚀 What is hemesh?
//
//	A compact, index-based library that brings together:
//		• Halfedge storage: append-only arenas with stable integer handles
//		• Circulators: lazy traversal around any vertex or face
//		• Euler operators: add/remove pairs, flip, split, collapse edges
//		• Invariant checking: full-mesh self-consistency validation
//		• Construction: indexed face lists and primitive factories
//		• Maintenance: compaction of tombstoned entries, binary snapshots
//
// ✨ Why choose hemesh?
//
//   - Index handles, not pointers – no dangling references, trivially
//     serializable, stable across every edit
//   - Atomic operators – every edit completes fully or rejects before
//     touching anything; the mesh is never observably half-rewired
//   - General polygons – faces are not restricted to triangles
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — halfedge/vertex/face stores, circulators & Euler operators
//	builder/  — mesh construction from indexed faces + primitive factories
//	compact/  — dense renumbering pass that drops tombstoned entries
//	snapshot/ — binary save/load of the raw arenas (cache, not interchange)
//
// Quick ASCII example:
//
//	    A───B        each undirected edge is a pair of opposed
//	    │ f │        halfedges; following Next anticlockwise
//	    C───D        walks the boundary loop of face f.
//
//	go get github.com/katalvlaran/hemesh/core
package hemesh
