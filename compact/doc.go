// Package compact rebuilds a mesh without its tombstoned entries.
//
// The core arenas never reuse indices: deleted halfedges, vertices and
// faces linger as tombstones so live handles stay stable across edits.
// After a long editing session the arenas accumulate garbage; Compact
// produces a fresh mesh holding only the live entities, densely
// indexed, together with the index translation needed to carry external
// handles over.
//
// Pairing survives compaction for free. The two halves of an edge are
// arena neighbors and die together, so dropping dead entries keeps every
// surviving pair adjacent and even-aligned.
//
// Compact never mutates its input. Like the rest of the module it is
// not safe for concurrent use with writers of the same mesh.
package compact
