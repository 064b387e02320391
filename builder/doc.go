// Package builder constructs halfedge meshes from indexed face lists and
// from a small set of primitive factories.
//
// The kernel deliberately owns no import surface: its operators edit
// existing topology but never assemble a mesh from raw arrays. This
// package is that collaborator. The single orchestrator
//
//	m, err := builder.Build(builder.Tetrahedron())
//
// creates an empty mesh, applies the given constructors in order, and
// verifies the result with core Validate before returning it.
//
// FromFaces is the general entry point: vertex positions plus faces as
// anticlockwise vertex index loops. It rejects inputs the halfedge
// representation cannot hold — a directed edge used by two faces, or a
// boundary vertex whose open edges do not chain into loops — with
// sentinel errors. The primitive factories (Quad, Grid, TrianglePair,
// Tetrahedron, Octahedron) are FromFaces applied to fixed tables and
// exist mostly to keep tests and examples terse.
//
// Determinism: identical inputs produce identical meshes, index for
// index — constructors add vertices, halfedge pairs and faces in input
// order.
package builder
