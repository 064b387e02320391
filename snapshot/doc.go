// Package snapshot serializes meshes to a compact binary format and
// restores them.
//
// The format is a fixed little-endian header (magic "HEM1", a format
// version, a compression tag) followed by the raw arena state of the
// mesh, optionally compressed as one LZ4 or zstd stream. Tombstones are
// written out too: a restored mesh answers every index handle exactly
// like the mesh that was saved, compaction is a separate explicit step.
//
// Write defaults to no compression; pass WithCompression to trade CPU
// for size:
//
//	err := snapshot.Write(f, m, snapshot.WithCompression(snapshot.CompressionZstd))
//
// Read restores from any io.Reader and runs full validation on the
// result, so a truncated or tampered stream is reported as an error
// rather than as a corrupt mesh.
package snapshot
