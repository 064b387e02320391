// File: impl_patch.go - small planar fixtures on the unit square.
package builder

import "github.com/katalvlaran/hemesh/core"

// Quad returns a Constructor producing a single anticlockwise quad
// spanning the unit square in the z=0 plane.
func Quad() Constructor {
	return FromFaces(
		[]core.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		[][]int{{0, 1, 2, 3}},
	)
}

// TrianglePair returns a Constructor producing the unit square split
// along its diagonal into two triangles sharing one interior edge.
func TrianglePair() Constructor {
	return FromFaces(
		[]core.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		[][]int{{0, 1, 2}, {0, 2, 3}},
	)
}
