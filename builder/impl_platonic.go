// File: impl_platonic.go - closed reference solids.
package builder

import "github.com/katalvlaran/hemesh/core"

// Tetrahedron returns a Constructor producing a closed tetrahedron with
// outward anticlockwise winding. Every vertex pair is connected, which
// makes it the canonical fixture for edge-flip rejection.
func Tetrahedron() Constructor {
	return FromFaces(
		[]core.Vec3{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		[][]int{
			{0, 1, 2},
			{0, 3, 1},
			{0, 2, 3},
			{1, 3, 2},
		},
	)
}

// Octahedron returns a Constructor producing a closed octahedron, the
// axis-aligned unit one with poles at ±z.
func Octahedron() Constructor {
	return FromFaces(
		[]core.Vec3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: -1, Y: 0, Z: 0},
			{X: 0, Y: -1, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 0, Y: 0, Z: -1},
		},
		[][]int{
			{0, 1, 4},
			{1, 2, 4},
			{2, 3, 4},
			{3, 0, 4},
			{1, 0, 5},
			{2, 1, 5},
			{3, 2, 5},
			{0, 3, 5},
		},
	)
}
