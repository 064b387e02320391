// File: impl_grid.go - regular quad and triangle grid patches.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
)

// Grid returns a Constructor producing an nx by ny patch of unit quads
// in the z=0 plane, (nx+1)*(ny+1) vertices in row-major order.
//
// Errors: ErrGridTooSmall when nx or ny is below one.
// Complexity: O(nx*ny).
func Grid(nx, ny int) Constructor {
	return func(m *core.Mesh) error {
		if nx < 1 || ny < 1 {
			return fmt.Errorf("Grid(%d,%d): %w", nx, ny, ErrGridTooSmall)
		}

		positions := gridPositions(nx, ny)
		faces := make([][]int, 0, nx*ny)
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				v := y*(nx+1) + x
				faces = append(faces, []int{v, v + 1, v + nx + 2, v + nx + 1})
			}
		}

		return FromFaces(positions, faces)(m)
	}
}

// TriangleGrid is Grid with every quad cut along the same diagonal,
// yielding 2*nx*ny triangles.
func TriangleGrid(nx, ny int) Constructor {
	return func(m *core.Mesh) error {
		if nx < 1 || ny < 1 {
			return fmt.Errorf("TriangleGrid(%d,%d): %w", nx, ny, ErrGridTooSmall)
		}

		positions := gridPositions(nx, ny)
		faces := make([][]int, 0, 2*nx*ny)
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				v := y*(nx+1) + x
				faces = append(faces,
					[]int{v, v + 1, v + nx + 2},
					[]int{v, v + nx + 2, v + nx + 1},
				)
			}
		}

		return FromFaces(positions, faces)(m)
	}
}

func gridPositions(nx, ny int) []core.Vec3 {
	positions := make([]core.Vec3, 0, (nx+1)*(ny+1))
	for y := 0; y <= ny; y++ {
		for x := 0; x <= nx; x++ {
			positions = append(positions, core.Vec3{X: float64(x), Y: float64(y)})
		}
	}

	return positions
}
