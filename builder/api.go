// File: api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(cons...). Creates the mesh, runs the
//     constructors in order, validates the result.
//   - All public factories return Constructor closures; FromFaces is the
//     general one, the rest are fixed tables feeding it.
//   - Constructors validate their input before touching the mesh and
//     return sentinel errors; they never panic.
//   - Determinism: the same constructors in the same order produce the
//     same mesh, index for index.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
)

// Constructor applies one deterministic construction step to a mesh.
// Constructors compose: each sees the mesh as previous ones left it, so
// several primitives build disjoint components of one mesh.
type Constructor func(m *core.Mesh) error

// Build creates an empty mesh, applies all constructors in order, and
// checks the result with core Validate. Any constructor error is
// wrapped with "Build: %w" and returned immediately; the partially
// constructed mesh is discarded.
//
// Errors: builder sentinels from constructors; core validation errors
// when a constructor produced inconsistent topology (which would be a
// bug in the constructor, not in the input).
// Complexity: sum of the constructors plus one O(mesh) validation pass.
func Build(cons ...Constructor) (*core.Mesh, error) {
	m := core.NewMesh()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}
