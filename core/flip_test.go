package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hemesh/builder"
	"github.com/katalvlaran/hemesh/core"
)

// FlipSuite exercises edge flipping on closed and open meshes.
type FlipSuite struct {
	suite.Suite
}

// TestEquatorFlip flips an octahedron equator edge into the pole-to-pole
// diagonal and verifies the rewiring.
func (s *FlipSuite) TestEquatorFlip() {
	m, err := builder.Build(builder.Octahedron())
	require.NoError(s.T(), err)
	hs := m.Halfedges()

	h := hs.FindHalfedge(0, 1)
	require.True(s.T(), h.Valid())

	require.True(s.T(), hs.FlipEdge(h))
	require.NoError(s.T(), m.Validate())

	// The equator edge is gone, the pole diagonal exists, and the flipped
	// pair itself carries the new endpoints.
	require.False(s.T(), hs.FindHalfedge(0, 1).Valid())
	require.True(s.T(), hs.FindHalfedge(4, 5).Valid())
	v0, v1 := hs.VerticesOf(h)
	require.ElementsMatch(s.T(), []core.VertexIndex{4, 5}, []core.VertexIndex{v0, v1})

	// Flips neither create nor destroy entities.
	require.Equal(s.T(), 24, hs.LiveCount())
	require.Equal(s.T(), 6, m.Vertices().LiveCount())
	require.Equal(s.T(), 8, m.Faces().LiveCount())
}

// TestFlipRoundTrip flips an edge and flips it back, recovering the
// original connectivity.
func (s *FlipSuite) TestFlipRoundTrip() {
	m, err := builder.Build(builder.Octahedron())
	require.NoError(s.T(), err)
	hs := m.Halfedges()

	h := hs.FindHalfedge(0, 1)
	require.True(s.T(), hs.FlipEdge(h))
	require.True(s.T(), hs.FlipEdge(h))
	require.NoError(s.T(), m.Validate())

	require.True(s.T(), hs.FindHalfedge(0, 1).Valid())
	require.False(s.T(), hs.FindHalfedge(4, 5).Valid())
}

// TestRejectExistingEdge verifies that a flip whose result would
// duplicate an existing edge is refused. On a tetrahedron every vertex
// pair is already connected, so no edge can flip.
func (s *FlipSuite) TestRejectExistingEdge() {
	m, err := builder.Build(builder.Tetrahedron())
	require.NoError(s.T(), err)
	hs := m.Halfedges()

	for i := 0; i < hs.Count(); i++ {
		require.False(s.T(), hs.FlipEdge(core.HalfedgeIndex(i)))
	}
	require.NoError(s.T(), m.Validate())
	require.Equal(s.T(), 12, hs.LiveCount())
}

// TestRejectBoundary verifies that boundary edges never flip.
func (s *FlipSuite) TestRejectBoundary() {
	m, err := builder.Build(builder.Quad())
	require.NoError(s.T(), err)
	hs := m.Halfedges()

	h := hs.FindHalfedge(0, 1)
	require.False(s.T(), hs.FlipEdge(h))
	require.False(s.T(), hs.FlipEdge(hs.Partner(h)))
	require.NoError(s.T(), m.Validate())
}

// TestInteriorQuadFlip flips the diagonal of a two-triangle square and
// checks the diagonal swapped corners.
func (s *FlipSuite) TestInteriorQuadFlip() {
	m, err := builder.Build(builder.TrianglePair())
	require.NoError(s.T(), err)
	hs := m.Halfedges()

	diag := hs.FindHalfedge(0, 2)
	require.True(s.T(), hs.FlipEdge(diag))
	require.NoError(s.T(), m.Validate())
	require.False(s.T(), hs.FindHalfedge(0, 2).Valid())
	require.True(s.T(), hs.FindHalfedge(1, 3).Valid())
}

func TestFlipSuite(t *testing.T) {
	suite.Run(t, new(FlipSuite))
}
