package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hemesh/builder"
	"github.com/katalvlaran/hemesh/core"
)

// CollapseSuite exercises edge contraction across boundary and interior
// configurations.
type CollapseSuite struct {
	suite.Suite
}

// requireFacesAtLeastTriangles asserts no live face was left degenerate.
func (s *CollapseSuite) requireFacesAtLeastTriangles(m *core.Mesh) {
	fs := m.Faces()
	for i := 0; i < fs.Count(); i++ {
		f := core.FaceIndex(i)
		if fs.IsDead(f) {
			continue
		}
		require.GreaterOrEqual(s.T(), fs.Degree(f), 3, "face %d", f)
	}
}

// TestBoundaryEdgeOnQuad collapses a quad side, leaving a triangle.
func (s *CollapseSuite) TestBoundaryEdgeOnQuad() {
	m, err := builder.Build(builder.Quad())
	require.NoError(s.T(), err)
	hs, vs, fs := m.Halfedges(), m.Vertices(), m.Faces()

	h := hs.FindHalfedge(0, 1)
	ret := hs.CollapseEdge(h)
	require.True(s.T(), ret.Valid())
	require.NoError(s.T(), m.Validate())

	require.Equal(s.T(), 3, vs.LiveCount())
	require.Equal(s.T(), 6, hs.LiveCount())
	require.Equal(s.T(), 1, fs.LiveCount())
	require.True(s.T(), vs.IsDead(1), "the destination vertex dies")
	require.False(s.T(), vs.IsDead(0), "the start vertex survives")
	require.True(s.T(), hs.IsDead(h))

	// The continuation halfedge leaves the surviving vertex.
	require.False(s.T(), hs.IsDead(ret))
	require.Equal(s.T(), core.VertexIndex(0), hs.Start(ret))
	s.requireFacesAtLeastTriangles(m)
}

// TestInteriorEdgeOnGrid collapses an interior edge between two interior
// vertices of a triangulated grid.
func (s *CollapseSuite) TestInteriorEdgeOnGrid() {
	m, err := builder.Build(builder.TriangleGrid(3, 3))
	require.NoError(s.T(), err)
	hs, vs, fs := m.Halfedges(), m.Vertices(), m.Faces()

	// Vertices 5 and 6 are both interior on a 4x4 vertex grid.
	h := hs.FindHalfedge(5, 6)
	require.True(s.T(), h.Valid())
	require.False(s.T(), hs.IsBoundary(h))

	before := vs.LiveCount()
	ret := hs.CollapseEdge(h)
	require.True(s.T(), ret.Valid())
	require.NoError(s.T(), m.Validate())

	require.Equal(s.T(), before-1, vs.LiveCount())
	require.True(s.T(), vs.IsDead(6))
	require.Equal(s.T(), 16, fs.LiveCount(), "both triangles on the edge dissolve into neighbors")
	require.Equal(s.T(), core.VertexIndex(5), hs.Start(ret))
	s.requireFacesAtLeastTriangles(m)

	// Every edge of the dead vertex was re-rooted at the survivor.
	for i := 0; i < hs.Count(); i++ {
		e := core.HalfedgeIndex(i)
		if hs.IsDead(e) {
			continue
		}
		require.NotEqual(s.T(), core.VertexIndex(6), hs.Start(e))
	}
}

// TestRejectPinchingCollapse refuses to contract an interior edge whose
// endpoints both sit on the boundary: the result would pinch the
// boundary at one vertex.
func (s *CollapseSuite) TestRejectPinchingCollapse() {
	m, err := builder.Build(builder.TriangleGrid(1, 1))
	require.NoError(s.T(), err)
	hs, vs, fs := m.Halfedges(), m.Vertices(), m.Faces()

	diag := hs.FindHalfedge(0, 3)
	require.True(s.T(), diag.Valid())
	require.False(s.T(), hs.IsBoundary(diag))

	require.Equal(s.T(), core.InvalidHalfedge, hs.CollapseEdge(diag))
	require.Equal(s.T(), core.InvalidHalfedge, hs.CollapseEdge(hs.Partner(diag)))

	// Nothing moved.
	require.Equal(s.T(), 4, vs.LiveCount())
	require.Equal(s.T(), 10, hs.LiveCount())
	require.Equal(s.T(), 2, fs.LiveCount())
	require.NoError(s.T(), m.Validate())
}

// TestCollapseOnClosedMesh contracts an octahedron equator edge; the
// closed surface stays closed with two fewer faces.
func (s *CollapseSuite) TestCollapseOnClosedMesh() {
	m, err := builder.Build(builder.Octahedron())
	require.NoError(s.T(), err)
	hs, vs, fs := m.Halfedges(), m.Vertices(), m.Faces()

	h := hs.FindHalfedge(0, 1)
	ret := hs.CollapseEdge(h)
	require.True(s.T(), ret.Valid())
	require.NoError(s.T(), m.Validate())

	require.Equal(s.T(), 5, vs.LiveCount())
	require.Equal(s.T(), 6, fs.LiveCount())
	require.Equal(s.T(), 18, hs.LiveCount())
	for i := 0; i < hs.Count(); i++ {
		e := core.HalfedgeIndex(i)
		if hs.IsDead(e) {
			continue
		}
		require.False(s.T(), hs.IsBoundary(e), "closed mesh stays closed")
	}
	s.requireFacesAtLeastTriangles(m)
}

// TestChainedCollapses runs several collapses on a grid, validating after
// each, a miniature of decimation driving this operator.
func (s *CollapseSuite) TestChainedCollapses() {
	m, err := builder.Build(builder.TriangleGrid(3, 3))
	require.NoError(s.T(), err)
	hs, vs := m.Halfedges(), m.Vertices()

	for _, pair := range [][2]core.VertexIndex{{5, 6}, {9, 10}} {
		h := hs.FindHalfedge(pair[0], pair[1])
		require.True(s.T(), h.Valid())
		require.True(s.T(), hs.CollapseEdge(h).Valid())
		require.NoError(s.T(), m.Validate())
	}
	require.Equal(s.T(), 14, vs.LiveCount())
	s.requireFacesAtLeastTriangles(m)
}

func TestCollapseSuite(t *testing.T) {
	suite.Run(t, new(CollapseSuite))
}
