package snapshot_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hemesh/builder"
	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/snapshot"
)

// SnapshotSuite exercises serialization round trips and stream
// validation.
type SnapshotSuite struct {
	suite.Suite
}

// edited returns a mesh carrying tombstones in all three arenas.
func (s *SnapshotSuite) edited() *core.Mesh {
	m, err := builder.Build(builder.TriangleGrid(3, 3))
	require.NoError(s.T(), err)
	hs := m.Halfedges()
	require.True(s.T(), hs.CollapseEdge(hs.FindHalfedge(5, 6)).Valid())

	return m
}

// requireSame asserts b answers handles exactly like a.
func (s *SnapshotSuite) requireSame(a, b *core.Mesh) {
	require.Equal(s.T(), a.Halfedges().Count(), b.Halfedges().Count())
	require.Equal(s.T(), a.Vertices().Count(), b.Vertices().Count())
	require.Equal(s.T(), a.Faces().Count(), b.Faces().Count())

	for h := core.HalfedgeIndex(0); int(h) < a.Halfedges().Count(); h++ {
		require.Equal(s.T(), a.Halfedges().IsDead(h), b.Halfedges().IsDead(h))
		if a.Halfedges().IsDead(h) {
			continue
		}
		require.Equal(s.T(), a.Halfedges().Start(h), b.Halfedges().Start(h))
		require.Equal(s.T(), a.Halfedges().Face(h), b.Halfedges().Face(h))
		require.Equal(s.T(), a.Halfedges().Next(h), b.Halfedges().Next(h))
	}
	for v := core.VertexIndex(0); int(v) < a.Vertices().Count(); v++ {
		require.Equal(s.T(), a.Vertices().IsDead(v), b.Vertices().IsDead(v))
		if !a.Vertices().IsDead(v) {
			require.Equal(s.T(), a.Vertices().Position(v), b.Vertices().Position(v))
			require.Equal(s.T(), a.Vertices().Outgoing(v), b.Vertices().Outgoing(v))
		}
	}
}

func (s *SnapshotSuite) TestRoundTrip() {
	for name, c := range map[string]snapshot.Compression{
		"none": snapshot.CompressionNone,
		"lz4":  snapshot.CompressionLZ4,
		"zstd": snapshot.CompressionZstd,
	} {
		s.Run(name, func() {
			m := s.edited()
			var buf bytes.Buffer
			require.NoError(s.T(), snapshot.Write(&buf, m, snapshot.WithCompression(c)))

			back, err := snapshot.Read(&buf)
			require.NoError(s.T(), err)
			require.NoError(s.T(), back.Validate())
			s.requireSame(m, back)
		})
	}
}

func (s *SnapshotSuite) TestEmptyMesh() {
	var buf bytes.Buffer
	require.NoError(s.T(), snapshot.Write(&buf, core.NewMesh()))
	back, err := snapshot.Read(&buf)
	require.NoError(s.T(), err)
	require.Zero(s.T(), back.Halfedges().Count())
	require.Zero(s.T(), back.Vertices().Count())
}

func (s *SnapshotSuite) TestBadMagic() {
	_, err := snapshot.Read(bytes.NewReader([]byte("NOPE\x01\x00\x00")))
	require.ErrorIs(s.T(), err, snapshot.ErrBadMagic)
}

func (s *SnapshotSuite) TestUnknownVersion() {
	var buf bytes.Buffer
	require.NoError(s.T(), snapshot.Write(&buf, core.NewMesh()))
	raw := buf.Bytes()
	raw[4] = 0xFF

	_, err := snapshot.Read(bytes.NewReader(raw))
	require.ErrorIs(s.T(), err, snapshot.ErrVersion)
}

func (s *SnapshotSuite) TestUnknownCompressionTag() {
	var buf bytes.Buffer
	require.NoError(s.T(), snapshot.Write(&buf, core.NewMesh()))
	raw := buf.Bytes()
	raw[6] = 9

	_, err := snapshot.Read(bytes.NewReader(raw))
	require.ErrorIs(s.T(), err, snapshot.ErrCompression)

	err = snapshot.Write(io.Discard, core.NewMesh(), snapshot.WithCompression(snapshot.Compression(9)))
	require.ErrorIs(s.T(), err, snapshot.ErrCompression)
}

func (s *SnapshotSuite) TestTruncatedStream() {
	m, err := builder.Build(builder.Quad())
	require.NoError(s.T(), err)
	var buf bytes.Buffer
	require.NoError(s.T(), snapshot.Write(&buf, m))

	raw := buf.Bytes()
	for _, cut := range []int{0, 3, 7, len(raw) / 2, len(raw) - 1} {
		_, err := snapshot.Read(bytes.NewReader(raw[:cut]))
		require.Error(s.T(), err, "cut at %d", cut)
	}
}

// TestTamperedPayloadRejected corrupts a link; Read must refuse the
// stream instead of handing back a broken mesh.
func (s *SnapshotSuite) TestTamperedPayloadRejected() {
	m, err := builder.Build(builder.Quad())
	require.NoError(s.T(), err)

	st := m.State()
	st.Halfedges[0].Next = st.Halfedges[0].Prev
	bad, err := core.FromState(st)
	require.NoError(s.T(), err)

	var buf bytes.Buffer
	require.NoError(s.T(), snapshot.Write(&buf, bad))
	_, err = snapshot.Read(&buf)
	require.Error(s.T(), err)
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}
