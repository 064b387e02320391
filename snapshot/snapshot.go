// File: snapshot.go - binary mesh serialization: header, compression
// framing, arena payload.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/hemesh/core"
)

// Sentinel errors reported by Read. Decoding failures of the payload
// itself are wrapped around the underlying io or core error instead.
var (
	// ErrBadMagic indicates the stream does not start with the snapshot
	// magic bytes.
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrVersion indicates a snapshot written by an unknown format
	// version.
	ErrVersion = errors.New("snapshot: unsupported format version")

	// ErrCompression indicates an unknown compression tag, in the header
	// or passed to WithCompression.
	ErrCompression = errors.New("snapshot: unknown compression")

	// ErrTooLarge indicates a header or count field describing more data
	// than the decoder is willing to allocate.
	ErrTooLarge = errors.New("snapshot: entity count exceeds limit")
)

// Compression selects the payload compression of a snapshot stream.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 compresses the payload as one LZ4 frame (fast).
	CompressionLZ4 Compression = 1
	// CompressionZstd compresses the payload as one zstd stream
	// (better ratio).
	CompressionZstd Compression = 2
)

const (
	formatVersion uint16 = 1

	// maxCount bounds every decoded entity count so a corrupt header
	// cannot drive a huge allocation.
	maxCount = 1 << 32
)

var magic = [4]byte{'H', 'E', 'M', '1'}

// Option configures Write.
type Option func(*options)

type options struct {
	compression Compression
}

// WithCompression selects the payload compression. The default is
// CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// Write serializes m to w. The mesh is captured through its raw arena
// state, dead entries included, so handles survive the round trip.
// Complexity: O(total entries, dead included).
func Write(w io.Writer, m *core.Mesh, opts ...Option) error {
	o := options{compression: CompressionNone}
	for _, opt := range opts {
		opt(&o)
	}
	if o.compression > CompressionZstd {
		return fmt.Errorf("Write: tag %d: %w", o.compression, ErrCompression)
	}

	header := make([]byte, 0, 7)
	header = append(header, magic[:]...)
	header = binary.LittleEndian.AppendUint16(header, formatVersion)
	header = append(header, byte(o.compression))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("Write: header: %w", err)
	}

	st := m.State()
	switch o.compression {
	case CompressionNone:
		return encodeState(w, st)
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if err := encodeState(zw, st); err != nil {
			return err
		}

		return zw.Close()
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("Write: %w", err)
		}
		if err := encodeState(zw, st); err != nil {
			return err
		}

		return zw.Close()
	}

	return nil
}

// Read restores a mesh from r and validates it. Any malformation, from
// a wrong magic to a broken topology invariant, is reported as an error
// with no partial mesh returned.
func Read(r io.Reader) (*core.Mesh, error) {
	var header [7]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("Read: header: %w", err)
	}
	if [4]byte(header[:4]) != magic {
		return nil, ErrBadMagic
	}
	if v := binary.LittleEndian.Uint16(header[4:6]); v != formatVersion {
		return nil, fmt.Errorf("Read: version %d: %w", v, ErrVersion)
	}

	payload := r
	switch Compression(header[6]) {
	case CompressionNone:
	case CompressionLZ4:
		payload = lz4.NewReader(r)
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("Read: %w", err)
		}
		defer zr.Close()
		payload = zr
	default:
		return nil, fmt.Errorf("Read: tag %d: %w", header[6], ErrCompression)
	}

	st, err := decodeState(payload)
	if err != nil {
		return nil, err
	}
	m, err := core.FromState(st)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return m, nil
}

// encoder writes little-endian primitives with a sticky error, so the
// payload writers read as straight-line field lists.
type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) u64(v uint64) {
	if e.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, e.err = e.w.Write(b[:])
}

func (e *encoder) i64(v int)     { e.u64(uint64(int64(v))) }
func (e *encoder) f64(v float64) { e.u64(math.Float64bits(v)) }

func encodeState(w io.Writer, st *core.MeshState) error {
	e := &encoder{w: w}

	e.u64(uint64(len(st.Halfedges)))
	for _, h := range st.Halfedges {
		e.i64(int(h.Start))
		e.i64(int(h.Face))
		e.i64(int(h.Next))
		e.i64(int(h.Prev))
	}
	e.u64(uint64(len(st.DeadHalfedges)))
	for _, h := range st.DeadHalfedges {
		e.i64(int(h))
	}

	e.u64(uint64(len(st.Vertices)))
	for _, v := range st.Vertices {
		e.f64(v.Position.X)
		e.f64(v.Position.Y)
		e.f64(v.Position.Z)
		e.i64(int(v.Outgoing))
	}
	e.u64(uint64(len(st.DeadVertices)))
	for _, v := range st.DeadVertices {
		e.i64(int(v))
	}

	e.u64(uint64(len(st.Faces)))
	for _, f := range st.Faces {
		e.i64(int(f.First))
	}
	e.u64(uint64(len(st.DeadFaces)))
	for _, f := range st.DeadFaces {
		e.i64(int(f))
	}

	if e.err != nil {
		return fmt.Errorf("Write: payload: %w", e.err)
	}

	return nil
}

// decoder mirrors encoder for reading.
type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) u64() uint64 {
	if d.err != nil {
		return 0
	}
	var b [8]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		d.err = err

		return 0
	}

	return binary.LittleEndian.Uint64(b[:])
}

func (d *decoder) i64() int     { return int(int64(d.u64())) }
func (d *decoder) f64() float64 { return math.Float64frombits(d.u64()) }

// count reads a length field and bounds it.
func (d *decoder) count() int {
	n := d.u64()
	if n > maxCount && d.err == nil {
		d.err = ErrTooLarge
	}

	return int(n)
}

func decodeState(r io.Reader) (*core.MeshState, error) {
	d := &decoder{r: r}
	st := &core.MeshState{}

	n := d.count()
	for i := 0; i < n && d.err == nil; i++ {
		st.Halfedges = append(st.Halfedges, core.Halfedge{
			Start: core.VertexIndex(d.i64()),
			Face:  core.FaceIndex(d.i64()),
			Next:  core.HalfedgeIndex(d.i64()),
			Prev:  core.HalfedgeIndex(d.i64()),
		})
	}
	n = d.count()
	for i := 0; i < n && d.err == nil; i++ {
		st.DeadHalfedges = append(st.DeadHalfedges, core.HalfedgeIndex(d.i64()))
	}

	n = d.count()
	for i := 0; i < n && d.err == nil; i++ {
		st.Vertices = append(st.Vertices, core.Vertex{
			Position: core.Vec3{X: d.f64(), Y: d.f64(), Z: d.f64()},
			Outgoing: core.HalfedgeIndex(d.i64()),
		})
	}
	n = d.count()
	for i := 0; i < n && d.err == nil; i++ {
		st.DeadVertices = append(st.DeadVertices, core.VertexIndex(d.i64()))
	}

	n = d.count()
	for i := 0; i < n && d.err == nil; i++ {
		st.Faces = append(st.Faces, core.Face{First: core.HalfedgeIndex(d.i64())})
	}
	n = d.count()
	for i := 0; i < n && d.err == nil; i++ {
		st.DeadFaces = append(st.DeadFaces, core.FaceIndex(d.i64()))
	}

	if d.err != nil {
		return nil, fmt.Errorf("Read: payload: %w", d.err)
	}

	return st, nil
}
