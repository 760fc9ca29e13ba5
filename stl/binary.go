package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

const (
	headerSize = 80
	recordSize = 50 // 12 x float32 + uint16 attribute bytes
)

// The wire format is little-endian regardless of host byte order.
var le = binary.LittleEndian

// record is the fixed 50-byte binary STL triangle layout.
type record struct {
	Normal Vec3
	V      [3]Vec3
	Attr   uint16
}

// DecodeBinary parses a binary STL stream: an 80-byte free-form header,
// a little-endian uint32 triangle count, then count 50-byte records.
// The header text, trimmed of trailing NUL and whitespace, becomes the
// mesh name. Per-record attribute bytes are read and discarded. The
// declared count is trusted; a stream that ends before delivering every
// record fails with no partial result.
func DecodeBinary(r io.Reader, computeNormals bool) (*Mesh, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, &ParseError{Kind: KindIO, Msg: "binary stl: failed to read 80-byte header"}
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, &ParseError{Kind: KindIO, Msg: "binary stl: failed to read triangle count"}
	}
	count := le.Uint32(countBuf[:])

	mesh := &Mesh{
		Name:      strings.TrimRight(string(header[:]), "\x00 \t\r\n"),
		Triangles: make([]Triangle, 0, count),
	}

	var buf [recordSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, &ParseError{Kind: KindIO, Msg: "binary stl: unexpected EOF in triangle data"}
		}
		var rec record
		if err := binary.Read(bytes.NewReader(buf[:]), le, &rec); err != nil {
			return nil, &ParseError{Kind: KindIO, Msg: fmt.Sprintf("binary stl: decoding triangle %v: %v", i, err)}
		}
		t := Triangle{Normal: rec.Normal, V: rec.V}
		if computeNormals && missingNormal(t.Normal) {
			t.Normal = t.FaceNormal()
		}
		mesh.Triangles = append(mesh.Triangles, t)
	}

	return mesh, nil
}

// EncodeBinary writes the mesh as binary STL. The header text is
// truncated or zero-padded to the fixed 80 bytes, and attr is
// replicated verbatim into every record's trailing attribute bytes.
// A triangle whose stored normal is effectively zero is written with
// its geometric normal instead.
func EncodeBinary(w io.Writer, m *Mesh, header string, attr uint16) error {
	var hdr [headerSize]byte
	copy(hdr[:], header)
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("writing header: %v", err)
	}

	if err := binary.Write(w, le, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("writing triangle count: %v", err)
	}

	for i := range m.Triangles {
		t := m.Triangles[i]
		if missingNormal(t.Normal) {
			t.Normal = t.FaceNormal()
		}
		rec := record{Normal: t.Normal, V: t.V, Attr: attr}
		if err := binary.Write(w, le, &rec); err != nil {
			return fmt.Errorf("writing triangle %v: %v", i, err)
		}
	}
	return nil
}
