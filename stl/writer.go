package stl

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer streams triangles into a binary STL sink one at a time,
// for pipelines that never hold a whole Mesh in memory. The triangle
// count is unknown up front, so a placeholder is written with the
// header and patched on Close with a single seek. The caller owns the
// sink and closes it after Close returns.
type Writer struct {
	w     io.WriteSeeker
	attr  uint16
	count uint32
}

// NewWriter writes the 80-byte header (truncated or zero-padded) plus
// a placeholder triangle count and returns a Writer positioned at the
// first record.
func NewWriter(w io.WriteSeeker, header string, attr uint16) (*Writer, error) {
	var hdr [headerSize + 4]byte // header + count placeholder
	copy(hdr[:headerSize], header)
	if _, err := w.Write(hdr[:]); err != nil {
		return nil, fmt.Errorf("writing header: %v", err)
	}
	return &Writer{w: w, attr: attr}, nil
}

// Write appends one triangle record. A triangle with an effectively
// zero normal is written with its geometric normal instead.
func (sw *Writer) Write(t *Triangle) error {
	rec := record{Normal: t.Normal, V: t.V, Attr: sw.attr}
	if missingNormal(rec.Normal) {
		rec.Normal = t.FaceNormal()
	}
	if err := binary.Write(sw.w, le, &rec); err != nil {
		return fmt.Errorf("writing triangle %v: %v", sw.count, err)
	}
	sw.count++
	return nil
}

// Close seeks back to the count field and writes the number of
// triangles streamed so far.
func (sw *Writer) Close() error {
	if _, err := sw.w.Seek(headerSize, io.SeekStart); err != nil {
		return fmt.Errorf("seek: %v", err)
	}
	if err := binary.Write(sw.w, le, sw.count); err != nil {
		return fmt.Errorf("writing count %v: %v", sw.count, err)
	}
	return nil
}
