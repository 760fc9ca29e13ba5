// Package stl reads and writes STL triangle meshes in both the ASCII
// and binary encodings, with automatic format detection and optional
// repair of missing face normals.
package stl

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a single-precision 3D vector.
type Vec3 = mgl32.Vec3

// Triangle is one mesh facet: a face normal plus three vertices.
// The vertex winding order determines the sign of the geometric
// normal via the right-hand rule.
type Triangle struct {
	Normal Vec3
	V      [3]Vec3
}

// Mesh is a named, ordered collection of triangles. Name holds the
// solid name for ASCII STL or the header text for binary STL.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// zeroTol is the magnitude below which a stored normal is treated as
// absent and eligible for repair.
const zeroTol = 1e-20

// FaceNormal computes the unit normal of the triangle from its vertex
// winding: normalize((v1-v0) x (v2-v0)). Degenerate triangles
// (collinear or coincident vertices) yield the zero vector.
func (t *Triangle) FaceNormal() Vec3 {
	n := t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[0]))
	l := n.Len()
	if l <= 0 {
		return Vec3{}
	}
	return n.Mul(1 / l)
}

// missingNormal reports whether n is effectively zero.
func missingNormal(n Vec3) bool {
	return math32.Abs(n[0])+math32.Abs(n[1])+math32.Abs(n[2]) < zeroTol
}

// Bounds returns the minimum and maximum corners of the axis-aligned
// box enclosing all vertices. Both corners are zero for an empty mesh.
func (m *Mesh) Bounds() (min, max Vec3) {
	if len(m.Triangles) == 0 {
		return min, max
	}
	min = m.Triangles[0].V[0]
	max = min
	for _, t := range m.Triangles {
		for _, v := range t.V {
			for i := 0; i < 3; i++ {
				if v[i] < min[i] {
					min[i] = v[i]
				}
				if v[i] > max[i] {
					max[i] = v[i]
				}
			}
		}
	}
	return min, max
}

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// KindStructural marks grammar or sequence violations: a keyword in
	// the wrong state, a wrong vertex count, an unterminated facet.
	KindStructural ErrorKind = iota
	// KindNumericFormat marks a float token that does not fully parse.
	KindNumericFormat
	// KindIO marks short or failed reads: a missing header, a truncated
	// record, an underlying stream fault.
	KindIO
	// KindUnexpectedContent marks an unrecognized ASCII line.
	KindUnexpectedContent
)

// A ParseError reports where and why a decode failed. Line is the
// 1-based line number for ASCII input and zero for binary streams,
// whose messages name the structural stage instead.
type ParseError struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %v: %v", e.Line, e.Msg)
	}
	return e.Msg
}
