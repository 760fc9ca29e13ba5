package stl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits emitted per
// coordinate by the ASCII serializer.
const DefaultPrecision = 6

// parser phase within the current facet.
type phase int

const (
	phaseIdle phase = iota // expecting "facet normal" or "endsolid"
	phaseFacet             // after "facet normal"
	phaseLoop              // after "outer loop", no vertices yet
	phaseV1                // one vertex collected
	phaseV2                // two or three vertices collected
)

// DecodeASCII parses an ASCII STL body from text. Keywords are matched
// case-insensitively and lines may be indented freely. When
// computeNormals is true, any facet whose stored normal is effectively
// zero gets its geometric normal computed from the vertex winding.
// Errors carry the 1-based line number of the offending line.
func DecodeASCII(text string, computeNormals bool) (*Mesh, error) {
	mesh := &Mesh{}

	var (
		inSolid bool
		current Triangle
		state   = phaseIdle
		nVerts  int
		lineNo  int
	)

	threeFloats := func(toks []string) ([3]float32, error) {
		var out [3]float32
		if len(toks) < 3 {
			return out, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "expected three floats"}
		}
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(toks[i], 32)
			if err != nil {
				return out, &ParseError{
					Kind: KindNumericFormat,
					Line: lineNo,
					Msg:  fmt.Sprintf("failed to parse number: %q", toks[i]),
				}
			}
			out[i] = float32(f)
		}
		return out, nil
	}

	for _, line := range strings.Split(text, "\n") {
		lineNo++
		toks := strings.Fields(line)
		if len(toks) == 0 {
			continue
		}

		if !inSolid {
			if !strings.EqualFold(toks[0], "solid") {
				return nil, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "expected 'solid'"}
			}
			mesh.Name = strings.Join(toks[1:], " ")
			inSolid = true
			continue
		}

		switch {
		case strings.EqualFold(toks[0], "endsolid"):
			// Trailing name is optional and ignored; anything after the
			// body is skipped.
			inSolid = false

		case strings.EqualFold(toks[0], "facet"):
			if len(toks) < 2 || !strings.EqualFold(toks[1], "normal") || state != phaseIdle {
				return nil, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "'facet' where not expected"}
			}
			n, err := threeFloats(toks[2:])
			if err != nil {
				return nil, err
			}
			current.Normal = Vec3{n[0], n[1], n[2]}
			state = phaseFacet

		case strings.EqualFold(toks[0], "outer"):
			if len(toks) < 2 || !strings.EqualFold(toks[1], "loop") {
				return nil, &ParseError{
					Kind: KindUnexpectedContent,
					Line: lineNo,
					Msg:  fmt.Sprintf("unexpected content: %q", strings.TrimSpace(line)),
				}
			}
			if state != phaseFacet {
				return nil, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "'outer loop' without facet"}
			}
			state = phaseLoop
			nVerts = 0

		case strings.EqualFold(toks[0], "vertex"):
			if state != phaseLoop && state != phaseV1 && state != phaseV2 {
				return nil, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "'vertex' outside of loop"}
			}
			v, err := threeFloats(toks[1:])
			if err != nil {
				return nil, err
			}
			switch nVerts {
			case 0:
				current.V[0] = Vec3{v[0], v[1], v[2]}
				state = phaseV1
			case 1:
				current.V[1] = Vec3{v[0], v[1], v[2]}
				state = phaseV2
			case 2:
				current.V[2] = Vec3{v[0], v[1], v[2]} // stays phaseV2
			default:
				return nil, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "too many vertices in loop"}
			}
			nVerts++

		case strings.EqualFold(toks[0], "endloop"):
			if nVerts != 3 {
				return nil, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "'endloop' before three vertices"}
			}

		case strings.EqualFold(toks[0], "endfacet"):
			if nVerts != 3 || state != phaseV2 {
				return nil, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "'endfacet' without complete triangle"}
			}
			if computeNormals && missingNormal(current.Normal) {
				current.Normal = current.FaceNormal()
			}
			mesh.Triangles = append(mesh.Triangles, current)
			current = Triangle{}
			state = phaseIdle

		case strings.EqualFold(toks[0], "solid"):
			// Some writers repeat "solid name" inside the body; accept it
			// and take the new name.
			mesh.Name = strings.Join(toks[1:], " ")

		default:
			return nil, &ParseError{
				Kind: KindUnexpectedContent,
				Line: lineNo,
				Msg:  fmt.Sprintf("unexpected content: %q", strings.TrimSpace(line)),
			}
		}

		if !inSolid {
			break
		}
	}

	// Missing "endsolid" is tolerated as long as no facet is left open.
	if inSolid && state != phaseIdle {
		return nil, &ParseError{Kind: KindStructural, Line: lineNo, Msg: "unexpected EOF: unterminated facet/loop"}
	}
	return mesh, nil
}

// ReadASCII buffers the whole stream and parses it as ASCII STL.
func ReadASCII(r io.Reader, computeNormals bool) (*Mesh, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Kind: KindIO, Msg: fmt.Sprintf("reading stream: %v", err)}
	}
	return DecodeASCII(string(buf), computeNormals)
}

// EncodeASCII serializes the mesh as ASCII STL text. Every coordinate
// is written with the given number of fixed fractional digits; decimal
// notation is used throughout so the output always re-parses. A facet
// whose stored normal is effectively zero is written with its geometric
// normal instead.
func EncodeASCII(m *Mesh, precision int) string {
	var sb strings.Builder
	sb.Grow(128 + len(m.Triangles)*160)

	fmtVec := func(v Vec3) string {
		x := strconv.FormatFloat(float64(v[0]), 'f', precision, 32)
		y := strconv.FormatFloat(float64(v[1]), 'f', precision, 32)
		z := strconv.FormatFloat(float64(v[2]), 'f', precision, 32)
		return x + " " + y + " " + z
	}

	sb.WriteString("solid " + m.Name + "\n")
	for i := range m.Triangles {
		t := m.Triangles[i]
		if missingNormal(t.Normal) {
			t.Normal = t.FaceNormal()
		}
		sb.WriteString("  facet normal " + fmtVec(t.Normal) + "\n")
		sb.WriteString("    outer loop\n")
		sb.WriteString("      vertex " + fmtVec(t.V[0]) + "\n")
		sb.WriteString("      vertex " + fmtVec(t.V[1]) + "\n")
		sb.WriteString("      vertex " + fmtVec(t.V[2]) + "\n")
		sb.WriteString("    endloop\n")
		sb.WriteString("  endfacet\n")
	}
	sb.WriteString("endsolid " + m.Name + "\n")
	return sb.String()
}

// WriteASCII serializes the mesh as ASCII STL text to w.
func WriteASCII(w io.Writer, m *Mesh, precision int) error {
	if _, err := io.WriteString(w, EncodeASCII(m, precision)); err != nil {
		return fmt.Errorf("writing ascii stl: %v", err)
	}
	return nil
}
