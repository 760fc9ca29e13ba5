package stl

import (
	"fmt"
	"io"
)

// asciiMagic is the probe the dispatcher matches against a stream's
// leading bytes. This is a heuristic, not a guaranteed signature: an
// ASCII file whose header lacks the trailing space, or a binary file
// whose header text happens to start with "solid ", is misrouted.
// That matches what STL files in the wild rely on.
const asciiMagic = "solid "

// Decode parses an STL stream in either encoding. It peeks at the
// first 6 bytes, restores the read position, and routes to the ASCII
// parser on an exact "solid " match or to the binary parser otherwise
// (including streams shorter than the probe).
func Decode(rs io.ReadSeeker, computeNormals bool) (*Mesh, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, &ParseError{Kind: KindIO, Msg: fmt.Sprintf("querying stream position: %v", err)}
	}

	var probe [len(asciiMagic)]byte
	n, _ := io.ReadFull(rs, probe[:])
	if _, err := rs.Seek(pos, io.SeekStart); err != nil {
		return nil, &ParseError{Kind: KindIO, Msg: fmt.Sprintf("restoring stream position: %v", err)}
	}

	if n == len(asciiMagic) && string(probe[:]) == asciiMagic {
		return ReadASCII(rs, computeNormals)
	}
	return DecodeBinary(rs, computeNormals)
}
