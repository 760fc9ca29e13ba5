// stl-convert converts STL files between the ASCII and binary
// encodings. The input format is autodetected; the output format
// defaults to ASCII unless -binary is supplied.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/onurtuncer1/Harmony/stl"
)

var (
	outFile   = flag.String("o", "", "Output filename (default: input name with .out.stl suffix)")
	toBinary  = flag.Bool("binary", false, "Write binary STL instead of ASCII")
	precision = flag.Int("precision", stl.DefaultPrecision, "Fractional digits per coordinate in ASCII output")
	header    = flag.String("header", "", "Header text for binary output (default: the mesh name)")
	attr      = flag.Uint("attr", 0, "Attribute byte value replicated into every binary record")
	keepZero  = flag.Bool("keep-zero-normals", false, "Do not recompute effectively-zero normals while parsing")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: stl-convert [options] file.stl")
	}
	inName := flag.Arg(0)

	in, err := os.Open(inName)
	check("Open: %v", err)
	defer in.Close()

	mesh, err := stl.Decode(in, !*keepZero)
	check("%v: %v", inName, err)
	log.Printf("Read %v triangles from %v (name: %q)", len(mesh.Triangles), inName, mesh.Name)

	outName := *outFile
	if outName == "" {
		outName = strings.TrimSuffix(inName, ".stl") + ".out.stl"
	}

	out, err := os.Create(outName)
	check("Create: %v", err)

	if *toBinary {
		hdr := *header
		if hdr == "" {
			hdr = mesh.Name
		}
		err = stl.EncodeBinary(out, mesh, hdr, uint16(*attr))
		check("EncodeBinary: %v", err)
	} else {
		err = stl.WriteASCII(out, mesh, *precision)
		check("WriteASCII: %v", err)
	}
	check("Close: %v", out.Close())

	log.Printf("Wrote %v", outName)
}

func check(fmtStr string, args ...interface{}) {
	if err := args[len(args)-1]; err != nil {
		log.Fatalf(fmtStr, args...)
	}
}
