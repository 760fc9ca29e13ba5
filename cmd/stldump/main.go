// stldump prints summary information about an STL file in either
// encoding, read from a filename argument or from stdin.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chewxy/math32"

	"github.com/onurtuncer1/Harmony/stl"
)

var (
	dump     = flag.Bool("dump", false, "Dump all triangles")
	validate = flag.Bool("check", false, "Report triangles whose stored normal is not unit length")
)

func main() {
	flag.Parse()

	var r io.ReadSeeker
	switch flag.NArg() {
	case 0:
		// stdin is not seekable, so buffer it for the format sniff.
		buf, err := io.ReadAll(os.Stdin)
		check("reading stdin: %v", err)
		r = bytes.NewReader(buf)
	case 1:
		f, err := os.Open(flag.Arg(0))
		check("Open: %v", err)
		defer f.Close()
		r = f
	default:
		log.Fatalf("usage: stldump [options] [file.stl]")
	}

	mesh, err := stl.Decode(r, false)
	check("Decode: %v", err)

	fmt.Printf("Name: %q\n", mesh.Name)
	fmt.Printf("Num triangles: %v\n", len(mesh.Triangles))
	min, max := mesh.Bounds()
	fmt.Printf("From: %v\n", min)
	fmt.Printf("  To: %v\n", max)

	for i, t := range mesh.Triangles {
		if *validate {
			if l := t.Normal.Len(); math32.Abs(l-1) > 1e-5 {
				fmt.Printf("Triangle %v normal has length %v\n", i, l)
			}
		}

		if *dump {
			fmt.Printf("Triangle %v:\n", i)
			fmt.Printf("  %v\n", t.Normal)
			fmt.Printf("  %v\n", t.V[0])
			fmt.Printf("  %v\n", t.V[1])
			fmt.Printf("  %v\n", t.V[2])
		}
	}
}

func check(fmtStr string, args ...interface{}) {
	if err := args[len(args)-1]; err != nil {
		log.Fatalf(fmtStr, args...)
	}
}
