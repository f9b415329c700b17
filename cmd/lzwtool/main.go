// Command lzwtool is a thin driver around package lzw: it encodes or
// decodes a file in one shot, mirroring original_source/src/lzw.c's
// `lzw e|d input output` argv layout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cocosip/go-lzw/lzw"
)

func main() {
	maxWidth := flag.Int("maxwidth", lzw.MaxWidth, "maximum code width in bits (12-24)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-maxwidth n] e|d <input> <output>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		flag.Usage()
		os.Exit(1)
	}

	mode, inPath, outPath := args[0], args[1], args[2]

	in, err := os.Open(inPath)
	if err != nil {
		log.Fatalf("lzwtool: opening %s: %v", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("lzwtool: creating %s: %v", outPath, err)
	}
	defer out.Close()

	switch mode {
	case "e":
		log.Print("encoding")
		if err := encode(in, out, *maxWidth); err != nil {
			log.Fatalf("lzwtool: %v", err)
		}
	case "d":
		log.Print("decoding")
		if err := decode(in, out, *maxWidth); err != nil {
			log.Fatalf("lzwtool: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func encode(in *os.File, out *os.File, maxWidth int) error {
	enc, err := lzw.NewEncoder(out, lzw.WithMaxWidth(maxWidth))
	if err != nil {
		return err
	}
	buf := make([]byte, 32*1024)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := enc.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				return rerr
			}
			break
		}
	}
	return enc.Finish()
}

func decode(in *os.File, out *os.File, maxWidth int) error {
	dec, err := lzw.NewDecoder(in, lzw.WithMaxWidth(maxWidth))
	if err != nil {
		return err
	}
	buf := make([]byte, 32*1024)
	for {
		n, rerr := dec.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return nil
			}
			return rerr
		}
	}
}
