package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/parse"

	"github.com/scott-cotton/cli"
)

// getObjFile parses the document at path, or standard input for "-".
// Files ending in .gz or .zst are decompressed.
func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Value, error) {
	if path != "-" {
		return parse.ParseFile(path, opts...)
	}
	return getObjReader(cc.In, opts...)
}

func getObjReader(r io.Reader, opts ...parse.ParseOption) (*ir.Value, error) {
	v, err := parse.ParseReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding input: %w", err)
	}
	return v, nil
}

// inputs returns the files named by args, standard input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer, i int) error {
	if i == 0 {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}

// openInput opens path for reading, decompressing by extension. "-" is
// standard input.
func openInput(cc *cli.Context, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cc.In, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	r, closer, err := parse.Decompress(path, f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return r, func() { closer(); f.Close() }, nil
}

// getArg returns the bytes of a command argument: the argument itself when
// asString, otherwise the contents of the file it names.
func getArg(cc *cli.Context, arg string, asString bool) ([]byte, error) {
	if asString {
		return []byte(arg), nil
	}
	r, closer, err := openInput(cc, arg)
	if err != nil {
		return nil, err
	}
	defer closer()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", arg, err)
	}
	return d, nil
}
