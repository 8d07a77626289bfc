package parse

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/signadot/qmlon/ir"
)

// ParseFile parses the file at path. Files ending in .gz or .zst are
// decompressed first.
func ParseFile(path string, opts ...ParseOption) (*ir.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, closer, err := Decompress(path, f)
	if err != nil {
		return nil, err
	}
	defer closer()
	return ParseReader(r, opts...)
}

// Decompress wraps r according to the extension of name.
func Decompress(name string, r io.Reader) (io.Reader, func(), error) {
	switch filepath.Ext(name) {
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gr, func() { gr.Close() }, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	default:
		return r, func() {}, nil
	}
}
