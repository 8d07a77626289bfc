// Package qmlon reads, checks and transforms QMLON documents.
//
// The subpackages do the work: token splits text into tokens, parse builds
// [ir.Value] trees, schema reads schema documents and validates against
// them, encode prints the canonical form and libdiff compares trees. This
// package gathers the common entry points together with tree level
// operations that combine them: [Patch], [Match] and [Trim].
package qmlon

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/libdiff"
	"github.com/signadot/qmlon/parse"
	"github.com/signadot/qmlon/schema"
	"github.com/signadot/qmlon/token"
)

func Parse(d []byte, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.Parse(d, opts...)
}

func ParseFile(path string, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.ParseFile(path, opts...)
}

// Lex returns the tokens of d. Comments and whitespace are dropped unless
// asked for.
func Lex(d []byte, includeComments, includeWhitespace bool) ([]token.Token, error) {
	return token.Lex(bytes.NewReader(d),
		token.IncludeComments(includeComments),
		token.IncludeWhitespace(includeWhitespace))
}

// LoadSchema reads a schema document from path. Compressed files are
// handled as by ParseFile.
func LoadSchema(path string) (*schema.Schema, error) {
	pos := parse.NewPositions()
	v, err := parse.ParseFile(path, parse.ParsePositions(pos))
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := schema.FromDocument(v, schema.WithPositions(pos))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Check validates doc against s, returning the first violation.
func Check(s *schema.Schema, doc *ir.Value) error {
	return s.Check(doc)
}

func Diff(from, to *ir.Value) []libdiff.Change {
	return libdiff.Diff(from, to)
}
