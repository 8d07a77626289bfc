package main

import (
	"context"
	"strings"

	"github.com/signadot/qmlon/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	indent := 2
	if n := int(params.Options.TabSize); n > 0 && params.Options.InsertSpaces {
		indent = n
	}
	return formatEdits(doc, indent), nil
}

// formatEdits replaces the whole document with its canonical form. The
// canonical form has no comments, so documents with comments are left
// alone.
func formatEdits(doc *document, indent int) []protocol.TextEdit {
	if doc.value == nil {
		return nil
	}
	for _, tok := range doc.tokens {
		if tok.Type.IsComment() {
			return nil
		}
	}
	var buf strings.Builder
	if err := encode.Encode(doc.value, &buf, encode.EncodeIndent(indent)); err != nil {
		return nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}
}
