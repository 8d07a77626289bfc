package main

import (
	"context"
	"errors"
	"strings"

	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/parse"
	"github.com/signadot/qmlon/schema"
	"github.com/signadot/qmlon/token"
	"go.lsp.dev/protocol"
)

const diagSource = "qmlon"

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := s.validateDocument(doc)
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics,
	})
	if err != nil {
		theLog.Error("publish diagnostics", "uri", doc.uri, "error", err)
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		return append(diagnostics, errorDiagnostic(doc, doc.err))
	}
	sch := s.schemas.Lookup(doc.rootType())
	if sch == nil {
		return diagnostics
	}
	err := sch.Check(doc.value)
	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		return diagnostics
	}
	pos := pathPos(doc, ve.Path)
	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: toPosition(pos), End: toPosition(tokenEnd(doc, pos))},
		Severity: protocol.DiagnosticSeverityWarning,
		Source:   diagSource,
		Message:  ve.Reason + " (" + ve.Path + ")",
	})
}

// errorDiagnostic places a syntax or parse error at its token.
func errorDiagnostic(doc *document, err error) protocol.Diagnostic {
	var pos token.Pos
	var (
		se *token.SyntaxError
		pe *parse.Error
	)
	switch {
	case errors.As(err, &se):
		pos = se.Pos
	case errors.As(err, &pe):
		pos = pe.Pos
	}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: toPosition(pos), End: toPosition(tokenEnd(doc, pos))},
		Severity: protocol.DiagnosticSeverityError,
		Source:   diagSource,
		Message:  err.Error(),
	}
}

// pathPos finds where the value at path starts, falling back to the
// nearest enclosing value with a known position.
func pathPos(doc *document, path string) token.Pos {
	for path != "" {
		if v, err := doc.value.GetPath(path); err == nil {
			if pos, ok := valuePos(doc, v); ok {
				return pos
			}
		}
		i := strings.LastIndexAny(path, "./[")
		if i <= 0 {
			break
		}
		if path[i] == '[' {
			if j := strings.LastIndexByte(path[:i], '/'); j > 0 && !strings.ContainsAny(path[j:i], ".[") {
				i = j
			}
		}
		path = path[:i]
	}
	pos, _ := valuePos(doc, doc.value)
	return pos
}

func valuePos(doc *document, v *ir.Value) (token.Pos, bool) {
	if v.IsObject() {
		return doc.positions.Object(v.Obj)
	}
	return doc.positions.Value(v)
}

// tokenEnd is the end of the token starting at pos, or one character on
// when there is none.
func tokenEnd(doc *document, pos token.Pos) token.Pos {
	for i := range doc.tokens {
		tok := &doc.tokens[i]
		if tok.Pos.Offset == pos.Offset && !strings.ContainsAny(tok.Text, "\r\n") {
			return tok.End()
		}
	}
	return token.Pos{Offset: pos.Offset + 1, Line: pos.Line, Col: pos.Col + 1}
}

func toPosition(p token.Pos) protocol.Position {
	return protocol.Position{Line: uint32(p.Line), Character: uint32(p.Col)}
}
