package main

import (
	"context"

	"github.com/signadot/qmlon/schema"
	"github.com/signadot/qmlon/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	items := s.completions(doc, int(params.Position.Line), int(params.Position.Character))
	return &protocol.CompletionList{Items: items}, nil
}

func (s *Server) completions(doc *document, line, col int) []protocol.CompletionItem {
	items := []protocol.CompletionItem{
		{Label: "true", Kind: protocol.CompletionItemKindKeyword},
		{Label: "false", Kind: protocol.CompletionItemKindKeyword},
	}
	sch := s.schemas.Lookup(doc.rootType())
	if sch == nil {
		return items
	}
	enclosing, ok := enclosingType(doc.significant(), token.Pos{Line: line, Col: col})
	if !ok {
		items = append(items, protocol.CompletionItem{
			Label:      sch.Root,
			Kind:       protocol.CompletionItemKindClass,
			InsertText: sch.Root + " {}",
		})
		return items
	}
	d := sch.Decl(enclosing)
	if d == nil {
		return items
	}
	for _, p := range d.Properties {
		items = append(items, protocol.CompletionItem{
			Label:      p.Name,
			Kind:       protocol.CompletionItemKindProperty,
			Detail:     describeProperty(p),
			InsertText: p.Name + ": ",
		})
	}
	for _, name := range childTypes(sch, d) {
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       protocol.CompletionItemKindClass,
			InsertText: name + " {}",
		})
	}
	return items
}

// enclosingType finds the type of the innermost object open at pos by
// matching braces in the tokens before it. ok is false outside any object.
func enclosingType(toks []token.Token, pos token.Pos) (string, bool) {
	var stack []string
	for i, tok := range toks {
		if !before(tok.Pos, pos) {
			break
		}
		switch tok.Type {
		case token.TLCurl:
			typ := ""
			if i > 0 && toks[i-1].Type == token.TIdent {
				typ = toks[i-1].Text
			}
			stack = append(stack, typ)
		case token.TRCurl:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) == 0 {
		return "", false
	}
	return stack[len(stack)-1], true
}

func before(a, b token.Pos) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Col < b.Col
}

// childTypes lists the types allowed as children of d. Interface
// constraints admit every declared type.
func childTypes(sch *schema.Schema, d *schema.TypeDecl) []string {
	seen := map[string]bool{}
	var res []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			res = append(res, name)
		}
	}
	for _, c := range d.Children {
		if !sch.IsInterface(c.Type) {
			add(c.Type)
			continue
		}
		for _, name := range sch.Names() {
			if !sch.IsInterface(name) {
				add(name)
			}
		}
	}
	return res
}
