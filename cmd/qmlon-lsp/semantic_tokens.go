package main

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/signadot/qmlon/token"
	"go.lsp.dev/protocol"
)

// Must match the legend in Initialize.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
		protocol.SemanticTokenModifierModification,
	}
)

const (
	semComment uint32 = iota
	semKeyword
	semString
	semNumber
	semOperator
	semProperty
)

const modDefinition uint32 = 1 << 0

type semToken struct {
	line, char, length uint32
	typ, mods          uint32
}

// classify assigns semantic types from the lexer: identifiers before ':'
// are properties, identifiers before '{' are object types.
func classify(toks []token.Token) []semToken {
	var res []semToken
	for i, tok := range toks {
		var typ, mods uint32
		switch tok.Type {
		case token.TSpace:
			continue
		case token.TLineComment, token.TMultiComment:
			res = append(res, splitLines(tok, semComment)...)
			continue
		case token.TString:
			typ = semString
		case token.TInteger, token.TFloat:
			typ = semNumber
		case token.TBool:
			typ = semKeyword
		case token.TIdent:
			typ = semProperty
			if next := nextSignificant(toks, i); next != nil && next.Type == token.TLCurl {
				typ, mods = semKeyword, modDefinition
			}
		default:
			typ = semOperator
		}
		res = append(res, semToken{
			line:   uint32(tok.Pos.Line),
			char:   uint32(tok.Pos.Col),
			length: uint32(utf8.RuneCountInString(tok.Text)),
			typ:    typ,
			mods:   mods,
		})
	}
	return res
}

func nextSignificant(toks []token.Token, i int) *token.Token {
	for j := i + 1; j < len(toks); j++ {
		if toks[j].Type == token.TSpace || toks[j].Type.IsComment() {
			continue
		}
		return &toks[j]
	}
	return nil
}

// splitLines breaks a token spanning lines into one token per line.
func splitLines(tok token.Token, typ uint32) []semToken {
	var res []semToken
	line, char := uint32(tok.Pos.Line), uint32(tok.Pos.Col)
	for i, part := range strings.Split(tok.Text, "\n") {
		part = strings.TrimSuffix(part, "\r")
		if i > 0 {
			line++
			char = 0
		}
		if part == "" {
			continue
		}
		res = append(res, semToken{line: line, char: char, length: uint32(utf8.RuneCountInString(part)), typ: typ})
	}
	return res
}

// encodeSemTokens produces the relative encoding of the protocol from
// tokens in document order.
func encodeSemTokens(toks []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, t := range toks {
		deltaLine := t.line - prevLine
		deltaChar := t.char
		if deltaLine == 0 {
			deltaChar = t.char - prevChar
		}
		data = append(data, deltaLine, deltaChar, t.length, t.typ, t.mods)
		prevLine, prevChar = t.line, t.char
	}
	return data
}

func inRange(t semToken, r protocol.Range) bool {
	if t.line < r.Start.Line || t.line > r.End.Line {
		return false
	}
	if t.line == r.Start.Line && t.char+t.length <= r.Start.Character {
		return false
	}
	if t.line == r.End.Line && t.char >= r.End.Character {
		return false
	}
	return true
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeSemTokens(classify(doc.tokens))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	var toks []semToken
	for _, t := range classify(doc.tokens) {
		if inRange(t, params.Range) {
			toks = append(toks, t)
		}
	}
	return &protocol.SemanticTokens{Data: encodeSemTokens(toks)}, nil
}
