package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TLineComment TokenType = iota
	TMultiComment
	TSpace
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TInteger
	TFloat
	TBool
	TIdent
	TString
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TLineComment:  "TLineComment",
		TMultiComment: "TMultiComment",
		TSpace:        "TSpace",
		TLCurl:        "TLCurl",
		TRCurl:        "TRCurl",
		TLSquare:      "TLSquare",
		TRSquare:      "TRSquare",
		TComma:        "TComma",
		TColon:        "TColon",
		TInteger:      "TInteger",
		TFloat:        "TFloat",
		TBool:         "TBool",
		TIdent:        "TIdent",
		TString:       "TString",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// Describe names the token type the way error messages refer to it.
func (t TokenType) Describe() string {
	switch t {
	case TLCurl:
		return "'{'"
	case TRCurl:
		return "'}'"
	case TLSquare:
		return "'['"
	case TRSquare:
		return "']'"
	case TComma:
		return "','"
	case TColon:
		return "':'"
	case TInteger:
		return "integer"
	case TFloat:
		return "float"
	case TBool:
		return "boolean"
	case TIdent:
		return "identifier"
	case TString:
		return "string"
	case TSpace:
		return "whitespace"
	case TLineComment, TMultiComment:
		return "comment"
	default:
		return t.String()
	}
}

func (t TokenType) IsComment() bool {
	return t == TLineComment || t == TMultiComment
}

// Token is one lexical symbol. Text is the exact source text, so a TString
// token still has its quotes and escapes.
type Token struct {
	Type TokenType
	Text string
	Pos  Pos
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// Dump renders the token as `line:col TYPE 'text'` with zero based line and
// column.
func (t *Token) Dump() string {
	return strconv.Itoa(t.Pos.Line) + ":" + strconv.Itoa(t.Pos.Col) + " " + t.Type.String() + ": '" + t.Text + "'"
}

// End is the position just after the token, assuming the token does not
// span lines.
func (t *Token) End() Pos {
	n := 0
	for range t.Text {
		n++
	}
	return Pos{Offset: t.Pos.Offset + len(t.Text), Line: t.Pos.Line, Col: t.Pos.Col + n}
}
