package token

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/signadot/qmlon/debug"
)

// Tokenizer produces tokens from a Source one at a time.
type Tokenizer struct {
	src *Source
	opt *tokenOpts
	buf strings.Builder
	err error
}

func NewTokenizer(r io.Reader, opts ...TokenOpt) *Tokenizer {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	return &Tokenizer{src: NewSource(r), opt: opt}
}

// End returns the position after the last consumed character. Once Next has
// returned io.EOF it is the end of input.
func (tz *Tokenizer) End() Pos {
	return tz.src.Pos()
}

// Next returns the next token which is not filtered out by the options,
// or io.EOF. After any other error the tokenizer is done and keeps
// returning that error.
func (tz *Tokenizer) Next() (Token, error) {
	if tz.err != nil {
		return Token{}, tz.err
	}
	for {
		tok, err := tz.one()
		if err != nil {
			tz.err = err
			return Token{}, err
		}
		if !tz.opt.keep(tok.Type) {
			continue
		}
		if debug.Lex() {
			debug.Logf("lex %s\n", tok.Dump())
		}
		return tok, nil
	}
}

func (tz *Tokenizer) one() (Token, error) {
	src := tz.src
	c, err := src.Peek()
	if err != nil {
		return Token{}, err
	}
	tok := Token{Pos: src.Pos()}
	switch {
	case c == '{', c == '}', c == '[', c == ']', c == ',', c == ':':
		src.Next()
		tok.Type = punct(c)
		tok.Text = string(c)
		return tok, nil
	case numberStart(c):
		return tz.number(tok)
	case c == '"':
		return tz.str(tok)
	case asciiLetter(c):
		return tz.ident(tok)
	case c == '/':
		return tz.comment(tok)
	case isSpace(c):
		return tz.space(tok)
	default:
		return Token{}, unexpectedErr(c, tok.Pos)
	}
}

func punct(c rune) TokenType {
	switch c {
	case '{':
		return TLCurl
	case '}':
		return TRCurl
	case '[':
		return TLSquare
	case ']':
		return TRSquare
	case ',':
		return TComma
	default:
		return TColon
	}
}

// next consumes a rune into the token buffer.
func (tz *Tokenizer) next() (rune, error) {
	c, err := tz.src.Next()
	if err != nil {
		return c, err
	}
	tz.buf.WriteRune(c)
	return c, nil
}

// peek is Peek with io.EOF reported as ok=false.
func (tz *Tokenizer) peek() (rune, bool, error) {
	c, err := tz.src.Peek()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return c, true, nil
}

func (tz *Tokenizer) text() string {
	s := tz.buf.String()
	tz.buf.Reset()
	return s
}

func (tz *Tokenizer) number(tok Token) (Token, error) {
	tok.Type = TInteger
	digits := 0
	c, _ := tz.next()
	switch c {
	case '.':
		tok.Type = TFloat
	case '-':
	default:
		digits++
	}
	for {
		c, ok, err := tz.peek()
		if err != nil {
			return Token{}, err
		}
		if !ok {
			break
		}
		if c == '.' {
			if tok.Type == TFloat {
				tz.buf.Reset()
				return Token{}, NewSyntaxError(ErrMultipleDecimal, tok.Pos)
			}
			tok.Type = TFloat
			tz.next()
			continue
		}
		if !asciiDigit(c) {
			break
		}
		digits++
		tz.next()
	}
	tok.Text = tz.text()
	if digits == 0 {
		return Token{}, NewSyntaxError(ErrNumber, tok.Pos)
	}
	return tok, nil
}

func (tz *Tokenizer) str(tok Token) (Token, error) {
	tok.Type = TString
	tz.next()
	for {
		c, err := tz.next()
		if errors.Is(err, io.EOF) {
			tz.buf.Reset()
			return Token{}, unterminatedErr("string", tok.Pos)
		}
		if err != nil {
			return Token{}, err
		}
		switch c {
		case '"':
			tok.Text = tz.text()
			return tok, nil
		case '\\':
			_, err := tz.next()
			if errors.Is(err, io.EOF) {
				tz.buf.Reset()
				return Token{}, unterminatedErr("string", tok.Pos)
			}
			if err != nil {
				return Token{}, err
			}
		}
	}
}

func (tz *Tokenizer) ident(tok Token) (Token, error) {
	tz.next()
	for {
		c, ok, err := tz.peek()
		if err != nil {
			return Token{}, err
		}
		if !ok || !asciiAlnum(c) {
			break
		}
		tz.next()
	}
	tok.Text = tz.text()
	switch tok.Text {
	case "true", "false":
		tok.Type = TBool
	default:
		tok.Type = TIdent
	}
	return tok, nil
}

func (tz *Tokenizer) comment(tok Token) (Token, error) {
	tz.next()
	c, ok, err := tz.peek()
	if err != nil {
		return Token{}, err
	}
	if !ok || (c != '/' && c != '*') {
		tz.buf.Reset()
		return Token{}, unexpectedErr('/', tok.Pos)
	}
	tz.next()
	if c == '/' {
		tok.Type = TLineComment
		for {
			c, ok, err := tz.peek()
			if err != nil {
				return Token{}, err
			}
			if !ok || c == '\n' || c == '\r' {
				break
			}
			tz.next()
		}
		tok.Text = tz.text()
		return tok, nil
	}
	tok.Type = TMultiComment
	star := false
	for {
		c, err := tz.next()
		if errors.Is(err, io.EOF) {
			tz.buf.Reset()
			return Token{}, unterminatedErr("comment", tok.Pos)
		}
		if err != nil {
			return Token{}, err
		}
		if star && c == '/' {
			tok.Text = tz.text()
			return tok, nil
		}
		star = c == '*'
	}
}

func (tz *Tokenizer) space(tok Token) (Token, error) {
	tok.Type = TSpace
	for {
		c, ok, err := tz.peek()
		if err != nil {
			return Token{}, err
		}
		if !ok || !isSpace(c) {
			break
		}
		tz.next()
	}
	tok.Text = tz.text()
	return tok, nil
}

// Lex tokenizes everything r provides.
func Lex(r io.Reader, opts ...TokenOpt) ([]Token, error) {
	toks, _, err := LexEnd(r, opts...)
	return toks, err
}

// LexEnd is Lex which also reports the end of input position.
func LexEnd(r io.Reader, opts ...TokenOpt) ([]Token, Pos, error) {
	tz := NewTokenizer(r, opts...)
	var dst []Token
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return dst, tz.End(), nil
		}
		if err != nil {
			return nil, tz.End(), err
		}
		dst = append(dst, tok)
	}
}

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	toks, err := Lex(bytes.NewReader(src), opts...)
	if err != nil {
		return nil, err
	}
	return append(dst, toks...), nil
}
