package parse

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/signadot/qmlon/debug"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Value, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads r to the end and parses exactly one value from it.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, end, err := token.LexEnd(r)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, end: end, opts: pOpts}
	pi := 0
	res, err := p.value(&pi)
	if err != nil {
		return nil, err
	}
	if pi < len(toks) {
		return nil, p.errAt(ErrTrailing, "", pi)
	}
	if debug.Parse() {
		debug.Logf("parsed %d tokens: %v\n", len(toks), res)
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	end  token.Pos
	opts *parseOpts
}

// errAt builds an error about the token at index i, or end of input.
func (p *parser) errAt(err error, expected string, i int) error {
	if i >= len(p.toks) {
		return &Error{Err: err, Expected: expected, Pos: p.end}
	}
	t := p.toks[i]
	return &Error{Err: err, Expected: expected, Got: &t, Pos: t.Pos}
}

func (p *parser) peek(pi *int) *token.Token {
	if *pi >= len(p.toks) {
		return nil
	}
	return &p.toks[*pi]
}

func (p *parser) expect(tt token.TokenType, pi *int) (*token.Token, error) {
	t := p.peek(pi)
	if t == nil || t.Type != tt {
		return nil, p.errAt(ErrUnexpected, tt.Describe(), *pi)
	}
	*pi++
	return t, nil
}

func (p *parser) value(pi *int) (*ir.Value, error) {
	t := p.peek(pi)
	if t == nil {
		return nil, p.errAt(ErrUnexpected, "value", *pi)
	}
	var (
		res *ir.Value
		err error
	)
	switch t.Type {
	case token.TIdent, token.TLCurl:
		var obj *ir.Object
		obj, err = p.object(pi)
		if err == nil {
			res = ir.FromObject(obj)
		}
	case token.TLSquare:
		res, err = p.list(pi)
	case token.TInteger:
		var i int64
		i, err = strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return nil, p.numErr(err, *pi)
		}
		res = ir.FromInt(i)
		*pi++
	case token.TFloat:
		var f float64
		f, err = strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return nil, p.numErr(err, *pi)
		}
		res = ir.FromFloat(f)
		*pi++
	case token.TBool:
		res = ir.FromBool(t.Text == "true")
		*pi++
	case token.TString:
		res = ir.FromString(unquote(t.Text))
		*pi++
	default:
		return nil, p.errAt(ErrUnexpected, "value", *pi)
	}
	if err != nil {
		return nil, err
	}
	trackValue(res, t.Pos, p.opts)
	return res, nil
}

func (p *parser) numErr(err error, i int) error {
	if errors.Is(err, strconv.ErrRange) {
		return p.errAt(ErrNumberRange, "", i)
	}
	return p.errAt(ErrUnexpected, "number", i)
}

// unquote drops the delimiting quotes; escapes are left as written.
func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

// object parses [IDENT] '{' member* '}'.
func (p *parser) object(pi *int) (*ir.Object, error) {
	start := p.toks[*pi].Pos
	obj := ir.NewObject("")
	if t := p.peek(pi); t.Type == token.TIdent {
		obj.Type = t.Text
		*pi++
	}
	if _, err := p.expect(token.TLCurl, pi); err != nil {
		return nil, err
	}
	trackObject(obj, start, p.opts)
	for {
		t := p.peek(pi)
		if t == nil {
			return nil, p.errAt(ErrUnexpected, "'}'", *pi)
		}
		switch t.Type {
		case token.TRCurl:
			*pi++
			return obj, nil
		case token.TComma:
			*pi++
		case token.TLCurl:
			child, err := p.object(pi)
			if err != nil {
				return nil, err
			}
			obj.AddChild(child)
		case token.TIdent:
			if err := p.member(obj, pi); err != nil {
				return nil, err
			}
		default:
			return nil, p.errAt(ErrUnexpected, "property, child object or '}'", *pi)
		}
	}
}

// member parses either `name: value` or `Type { ... }` into obj; the current
// token is the identifier.
func (p *parser) member(obj *ir.Object, pi *int) error {
	name := p.toks[*pi]
	next := *pi + 1
	if next >= len(p.toks) {
		return p.errAt(ErrUnexpected, "':' or '{'", next)
	}
	switch p.toks[next].Type {
	case token.TColon:
		*pi += 2
		v, err := p.value(pi)
		if err != nil {
			return err
		}
		if p.opts.strictKeys && obj.Has(name.Text) {
			return &Error{Err: ErrDuplicateKey, Expected: "", Got: &name, Pos: name.Pos}
		}
		obj.Set(name.Text, v)
		return nil
	case token.TLCurl:
		child, err := p.object(pi)
		if err != nil {
			return err
		}
		obj.AddChild(child)
		return nil
	default:
		return p.errAt(ErrUnexpected, "':' or '{'", next)
	}
}

func (p *parser) list(pi *int) (*ir.Value, error) {
	*pi++
	elems := []*ir.Value{}
	comma := false
	for {
		t := p.peek(pi)
		if t == nil {
			return nil, p.errAt(ErrUnexpected, "']'", *pi)
		}
		switch t.Type {
		case token.TRSquare:
			if comma {
				return nil, p.errAt(ErrUnexpected, "value", *pi)
			}
			*pi++
			return ir.FromList(elems), nil
		case token.TComma:
			if len(elems) == 0 || comma {
				return nil, p.errAt(ErrUnexpected, "value", *pi)
			}
			comma = true
			*pi++
		default:
			v, err := p.value(pi)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
			comma = false
		}
	}
}
