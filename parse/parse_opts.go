package parse

import (
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/token"
)

type parseOpts struct {
	positions  *Positions
	strictKeys bool
}

type ParseOption func(*parseOpts)

// ParsePositions records the start position of every value and object
// into p.
func ParsePositions(p *Positions) ParseOption {
	return func(o *parseOpts) { o.positions = p }
}

// StrictKeys makes a repeated property name within one object an error
// instead of replacing the earlier value.
func StrictKeys() ParseOption {
	return func(o *parseOpts) { o.strictKeys = true }
}

// Positions maps parsed values and objects to the position of their first
// token.
type Positions struct {
	Values  map[*ir.Value]token.Pos
	Objects map[*ir.Object]token.Pos
}

func NewPositions() *Positions {
	return &Positions{
		Values:  map[*ir.Value]token.Pos{},
		Objects: map[*ir.Object]token.Pos{},
	}
}

func (p *Positions) Value(v *ir.Value) (token.Pos, bool) {
	if p == nil {
		return token.Pos{}, false
	}
	pos, ok := p.Values[v]
	return pos, ok
}

func (p *Positions) Object(o *ir.Object) (token.Pos, bool) {
	if p == nil {
		return token.Pos{}, false
	}
	pos, ok := p.Objects[o]
	return pos, ok
}

func trackValue(v *ir.Value, pos token.Pos, opts *parseOpts) {
	p := opts.positions
	if p == nil {
		return
	}
	if p.Values == nil {
		p.Values = map[*ir.Value]token.Pos{}
	}
	p.Values[v] = pos
}

func trackObject(o *ir.Object, pos token.Pos, opts *parseOpts) {
	p := opts.positions
	if p == nil {
		return
	}
	if p.Objects == nil {
		p.Objects = map[*ir.Object]token.Pos{}
	}
	p.Objects[o] = pos
}
