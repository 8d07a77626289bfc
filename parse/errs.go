package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/qmlon/token"
)

var (
	ErrParse        = errors.New("parse error")
	ErrUnexpected   = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrTrailing     = fmt.Errorf("%w: expected end of input", ErrParse)
	ErrNumberRange  = fmt.Errorf("%w: number out of range", ErrParse)
	ErrDuplicateKey = fmt.Errorf("%w: duplicate property", ErrParse)
)

// Error reports a structurally unexpected token. Got is nil at end of input.
type Error struct {
	Err      error
	Expected string
	Got      *token.Token
	Pos      token.Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	got := "end of input"
	if e.Got != nil {
		got = fmt.Sprintf("%s %q", e.Got.Type.Describe(), e.Got.Text)
	}
	if e.Expected == "" {
		return fmt.Sprintf("%s: got %s at %s", e.Err.Error(), got, e.Pos.String())
	}
	return fmt.Sprintf("%s: expected %s, got %s at %s", e.Err.Error(), e.Expected, got, e.Pos.String())
}
