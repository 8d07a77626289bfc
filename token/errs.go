package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpected      = errors.New("unexpected character")
	ErrMultipleDecimal = errors.New("multiple decimal points")
	ErrNumber          = errors.New("malformed number")
	ErrUnterminated    = errors.New("unterminated")
	ErrBadUTF8         = errors.New("bad utf8")
)

// SyntaxError is a fatal tokenizing error at a position.
type SyntaxError struct {
	Err error
	Pos Pos
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s at %s", e.Err.Error(), e.Pos.String())
}

func NewSyntaxError(e error, p Pos) *SyntaxError {
	return &SyntaxError{Err: e, Pos: p}
}

func unexpectedErr(r rune, p Pos) error {
	return NewSyntaxError(fmt.Errorf("%w %q", ErrUnexpected, r), p)
}

func unterminatedErr(what string, p Pos) error {
	return NewSyntaxError(fmt.Errorf("%w %s", ErrUnterminated, what), p)
}
