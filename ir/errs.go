package ir

import (
	"errors"
	"fmt"
)

var (
	ErrWrongKind = errors.New("wrong kind")
	ErrNilValue  = errors.New("nil value")
)

// KindError is returned when narrowing a Value to a kind it does not have.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: want %s got %s", ErrWrongKind, e.Want, e.Got)
}

func (e *KindError) Unwrap() error {
	return ErrWrongKind
}
