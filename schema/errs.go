package schema

import (
	"errors"
	"fmt"

	"github.com/signadot/qmlon/parse"
	"github.com/signadot/qmlon/token"
)

var (
	ErrSchema        = fmt.Errorf("%w: schema", parse.ErrParse)
	ErrNotSchemaType = fmt.Errorf("%w: not a Schema type", ErrSchema)
	ErrField         = fmt.Errorf("%w: bad field", ErrSchema)
	ErrMissing       = fmt.Errorf("%w: missing field", ErrSchema)
	ErrBound         = fmt.Errorf("%w: bad bound", ErrSchema)

	ErrInvalid = errors.New("invalid document")
)

// Error is a schema document which cannot be interpreted as a schema. Pos is
// nil unless positions were supplied with WithPositions.
type Error struct {
	Path string
	Pos  *token.Pos
	Err  error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Path)
	}
	return fmt.Sprintf("%s at %s (%s)", e.Err.Error(), e.Path, e.Pos.String())
}

// ValidationError says where and why a document was rejected.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrInvalid, e.Path, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
