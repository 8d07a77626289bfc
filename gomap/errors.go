package gomap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBind      = errors.New("bind error")
	ErrUnhandled = fmt.Errorf("%w: unhandled", ErrBind)
)

// BindError locates a binding failure in the document.
type BindError struct {
	Path string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrBind, e.Path, e.Err.Error())
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// wrapAt places err at path; paths of nested binding errors are relative
// to the value being bound, so they are appended.
func wrapAt(path string, err error) error {
	var be *BindError
	if errors.As(err, &be) {
		return &BindError{Path: path + strings.TrimPrefix(be.Path, "$"), Err: be.Err}
	}
	return &BindError{Path: path, Err: err}
}
