package gomap

import (
	"fmt"

	"github.com/signadot/qmlon/ir"
)

type PropSetter[T any] func(t *T, v *ir.Value) error
type ChildAdder[T any] func(t *T, o *ir.Object) error

// Binder initializes values of type T from objects.
type Binder[T any] struct {
	cfg      binderConfig
	props    map[string]PropSetter[T]
	children map[string]ChildAdder[T]
}

func NewBinder[T any](opts ...BinderOption) *Binder[T] {
	b := &Binder[T]{
		props:    map[string]PropSetter[T]{},
		children: map[string]ChildAdder[T]{},
	}
	for _, o := range opts {
		o(&b.cfg)
	}
	return b
}

func (b *Binder[T]) Prop(name string, f PropSetter[T]) *Binder[T] {
	b.props[name] = f
	return b
}

func (b *Binder[T]) Child(typ string, f ChildAdder[T]) *Binder[T] {
	b.children[typ] = f
	return b
}

// Default handles children no Child adder was registered for.
func (b *Binder[T]) Default(f ChildAdder[T]) *Binder[T] {
	return b.Child("", f)
}

// Bind applies o's properties, in key order, and then its children, in
// order, to t.
func (b *Binder[T]) Bind(t *T, o *ir.Object) error {
	return b.bindAt("$", t, o)
}

func (b *Binder[T]) BindValue(t *T, v *ir.Value) error {
	o, err := v.AsObject()
	if err != nil {
		return &BindError{Path: "$", Err: err}
	}
	return b.Bind(t, o)
}

// New binds o into a zero T.
func (b *Binder[T]) New(o *ir.Object) (T, error) {
	var t T
	err := b.Bind(&t, o)
	return t, err
}

func (b *Binder[T]) bindAt(path string, t *T, o *ir.Object) error {
	if o == nil {
		return &BindError{Path: path, Err: fmt.Errorf("nil object")}
	}
	for _, k := range o.Keys() {
		ppath := ir.FieldPath(path, k)
		f := b.props[k]
		if f == nil {
			if b.cfg.strict {
				return &BindError{Path: ppath, Err: fmt.Errorf("%w property %q of %q", ErrUnhandled, k, o.Type)}
			}
			continue
		}
		if err := f(t, o.Properties[k]); err != nil {
			return wrapAt(ppath, err)
		}
	}
	for i, c := range o.Children {
		cpath := ir.ChildPath(path, i, c.Type)
		f := b.children[c.Type]
		if f == nil {
			f = b.children[""]
		}
		if f == nil {
			if b.cfg.strict {
				return &BindError{Path: cpath, Err: fmt.Errorf("%w child %q of %q", ErrUnhandled, c.Type, o.Type)}
			}
			continue
		}
		if err := f(t, c); err != nil {
			return wrapAt(cpath, err)
		}
	}
	return nil
}
