package gomap

import (
	"fmt"
	"math"

	"github.com/signadot/qmlon/ir"
)

func Bool[T any](field func(*T) *bool) PropSetter[T] {
	return func(t *T, v *ir.Value) error {
		b, err := v.AsBool()
		if err != nil {
			return err
		}
		*field(t) = b
		return nil
	}
}

func Int[T any, I ~int | ~int8 | ~int16 | ~int32 | ~int64](field func(*T) *I) PropSetter[T] {
	return func(t *T, v *ir.Value) error {
		i, err := v.AsInt()
		if err != nil {
			return err
		}
		if int64(I(i)) != i {
			return fmt.Errorf("%w: %d overflows %T", ErrBind, i, *field(t))
		}
		*field(t) = I(i)
		return nil
	}
}

// Float also accepts integers.
func Float[T any, F ~float32 | ~float64](field func(*T) *F) PropSetter[T] {
	return func(t *T, v *ir.Value) error {
		f, err := v.AsFloat()
		if err != nil {
			return err
		}
		if math.IsInf(float64(F(f)), 0) && !math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v overflows %T", ErrBind, f, F(0))
		}
		*field(t) = F(f)
		return nil
	}
}

func String[T any](field func(*T) *string) PropSetter[T] {
	return func(t *T, v *ir.Value) error {
		s, err := v.AsString()
		if err != nil {
			return err
		}
		*field(t) = s
		return nil
	}
}

// List binds every element of a list property with elem and stores the
// result.
func List[T, E any](elem func(*ir.Value) (E, error), field func(*T) *[]E) PropSetter[T] {
	return func(t *T, v *ir.Value) error {
		l, err := v.AsList()
		if err != nil {
			return err
		}
		res := make([]E, 0, len(l))
		for i, ev := range l {
			e, err := elem(ev)
			if err != nil {
				return wrapAt(ir.IndexPath("$", i), err)
			}
			res = append(res, e)
		}
		*field(t) = res
		return nil
	}
}

// Nested binds an object-valued property into the field with b.
func Nested[T, U any](b *Binder[U], field func(*T) *U) PropSetter[T] {
	return func(t *T, v *ir.Value) error {
		return b.BindValue(field(t), v)
	}
}

// AddChild binds a child into a fresh U and hands it to add.
func AddChild[T, U any](b *Binder[U], add func(*T, U)) ChildAdder[T] {
	return func(t *T, o *ir.Object) error {
		u, err := b.New(o)
		if err != nil {
			return err
		}
		add(t, u)
		return nil
	}
}

// ChildInto binds a child into a single field with b. A later child of
// the same type binds over the earlier one.
func ChildInto[T, U any](b *Binder[U], field func(*T) *U) ChildAdder[T] {
	return func(t *T, o *ir.Object) error {
		return b.Bind(field(t), o)
	}
}

// Value turns a binder into an element converter for List.
func Value[U any](b *Binder[U]) func(*ir.Value) (U, error) {
	return func(v *ir.Value) (U, error) {
		var u U
		err := b.BindValue(&u, v)
		return u, err
	}
}
