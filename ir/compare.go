package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally equal: same kinds, same
// scalars, same object types, property sets and child order.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Kinds order as Boolean < Integer < Float < String < List < Object.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind.rank(), b.Kind.rank())
	}
	switch a.Kind {
	case BoolKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntKind:
		return cmp.Compare(a.Int, b.Int)
	case FloatKind:
		return cmp.Compare(a.Float, b.Float)
	case StringKind:
		return strings.Compare(a.Str, b.Str)
	case ListKind:
		return compareLists(a.List, b.List)
	case ObjectKind:
		return CompareObjects(a.Obj, b.Obj)
	}
	return 0
}

func (k Kind) rank() int {
	switch k {
	case BoolKind:
		return 0
	case IntKind:
		return 1
	case FloatKind:
		return 2
	case StringKind:
		return 3
	case ListKind:
		return 4
	case ObjectKind:
		return 5
	}
	return 100
}

func compareLists(a, b []*Value) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// CompareObjects orders objects by type, then properties in key order, then
// children.
func CompareObjects(a, b *Object) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	ak, bk := a.Keys(), b.Keys()
	if c := cmp.Compare(len(ak), len(bk)); c != 0 {
		return c
	}
	if c := slices.Compare(ak, bk); c != 0 {
		return c
	}
	for _, k := range ak {
		if c := Compare(a.Properties[k], b.Properties[k]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a.Children), len(b.Children)); c != 0 {
		return c
	}
	for i := range a.Children {
		if c := CompareObjects(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return 0
}
