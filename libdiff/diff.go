package libdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order.
func Diff(from, to *ir.Value) []Change {
	d := &differ{}
	d.value("$", from, to)
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(path string, op Op, from, to *ir.Value) {
	d.changes = append(d.changes, Change{Path: path, Op: op, From: from, To: to})
}

func (d *differ) value(path string, from, to *ir.Value) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		d.add(path, Insert, nil, to)
		return
	case to == nil:
		d.add(path, Delete, from, nil)
		return
	case from.Kind != to.Kind:
		d.add(path, Replace, from, to)
		return
	}
	switch from.Kind {
	case ir.ListKind:
		d.list(path, from.List, to.List)
	case ir.ObjectKind:
		if from.Obj == nil || to.Obj == nil || from.Obj.Type != to.Obj.Type {
			if !ir.Equal(from, to) {
				d.add(path, Replace, from, to)
			}
			return
		}
		d.object(path, from.Obj, to.Obj)
	default:
		if !ir.Equal(from, to) {
			d.add(path, Replace, from, to)
		}
	}
}

func (d *differ) object(path string, from, to *ir.Object) {
	keys := from.Keys()
	for _, k := range to.Keys() {
		if !from.Has(k) {
			keys = append(keys, k)
		}
	}
	for _, k := range sortedUnique(keys) {
		d.value(ir.FieldPath(path, k), from.Get(k), to.Get(k))
	}
	syms := newSymbols()
	fromRunes := make([]rune, len(from.Children))
	for i, c := range from.Children {
		fromRunes[i] = syms.rune(c.Type)
	}
	toRunes := make([]rune, len(to.Children))
	for i, c := range to.Children {
		toRunes[i] = syms.rune(c.Type)
	}
	fi, ti := 0, 0
	for _, df := range diffRunes(fromRunes, toRunes) {
		n := len([]rune(df.Text))
		for range n {
			switch df.Type {
			case diffpatch.DiffDelete:
				d.add(ir.ChildPath(path, fi, from.Children[fi].Type), Delete, ir.FromObject(from.Children[fi]), nil)
				fi++
			case diffpatch.DiffInsert:
				d.add(ir.ChildPath(path, ti, to.Children[ti].Type), Insert, nil, ir.FromObject(to.Children[ti]))
				ti++
			case diffpatch.DiffEqual:
				d.object(ir.ChildPath(path, ti, to.Children[ti].Type), from.Children[fi], to.Children[ti])
				fi++
				ti++
			}
		}
	}
}

// list aligns elements by their encoding; a deletion directly followed by
// an insertion of the same length is diffed element by element.
func (d *differ) list(path string, from, to []*ir.Value) {
	syms := newSymbols()
	fromRunes := make([]rune, len(from))
	for i, v := range from {
		fromRunes[i] = syms.rune(key(v))
	}
	toRunes := make([]rune, len(to))
	for i, v := range to {
		toRunes[i] = syms.rune(key(v))
	}
	diffs := diffRunes(fromRunes, toRunes)
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		n := len([]rune(df.Text))
		if df.Type == diffpatch.DiffDelete && i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert &&
			len([]rune(diffs[i+1].Text)) == n {
			for range n {
				d.value(ir.IndexPath(path, ti), from[fi], to[ti])
				fi++
				ti++
			}
			i++
			continue
		}
		for range n {
			switch df.Type {
			case diffpatch.DiffDelete:
				d.add(ir.IndexPath(path, fi), Delete, from[fi], nil)
				fi++
			case diffpatch.DiffInsert:
				d.add(ir.IndexPath(path, ti), Insert, nil, to[ti])
				ti++
			case diffpatch.DiffEqual:
				fi++
				ti++
			}
		}
	}
}

func diffRunes(from, to []rune) []diffpatch.Diff {
	dmp := diffpatch.New()
	return dmp.DiffMainRunes(from, to, false)
}

func key(v *ir.Value) string {
	s, err := encode.String(v, encode.EncodeWire(true))
	if err != nil {
		return fmt.Sprintf("%p", v)
	}
	return s
}

// symbols assigns each distinct string a rune, skipping the surrogate range
// so every symbol survives a round trip through a string.
type symbols struct {
	m map[string]rune
}

func newSymbols() *symbols {
	return &symbols{m: map[string]rune{}}
}

func (s *symbols) rune(k string) rune {
	r, ok := s.m[k]
	if !ok {
		r = rune(len(s.m)) + 1
		if r >= 0xD800 {
			r += 0x800
		}
		s.m[k] = r
	}
	return r
}

func sortedUnique(ks []string) []string {
	ks = slices.Clone(ks)
	slices.Sort(ks)
	return slices.Compact(ks)
}
