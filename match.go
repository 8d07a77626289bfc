package qmlon

import (
	"github.com/signadot/qmlon/debug"
	"github.com/signadot/qmlon/ir"
)

// Match reports whether doc has the shape of pattern.
//
// Scalars match when equal and lists when they have the same length and
// match element by element. An object pattern matches an object whose type
// is the same, or any object when the pattern is anonymous, provided every
// pattern property matches the property of the same name and the pattern
// children match distinct children of doc in order.
func Match(doc, pattern *ir.Value) bool {
	if debug.Match() {
		debug.Logf("match %v against %v\n", pattern, doc)
	}
	if doc == nil || pattern == nil {
		return doc == pattern
	}
	if doc.Kind != pattern.Kind {
		return false
	}
	switch pattern.Kind {
	case ir.ObjectKind:
		return matchObject(doc.Obj, pattern.Obj)
	case ir.ListKind:
		if len(doc.List) != len(pattern.List) {
			return false
		}
		for i := range doc.List {
			if !Match(doc.List[i], pattern.List[i]) {
				return false
			}
		}
		return true
	default:
		return ir.Equal(doc, pattern)
	}
}

func matchObject(doc, pattern *ir.Object) bool {
	if pattern.Type != "" && pattern.Type != doc.Type {
		return false
	}
	for name, pv := range pattern.Properties {
		dv := doc.Get(name)
		if dv == nil || !Match(dv, pv) {
			return false
		}
	}
	return matchChildren(doc.Children, pattern.Children) != nil
}

// matchChildren returns, for each pattern child, the index of the doc child
// it matched, or nil if the pattern children do not all match. Earliest
// matches leave the most room for the rest.
func matchChildren(doc, pattern []*ir.Object) []int {
	res := make([]int, 0, len(pattern))
	j := 0
	for _, pc := range pattern {
		for j < len(doc) && !matchObject(doc[j], pc) {
			j++
		}
		if j == len(doc) {
			return nil
		}
		res = append(res, j)
		j++
	}
	return res
}

// Trim returns the part of doc selected by pattern: objects keep only the
// properties pattern names and the children pattern matched, lists keep the
// elements matching some pattern element. Anything else is cloned whole.
func Trim(pattern, doc *ir.Value) *ir.Value {
	if doc == nil || pattern == nil || doc.Kind != pattern.Kind {
		return doc.Clone()
	}
	switch pattern.Kind {
	case ir.ObjectKind:
		return ir.FromObject(trimObject(pattern.Obj, doc.Obj))
	case ir.ListKind:
		var res []*ir.Value
		used := make([]bool, len(doc.List))
		for _, pe := range pattern.List {
			for i, de := range doc.List {
				if used[i] || !Match(de, pe) {
					continue
				}
				res = append(res, Trim(pe, de))
				used[i] = true
				break
			}
		}
		return ir.FromList(res)
	default:
		return doc.Clone()
	}
}

func trimObject(pattern, doc *ir.Object) *ir.Object {
	res := ir.NewObject(doc.Type)
	for _, k := range doc.Keys() {
		pv := pattern.Get(k)
		if pv == nil {
			continue
		}
		res.Set(k, Trim(pv, doc.Properties[k]))
	}
	idx := matchChildren(doc.Children, pattern.Children)
	for i, j := range idx {
		res.AddChild(trimObject(pattern.Children[i], doc.Children[j]))
	}
	return res
}
