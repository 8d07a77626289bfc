package schema

import (
	"fmt"

	"github.com/signadot/qmlon/debug"
	"github.com/signadot/qmlon/ir"
)

// Validate reports whether v is a document of s. It never fails otherwise.
func (s *Schema) Validate(v *ir.Value) bool {
	return s.Check(v) == nil
}

// Check is Validate reporting the first reason for rejecting v as a
// *ValidationError.
func (s *Schema) Check(v *ir.Value) error {
	e := s.check(v)
	if e == nil {
		return nil
	}
	if debug.Validate() {
		debug.Logf("validate: %s\n", e.Error())
	}
	return e
}

func (s *Schema) check(v *ir.Value) *ValidationError {
	if s == nil {
		return fail("$", "no schema")
	}
	if s.Root == "" {
		return fail("$", "schema has no root type")
	}
	if !v.IsObject() {
		if v == nil {
			return fail("$", "no document")
		}
		return fail("$", "document is a %s, not an object", v.Kind)
	}
	d := s.Decls[s.Root]
	if d == nil {
		return fail("$", "root type %q is not declared", s.Root)
	}
	return s.checkDecl("$", d, v.Obj)
}

func fail(path, format string, args ...any) *ValidationError {
	return &ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func (s *Schema) checkDecl(path string, d *TypeDecl, o *ir.Object) *ValidationError {
	if !d.Interface && o.Type != d.Name {
		return fail(path, "type %q is not %q", o.Type, d.Name)
	}
	for _, p := range d.Properties {
		if e := s.checkProperty(path, p, o); e != nil {
			return e
		}
	}
	counts := make([]int, len(d.Children))
	for i, c := range o.Children {
		cpath := ir.ChildPath(path, i, c.Type)
		j := s.matchChild(cpath, d, c)
		if j < 0 {
			return fail(cpath, "%q allows no child %q", d.Name, c.Type)
		}
		counts[j]++
		cc := d.Children[j]
		if cc.Max != nil && counts[j] > *cc.Max {
			return fail(cpath, "more than %d %q children", *cc.Max, cc.Type)
		}
		if own := s.Decls[c.Type]; own != nil && !own.Interface {
			if e := s.checkDecl(cpath, own, c); e != nil {
				return e
			}
		}
	}
	for j, cc := range d.Children {
		if cc.Min != nil && counts[j] < *cc.Min {
			return fail(path, "%d %q children, need at least %d", counts[j], cc.Type, *cc.Min)
		}
	}
	return nil
}

// matchChild returns the index of the first Child constraint of d accepting
// c, or -1.
func (s *Schema) matchChild(path string, d *TypeDecl, c *ir.Object) int {
	for j, cc := range d.Children {
		if iface := s.Decls[cc.Type]; iface != nil && iface.Interface {
			if s.Decls[c.Type] != nil && s.checkDecl(path, iface, c) == nil {
				return j
			}
			continue
		}
		if c.Type == cc.Type {
			return j
		}
	}
	return -1
}

func (s *Schema) checkProperty(path string, p *Property, o *ir.Object) *ValidationError {
	ppath := ir.FieldPath(path, p.Name)
	v, ok := o.Properties[p.Name]
	if !ok {
		if p.Optional {
			return nil
		}
		return fail(ppath, "missing property")
	}
	if len(p.Types) == 0 {
		return nil
	}
	return s.checkAny(ppath, p.Types, v)
}

// checkAny accepts v if any of vs does.
func (s *Schema) checkAny(path string, vs []Validator, v *ir.Value) *ValidationError {
	var first *ValidationError
	for _, t := range vs {
		e := s.checkValue(path, t, v)
		if e == nil {
			return nil
		}
		if first == nil {
			first = e
		}
	}
	if len(vs) == 1 {
		return first
	}
	return fail(path, "%s is none of %s", describeValue(v), Describe(vs))
}

func describeValue(v *ir.Value) string {
	if v == nil {
		return "nothing"
	}
	if v.Kind == ir.ObjectKind && v.Obj != nil && v.Obj.Type != "" {
		return fmt.Sprintf("%s %q", v.Kind, v.Obj.Type)
	}
	return v.Kind.String()
}

func (s *Schema) checkValue(path string, t Validator, v *ir.Value) *ValidationError {
	if v == nil {
		return fail(path, "no value")
	}
	switch t := t.(type) {
	case *Boolean:
		if v.Kind != ir.BoolKind {
			return fail(path, "%s is not a Boolean", describeValue(v))
		}
	case *Integer:
		if v.Kind != ir.IntKind {
			return fail(path, "%s is not an Integer", describeValue(v))
		}
		if (t.Min != nil && v.Int < *t.Min) || (t.Max != nil && v.Int > *t.Max) {
			return fail(path, "%d is outside %s", v.Int, t)
		}
	case *Float:
		if v.Kind != ir.FloatKind {
			return fail(path, "%s is not a Float", describeValue(v))
		}
		if (t.Min != nil && v.Float < *t.Min) || (t.Max != nil && v.Float > *t.Max) {
			return fail(path, "%v is outside %s", v.Float, t)
		}
	case *String:
		if v.Kind != ir.StringKind {
			return fail(path, "%s is not a String", describeValue(v))
		}
		if n := len(v.Str); (t.Min != nil && n < *t.Min) || (t.Max != nil && n > *t.Max) {
			return fail(path, "length %d is outside %s", n, t)
		}
	case *List:
		if v.Kind != ir.ListKind {
			return fail(path, "%s is not a List", describeValue(v))
		}
		if n := len(v.List); (t.Min != nil && n < *t.Min) || (t.Max != nil && n > *t.Max) {
			return fail(path, "%d elements is outside %s", n, t)
		}
		for i, e := range v.List {
			if len(t.Elems) == 0 {
				return fail(ir.IndexPath(path, i), "%s has no element types", t)
			}
			if err := s.checkAny(ir.IndexPath(path, i), t.Elems, e); err != nil {
				return err
			}
		}
	case *Object:
		if !v.IsObject() {
			return fail(path, "%s is not an Object", describeValue(v))
		}
		if t.Type == nil {
			return nil
		}
		return s.checkRef(path, *t.Type, v.Obj)
	default:
		return fail(path, "unknown validator %T", t)
	}
	return nil
}

// checkRef validates o against the declaration named ref. Interface
// references also require o's own type to be declared, and valid.
func (s *Schema) checkRef(path, ref string, o *ir.Object) *ValidationError {
	d := s.Decls[ref]
	if d == nil {
		return fail(path, "type %q is not declared", ref)
	}
	if !d.Interface {
		return s.checkDecl(path, d, o)
	}
	own := s.Decls[o.Type]
	if own == nil {
		return fail(path, "type %q is not declared, so cannot implement %q", o.Type, ref)
	}
	if e := s.checkDecl(path, d, o); e != nil {
		return e
	}
	if own.Interface {
		return nil
	}
	return s.checkDecl(path, own, o)
}
