package schema

import (
	"fmt"
	"math"

	"github.com/signadot/qmlon/debug"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/parse"
)

// Parse parses src as a schema document and builds the schema.
func Parse(src []byte, opts ...Option) (*Schema, error) {
	pos := parse.NewPositions()
	v, err := parse.Parse(src, parse.ParsePositions(pos))
	if err != nil {
		return nil, err
	}
	return FromDocument(v, append([]Option{WithPositions(pos)}, opts...)...)
}

// FromDocument interprets a parsed document as a schema.
func FromDocument(v *ir.Value, opts ...Option) (*Schema, error) {
	b := &builder{}
	for _, o := range opts {
		o(&b.opts)
	}
	s, err := b.schema(v)
	if err != nil {
		return nil, err
	}
	if debug.Schema() {
		for _, name := range s.Names() {
			d := s.Decls[name]
			debug.Logf("schema decl %s interface=%t properties=%d children=%d\n", name, d.Interface, len(d.Properties), len(d.Children))
		}
	}
	return s, nil
}

type builder struct {
	opts buildOpts
}

func (b *builder) errAt(path string, v *ir.Value, err error) error {
	e := &Error{Path: path, Err: err}
	if p, ok := b.opts.positions.Value(v); ok {
		e.Pos = &p
	}
	return e
}

func (b *builder) errAtObj(path string, o *ir.Object, err error) error {
	e := &Error{Path: path, Err: err}
	if p, ok := b.opts.positions.Object(o); ok {
		e.Pos = &p
	}
	return e
}

func (b *builder) schema(v *ir.Value) (*Schema, error) {
	root, err := v.AsObject()
	if err != nil {
		return nil, b.errAt("$", v, fmt.Errorf("%w: schema document must be an object: %w", ErrField, err))
	}
	s := &Schema{Decls: map[string]*TypeDecl{}}
	if rv := root.Get("root"); rv != nil {
		s.Root, err = rv.AsString()
		if err != nil {
			return nil, b.errAt(ir.FieldPath("$", "root"), rv, fmt.Errorf("%w root: %w", ErrField, err))
		}
	}
	for i, c := range root.Children {
		path := ir.ChildPath("$", i, c.Type)
		if c.Type == "" {
			return nil, b.errAtObj(path, c, fmt.Errorf("%w: declaration needs a type name", ErrField))
		}
		d, err := b.decl(path, c)
		if err != nil {
			return nil, err
		}
		s.Decls[d.Name] = d
	}
	return s, nil
}

func (b *builder) decl(path string, o *ir.Object) (*TypeDecl, error) {
	d := &TypeDecl{Name: o.Type}
	if v := o.Get("interface"); v != nil {
		var err error
		d.Interface, err = v.AsBool()
		if err != nil {
			return nil, b.errAt(ir.FieldPath(path, "interface"), v, fmt.Errorf("%w interface: %w", ErrField, err))
		}
	}
	if err := b.eachListed(path, o, "properties", func(p string, po *ir.Object) error {
		prop, err := b.property(p, po)
		if err == nil {
			d.Properties = append(d.Properties, prop)
		}
		return err
	}); err != nil {
		return nil, err
	}
	if err := b.eachListed(path, o, "children", func(p string, co *ir.Object) error {
		c, err := b.child(p, co)
		if err == nil {
			d.Children = append(d.Children, c)
		}
		return err
	}); err != nil {
		return nil, err
	}
	for i, c := range o.Children {
		p := ir.ChildPath(path, i, c.Type)
		switch c.Type {
		case "Property":
			prop, err := b.property(p, c)
			if err != nil {
				return nil, err
			}
			d.Properties = append(d.Properties, prop)
		case "Child":
			ch, err := b.child(p, c)
			if err != nil {
				return nil, err
			}
			d.Children = append(d.Children, ch)
		}
	}
	return d, nil
}

// eachListed calls f on every object in the list property name of o.
func (b *builder) eachListed(path string, o *ir.Object, name string, f func(string, *ir.Object) error) error {
	v := o.Get(name)
	if v == nil {
		return nil
	}
	lpath := ir.FieldPath(path, name)
	l, err := v.AsList()
	if err != nil {
		return b.errAt(lpath, v, fmt.Errorf("%w %s: %w", ErrField, name, err))
	}
	for i, e := range l {
		epath := ir.IndexPath(lpath, i)
		eo, err := e.AsObject()
		if err != nil {
			return b.errAt(epath, e, fmt.Errorf("%w %s: %w", ErrField, name, err))
		}
		if err := f(epath, eo); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) property(path string, o *ir.Object) (*Property, error) {
	p := &Property{}
	nv := o.Get("name")
	if nv == nil {
		return nil, b.errAtObj(path, o, fmt.Errorf("%w: Property needs a name", ErrMissing))
	}
	var err error
	p.Name, err = nv.AsString()
	if err != nil {
		return nil, b.errAt(ir.FieldPath(path, "name"), nv, fmt.Errorf("%w name: %w", ErrField, err))
	}
	if ov := o.Get("optional"); ov != nil {
		p.Optional, err = ov.AsBool()
		if err != nil {
			return nil, b.errAt(ir.FieldPath(path, "optional"), ov, fmt.Errorf("%w optional: %w", ErrField, err))
		}
	}
	if tv := o.Get("type"); tv != nil {
		p.Types, err = b.validators(ir.FieldPath(path, "type"), tv)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (b *builder) child(path string, o *ir.Object) (*Child, error) {
	c := &Child{}
	tv := o.Get("type")
	if tv == nil {
		return nil, b.errAtObj(path, o, fmt.Errorf("%w: Child needs a type", ErrMissing))
	}
	var err error
	c.Type, err = tv.AsString()
	if err != nil {
		return nil, b.errAt(ir.FieldPath(path, "type"), tv, fmt.Errorf("%w type: %w", ErrField, err))
	}
	c.Min, c.Max, err = b.countBounds(path, o)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// validators reads one descriptor or a list of them.
func (b *builder) validators(path string, v *ir.Value) ([]Validator, error) {
	if v.Kind != ir.ListKind {
		one, err := b.validator(path, v)
		if err != nil {
			return nil, err
		}
		return []Validator{one}, nil
	}
	res := make([]Validator, 0, len(v.List))
	for i, e := range v.List {
		one, err := b.validator(ir.IndexPath(path, i), e)
		if err != nil {
			return nil, err
		}
		res = append(res, one)
	}
	return res, nil
}

func (b *builder) validator(path string, v *ir.Value) (Validator, error) {
	o, err := v.AsObject()
	if err != nil {
		return nil, b.errAt(path, v, fmt.Errorf("%w: validator must be an object: %w", ErrField, err))
	}
	switch o.Type {
	case "Boolean":
		return &Boolean{}, nil
	case "Integer":
		res := &Integer{}
		if res.Min, err = b.optInt(path, o, "min"); err != nil {
			return nil, err
		}
		if res.Max, err = b.optInt(path, o, "max"); err != nil {
			return nil, err
		}
		if res.Min != nil && res.Max != nil && *res.Min > *res.Max {
			return nil, b.errAt(path, v, fmt.Errorf("%w: min %d > max %d", ErrBound, *res.Min, *res.Max))
		}
		return res, nil
	case "Float":
		res := &Float{}
		if res.Min, err = b.optFloat(path, o, "min"); err != nil {
			return nil, err
		}
		if res.Max, err = b.optFloat(path, o, "max"); err != nil {
			return nil, err
		}
		if res.Min != nil && res.Max != nil && *res.Min > *res.Max {
			return nil, b.errAt(path, v, fmt.Errorf("%w: min %v > max %v", ErrBound, *res.Min, *res.Max))
		}
		return res, nil
	case "String":
		res := &String{}
		if res.Min, res.Max, err = b.countBounds(path, o); err != nil {
			return nil, err
		}
		return res, nil
	case "List":
		res := &List{}
		if res.Min, res.Max, err = b.countBounds(path, o); err != nil {
			return nil, err
		}
		if tv := o.Get("type"); tv != nil {
			if res.Elems, err = b.validators(ir.FieldPath(path, "type"), tv); err != nil {
				return nil, err
			}
		}
		return res, nil
	case "Object":
		res := &Object{}
		if tv := o.Get("type"); tv != nil {
			t, err := tv.AsString()
			if err != nil {
				return nil, b.errAt(ir.FieldPath(path, "type"), tv, fmt.Errorf("%w type: %w", ErrField, err))
			}
			res.Type = &t
		}
		return res, nil
	default:
		return nil, b.errAt(path, v, fmt.Errorf("%w: %q", ErrNotSchemaType, o.Type))
	}
}

func (b *builder) optInt(path string, o *ir.Object, name string) (*int64, error) {
	v := o.Get(name)
	if v == nil {
		return nil, nil
	}
	i, err := v.AsInt()
	if err != nil {
		return nil, b.errAt(ir.FieldPath(path, name), v, fmt.Errorf("%w %s: %w", ErrField, name, err))
	}
	return &i, nil
}

func (b *builder) optFloat(path string, o *ir.Object, name string) (*float64, error) {
	v := o.Get(name)
	if v == nil {
		return nil, nil
	}
	f, err := v.AsFloat()
	if err != nil {
		return nil, b.errAt(ir.FieldPath(path, name), v, fmt.Errorf("%w %s: %w", ErrField, name, err))
	}
	return &f, nil
}

func (b *builder) optCount(path string, o *ir.Object, name string) (*int, error) {
	i, err := b.optInt(path, o, name)
	if err != nil || i == nil {
		return nil, err
	}
	if *i < 0 || *i > math.MaxInt32 {
		v := o.Get(name)
		return nil, b.errAt(ir.FieldPath(path, name), v, fmt.Errorf("%w: %s %d out of range", ErrBound, name, *i))
	}
	n := int(*i)
	return &n, nil
}

// countBounds reads non-negative min and max.
func (b *builder) countBounds(path string, o *ir.Object) (*int, *int, error) {
	lo, err := b.optCount(path, o, "min")
	if err != nil {
		return nil, nil, err
	}
	hi, err := b.optCount(path, o, "max")
	if err != nil {
		return nil, nil, err
	}
	if lo != nil && hi != nil && *lo > *hi {
		return nil, nil, b.errAtObj(path, o, fmt.Errorf("%w: min %d > max %d", ErrBound, *lo, *hi))
	}
	return lo, hi, nil
}
