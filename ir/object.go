package ir

import (
	"maps"
	"slices"
)

type Object struct {
	Type       string
	Properties map[string]*Value
	Children   []*Object
}

func NewObject(typ string) *Object {
	return &Object{Type: typ, Properties: map[string]*Value{}}
}

// Set assigns a property, replacing any earlier value under the same name.
func (o *Object) Set(name string, v *Value) *Object {
	if o.Properties == nil {
		o.Properties = map[string]*Value{}
	}
	o.Properties[name] = v
	return o
}

func (o *Object) Get(name string) *Value {
	if o == nil {
		return nil
	}
	return o.Properties[name]
}

func (o *Object) Has(name string) bool {
	if o == nil {
		return false
	}
	_, ok := o.Properties[name]
	return ok
}

func (o *Object) AddChild(c *Object) *Object {
	o.Children = append(o.Children, c)
	return o
}

// ChildrenOf returns the children typed typ, in order.
func (o *Object) ChildrenOf(typ string) []*Object {
	if o == nil {
		return nil
	}
	var res []*Object
	for _, c := range o.Children {
		if c.Type == typ {
			res = append(res, c)
		}
	}
	return res
}

// Keys returns the property names in sorted order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(o.Properties))
}

func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	res := &Object{Type: o.Type, Properties: make(map[string]*Value, len(o.Properties))}
	for k, v := range o.Properties {
		res.Properties[k] = v.Clone()
	}
	if o.Children != nil {
		res.Children = make([]*Object, len(o.Children))
		for i, c := range o.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}
