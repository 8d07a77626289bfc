package schema

import (
	"maps"
	"slices"
)

// Schema is a set of object type declarations and the name of the type a
// document's root object must have.
type Schema struct {
	Root  string
	Decls map[string]*TypeDecl
}

// TypeDecl declares an object type. Interfaces skip the type name check.
type TypeDecl struct {
	Name       string
	Interface  bool
	Properties []*Property
	Children   []*Child
}

// Property constrains one property. A value passes if any of Types accepts
// it; with no Types any value passes.
type Property struct {
	Name     string
	Optional bool
	Types    []Validator
}

// Child constrains how many children of type Type an object may have.
type Child struct {
	Type     string
	Min, Max *int
}

func (s *Schema) Decl(name string) *TypeDecl {
	if s == nil {
		return nil
	}
	return s.Decls[name]
}

func (s *Schema) IsInterface(name string) bool {
	d := s.Decl(name)
	return d != nil && d.Interface
}

func (d *TypeDecl) Property(name string) *Property {
	for _, p := range d.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Names returns the declared type names in sorted order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.Decls))
}
