package schema

import (
	"fmt"
	"strings"
)

// Validator checks a single value. The variants are Boolean, Integer, Float,
// String, List and Object.
type Validator interface {
	validator()
	// Tag is the descriptor name, like "Integer".
	Tag() string
	String() string
}

type Boolean struct{}

type Integer struct {
	Min, Max *int64
}

type Float struct {
	Min, Max *float64
}

// String bounds are lengths in bytes.
type String struct {
	Min, Max *int
}

// List bounds are element counts. An element must satisfy at least one of
// Elems; with no Elems any element is fine.
type List struct {
	Min, Max *int
	Elems    []Validator
}

// Object accepts any object when Type is nil, otherwise objects valid
// against the declaration named by Type.
type Object struct {
	Type *string
}

func (*Boolean) validator() {}
func (*Integer) validator() {}
func (*Float) validator()   {}
func (*String) validator()  {}
func (*List) validator()    {}
func (*Object) validator()  {}

func (*Boolean) Tag() string { return "Boolean" }
func (*Integer) Tag() string { return "Integer" }
func (*Float) Tag() string   { return "Float" }
func (*String) Tag() string  { return "String" }
func (*List) Tag() string    { return "List" }
func (*Object) Tag() string  { return "Object" }

func (b *Boolean) String() string { return "Boolean {}" }

func (v *Integer) String() string {
	return v.Tag() + bounds(fmtPtr(v.Min), fmtPtr(v.Max))
}

func (v *Float) String() string {
	return v.Tag() + bounds(fmtPtr(v.Min), fmtPtr(v.Max))
}

func (v *String) String() string {
	return v.Tag() + bounds(fmtPtr(v.Min), fmtPtr(v.Max))
}

func (v *List) String() string {
	var elems []string
	if len(v.Elems) != 0 {
		elems = append(elems, "type: "+Describe(v.Elems))
	}
	return v.Tag() + bounds(fmtPtr(v.Min), fmtPtr(v.Max), elems...)
}

func (v *Object) String() string {
	if v.Type == nil {
		return "Object {}"
	}
	return fmt.Sprintf("Object { type: %q }", *v.Type)
}

// Describe renders a set of alternatives the way a schema document would.
func Describe(vs []Validator) string {
	if len(vs) == 1 {
		return vs[0].String()
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func fmtPtr[T any](p *T) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(*p)
}

func bounds(min, max string, more ...string) string {
	var parts []string
	if min != "" {
		parts = append(parts, "min: "+min)
	}
	if max != "" {
		parts = append(parts, "max: "+max)
	}
	parts = append(parts, more...)
	if len(parts) == 0 {
		return " {}"
	}
	return " { " + strings.Join(parts, " ") + " }"
}
