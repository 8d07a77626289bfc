package eval

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/signadot/qmlon/ir"
)

var ErrConvert = errors.New("cannot convert to value")

// ToAny returns the generic mapping of v.
func ToAny(v *ir.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ir.BoolKind:
		return v.Bool
	case ir.IntKind:
		return int(v.Int)
	case ir.FloatKind:
		return v.Float
	case ir.StringKind:
		return v.Str
	case ir.ListKind:
		res := make([]any, len(v.List))
		for i, e := range v.List {
			res[i] = ToAny(e)
		}
		return res
	case ir.ObjectKind:
		return ObjectToAny(v.Obj)
	default:
		panic("impossible kind")
	}
}

func ObjectToAny(o *ir.Object) map[string]any {
	if o == nil {
		return nil
	}
	props := make(map[string]any, len(o.Properties))
	for k, pv := range o.Properties {
		props[k] = ToAny(pv)
	}
	kids := make([]any, len(o.Children))
	for i, c := range o.Children {
		kids[i] = ObjectToAny(c)
	}
	return map[string]any{
		"type":       o.Type,
		"properties": props,
		"children":   kids,
	}
}

// FromAny converts the result of an expression back to a value.
//
// Maps whose keys are all among "type", "properties" and "children" are read
// with the object mapping. Any other map becomes an anonymous object whose
// properties are the map entries.
func FromAny(a any) (*ir.Value, error) {
	switch x := a.(type) {
	case *ir.Value:
		return x.Clone(), nil
	case *ir.Object:
		return ir.FromObject(x.Clone()), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case []any:
		res := make([]*ir.Value, len(x))
		for i, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = v
		}
		return ir.FromList(res), nil
	case map[string]any:
		obj, err := objectFromAny(x)
		if err != nil {
			return nil, err
		}
		return ir.FromObject(obj), nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrConvert)
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows Integer", ErrConvert, u)
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Slice, reflect.Array:
		res := make([]*ir.Value, rv.Len())
		for i := range rv.Len() {
			v, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = v
		}
		return ir.FromList(res), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrConvert, a)
}

func fromFloat(f float64) (*ir.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrConvert, f)
	}
	return ir.FromFloat(f), nil
}

func isObjectMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		switch k {
		case "type", "properties", "children":
		default:
			return false
		}
	}
	return true
}

func objectFromAny(m map[string]any) (*ir.Object, error) {
	if !isObjectMap(m) {
		obj := ir.NewObject("")
		for k, a := range m {
			v, err := FromAny(a)
			if err != nil {
				return nil, fmt.Errorf(".%s: %w", k, err)
			}
			obj.Set(k, v)
		}
		return obj, nil
	}
	obj := ir.NewObject("")
	if t, ok := m["type"]; ok && t != nil {
		s, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object type %T", ErrConvert, t)
		}
		obj.Type = s
	}
	if p, ok := m["properties"]; ok && p != nil {
		props, ok := p.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: object properties %T", ErrConvert, p)
		}
		for k, a := range props {
			v, err := FromAny(a)
			if err != nil {
				return nil, fmt.Errorf(".%s: %w", k, err)
			}
			obj.Set(k, v)
		}
	}
	if c, ok := m["children"]; ok && c != nil {
		kids, ok := c.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: object children %T", ErrConvert, c)
		}
		for i, ka := range kids {
			km, ok := ka.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: child %d is %T", ErrConvert, i, ka)
			}
			child, err := objectFromAny(km)
			if err != nil {
				return nil, err
			}
			obj.AddChild(child)
		}
	}
	return obj, nil
}
