package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrJSON = errors.New("json mapping")

type objectJSON struct {
	Type       string            `json:"type"`
	Properties map[string]*Value `json:"properties,omitempty"`
	Children   []*Object         `json:"children,omitempty"`
}

func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case BoolKind:
		return json.Marshal(v.Bool)
	case IntKind:
		return strconv.AppendInt(nil, v.Int, 10), nil
	case FloatKind:
		return formatFloatJSON(v.Float)
	case StringKind:
		return json.Marshal(v.Str)
	case ListKind:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case ObjectKind:
		return json.Marshal(v.Obj)
	}
	return nil, fmt.Errorf("%w: unknown kind %d", ErrJSON, v.Kind)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(&objectJSON{Type: o.Type, Properties: o.Properties, Children: o.Children})
}

func formatFloatJSON(f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: cannot represent %v", ErrJSON, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !isFloatText(s) {
		s += ".0"
	}
	return []byte(s), nil
}

func isFloatText(s string) bool {
	return strings.ContainsAny(s, ".eE")
}

func (v *Value) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var a any
	if err := dec.Decode(&a); err != nil {
		return err
	}
	res, err := FromJSONAny(a)
	if err != nil {
		return err
	}
	*v = *res
	return nil
}

func (o *Object) UnmarshalJSON(d []byte) error {
	v := &Value{}
	if err := v.UnmarshalJSON(d); err != nil {
		return err
	}
	obj, err := v.AsObject()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrJSON, err)
	}
	*o = *obj
	return nil
}

// ToJSON returns the JSON mapping of v.
func ToJSON(v *Value) ([]byte, error) {
	return json.Marshal(v)
}

func FromJSON(d []byte) (*Value, error) {
	v := &Value{}
	if err := v.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return v, nil
}

// FromJSONAny converts a value produced by a json.Decoder with UseNumber into
// a Value. JSON objects must have the object mapping shape.
func FromJSONAny(a any) (*Value, error) {
	switch x := a.(type) {
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return fromNumber(string(x))
	case float64:
		return FromFloat(x), nil
	case []any:
		res := make([]*Value, len(x))
		for i, e := range x {
			v, err := FromJSONAny(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return FromList(res), nil
	case map[string]any:
		obj, err := objectFromJSONAny(x)
		if err != nil {
			return nil, err
		}
		return FromObject(obj), nil
	case nil:
		return nil, fmt.Errorf("%w: null has no QMLON value", ErrJSON)
	default:
		return nil, fmt.Errorf("%w: unexpected %T", ErrJSON, a)
	}
}

func fromNumber(s string) (*Value, error) {
	if !isFloatText(s) {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrJSON, err)
		}
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	return FromFloat(f), nil
}

func objectFromJSONAny(m map[string]any) (*Object, error) {
	obj := NewObject("")
	for k, a := range m {
		switch k {
		case "type":
			s, ok := a.(string)
			if !ok {
				return nil, fmt.Errorf("%w: object type must be a string, got %T", ErrJSON, a)
			}
			obj.Type = s
		case "properties":
			if a == nil {
				continue
			}
			props, ok := a.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: object properties must be an object, got %T", ErrJSON, a)
			}
			for pk, pa := range props {
				pv, err := FromJSONAny(pa)
				if err != nil {
					return nil, err
				}
				obj.Set(pk, pv)
			}
		case "children":
			if a == nil {
				continue
			}
			kids, ok := a.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: object children must be a list, got %T", ErrJSON, a)
			}
			for _, ka := range kids {
				km, ok := ka.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("%w: child must be an object, got %T", ErrJSON, ka)
				}
				c, err := objectFromJSONAny(km)
				if err != nil {
					return nil, err
				}
				obj.AddChild(c)
			}
		default:
			return nil, fmt.Errorf("%w: unknown object field %q", ErrJSON, k)
		}
	}
	return obj, nil
}
