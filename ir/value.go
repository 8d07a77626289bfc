package ir

type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Obj   *Object
	List  []*Value
}

func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Kind: IntKind, Int: v}
}

func FromFloat(v float64) *Value {
	return &Value{Kind: FloatKind, Float: v}
}

func FromString(v string) *Value {
	return &Value{Kind: StringKind, Str: v}
}

func FromObject(o *Object) *Value {
	return &Value{Kind: ObjectKind, Obj: o}
}

func FromList(vs []*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	return &Value{Kind: ListKind, List: vs}
}

func (v *Value) narrow(k Kind) error {
	if v == nil {
		return ErrNilValue
	}
	if v.Kind != k {
		return &KindError{Want: k, Got: v.Kind}
	}
	return nil
}

func (v *Value) AsBool() (bool, error) {
	if err := v.narrow(BoolKind); err != nil {
		return false, err
	}
	return v.Bool, nil
}

func (v *Value) AsInt() (int64, error) {
	if err := v.narrow(IntKind); err != nil {
		return 0, err
	}
	return v.Int, nil
}

// AsFloat also accepts an Integer, converting it.
func (v *Value) AsFloat() (float64, error) {
	if v != nil && v.Kind == IntKind {
		return float64(v.Int), nil
	}
	if err := v.narrow(FloatKind); err != nil {
		return 0, err
	}
	return v.Float, nil
}

func (v *Value) AsString() (string, error) {
	if err := v.narrow(StringKind); err != nil {
		return "", err
	}
	return v.Str, nil
}

func (v *Value) AsObject() (*Object, error) {
	if err := v.narrow(ObjectKind); err != nil {
		return nil, err
	}
	return v.Obj, nil
}

func (v *Value) AsList() ([]*Value, error) {
	if err := v.narrow(ListKind); err != nil {
		return nil, err
	}
	return v.List, nil
}

func (v *Value) IsObject() bool {
	return v != nil && v.Kind == ObjectKind && v.Obj != nil
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := *v
	switch v.Kind {
	case ObjectKind:
		res.Obj = v.Obj.Clone()
	case ListKind:
		res.List = make([]*Value, len(v.List))
		for i, e := range v.List {
			res.List[i] = e.Clone()
		}
	}
	return &res
}

// Walk calls f on v and then every value below it, depth first, properties
// in sorted key order before children. Walk stops when f returns false.
func (v *Value) Walk(f func(path string, v *Value) bool) bool {
	return walk("$", v, f)
}

func walk(path string, v *Value, f func(string, *Value) bool) bool {
	if !f(path, v) {
		return false
	}
	switch v.Kind {
	case ListKind:
		for i, e := range v.List {
			if !walk(IndexPath(path, i), e, f) {
				return false
			}
		}
	case ObjectKind:
		if v.Obj == nil {
			return true
		}
		for _, k := range v.Obj.Keys() {
			if !walk(FieldPath(path, k), v.Obj.Properties[k], f) {
				return false
			}
		}
		for i, c := range v.Obj.Children {
			if !walk(ChildPath(path, i, c.Type), FromObject(c), f) {
				return false
			}
		}
	}
	return true
}
