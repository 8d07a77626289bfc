package ir

import "fmt"

type Kind int

const (
	BoolKind Kind = iota
	IntKind
	FloatKind
	StringKind
	ObjectKind
	ListKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		BoolKind:   "Boolean",
		IntKind:    "Integer",
		FloatKind:  "Float",
		StringKind: "String",
		ObjectKind: "Object",
		ListKind:   "List",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Boolean": BoolKind,
		"Integer": IntKind,
		"Float":   FloatKind,
		"String":  StringKind,
		"Object":  ObjectKind,
		"List":    ListKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{BoolKind, IntKind, FloatKind, StringKind, ObjectKind, ListKind}
}
