package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/qmlon/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	wire          bool

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes v followed by a newline, or nothing at all if v cannot be
// represented.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(v, buf, es); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func encode(v *ir.Value, buf *bytes.Buffer, es *EncState) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrEncoding)
	}
	switch v.Kind {
	case ir.BoolKind:
		buf.WriteString(applyColor(es, v.Kind, ValueColor, strconv.FormatBool(v.Bool)))
	case ir.IntKind:
		buf.WriteString(applyColor(es, v.Kind, ValueColor, strconv.FormatInt(v.Int, 10)))
	case ir.FloatKind:
		s, err := FormatFloat(v.Float)
		if err != nil {
			return err
		}
		buf.WriteString(applyColor(es, v.Kind, ValueColor, s))
	case ir.StringKind:
		if !RawStringOK(v.Str) {
			return fmt.Errorf("%w: string %q has an unescaped quote or trailing backslash", ErrEncoding, v.Str)
		}
		buf.WriteString(applyColor(es, v.Kind, ValueColor, `"`+v.Str+`"`))
	case ir.ListKind:
		return encodeList(v.List, buf, es)
	case ir.ObjectKind:
		if v.Obj == nil {
			return fmt.Errorf("%w: nil object", ErrEncoding)
		}
		return encodeObject(v.Obj, buf, es)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrEncoding, v.Kind)
	}
	return nil
}

// FormatFloat renders f so that it reads back as a float.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: cannot encode %v", ErrEncoding, f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

// RawStringOK reports whether s can be written between quotes as is: every
// '"' must be escaped and there is no dangling '\'.
func RawStringOK(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i == len(s)-1 {
				return false
			}
			i++
		case '"':
			return false
		}
	}
	return true
}

// IsIdent reports whether s can be written as a type or property name.
func IsIdent(s string) bool {
	if s == "" || s == "true" || s == "false" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func encodeList(vs []*ir.Value, buf *bytes.Buffer, es *EncState) error {
	buf.WriteString(applyColor(es, ir.ListKind, SepColor, "["))
	multi := !es.wire && multiline(vs)
	if multi {
		es.depth++
	}
	for i, e := range vs {
		if multi {
			writeNL(buf, es)
		}
		if err := encode(e, buf, es); err != nil {
			return err
		}
		if i == len(vs)-1 {
			break
		}
		sep := ", "
		if es.wire || multi {
			sep = ","
		}
		buf.WriteString(applyColor(es, ir.ListKind, SepColor, sep))
	}
	if multi {
		es.depth--
		writeNL(buf, es)
	}
	buf.WriteString(applyColor(es, ir.ListKind, SepColor, "]"))
	return nil
}

// multiline is true for lists holding objects or multiline lists.
func multiline(vs []*ir.Value) bool {
	for _, e := range vs {
		if e == nil {
			continue
		}
		switch e.Kind {
		case ir.ObjectKind:
			return true
		case ir.ListKind:
			if multiline(e.List) {
				return true
			}
		}
	}
	return false
}

func encodeObject(o *ir.Object, buf *bytes.Buffer, es *EncState) error {
	if o.Type != "" {
		if !IsIdent(o.Type) {
			return fmt.Errorf("%w: invalid type name %q", ErrEncoding, o.Type)
		}
		buf.WriteString(applyColor(es, ir.ObjectKind, TypeColor, o.Type))
		if !es.wire {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString(applyColor(es, ir.ObjectKind, SepColor, "{"))
	keys := o.Keys()
	if len(keys) == 0 && len(o.Children) == 0 {
		buf.WriteString(applyColor(es, ir.ObjectKind, SepColor, "}"))
		return nil
	}
	es.depth++
	n := 0
	member := func() {
		if es.wire {
			if n > 0 {
				buf.WriteString(applyColor(es, ir.ObjectKind, SepColor, ","))
			}
		} else {
			writeNL(buf, es)
		}
		n++
	}
	for _, k := range keys {
		if !IsIdent(k) {
			return fmt.Errorf("%w: invalid property name %q", ErrEncoding, k)
		}
		member()
		buf.WriteString(applyColor(es, ir.ObjectKind, FieldColor, k))
		sep := ": "
		if es.wire {
			sep = ":"
		}
		buf.WriteString(applyColor(es, ir.ObjectKind, SepColor, sep))
		if err := encode(o.Properties[k], buf, es); err != nil {
			return err
		}
	}
	for _, c := range o.Children {
		if c == nil {
			return fmt.Errorf("%w: nil child of %q", ErrEncoding, o.Type)
		}
		member()
		if err := encodeObject(c, buf, es); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(buf, es)
	buf.WriteString(applyColor(es, ir.ObjectKind, SepColor, "}"))
	return nil
}

func writeNL(buf *bytes.Buffer, es *EncState) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func applyColor(es *EncState, k ir.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}
