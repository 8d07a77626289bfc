package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPath = errors.New("path")

// Paths name a location in a tree relative to the root "$":
//
//	$.id               property id
//	$.frames[2]        third element of list property frames
//	$/Animation[0]     first child, whose type is Animation
//	$/[1]              second child, anonymous
func FieldPath(parent, name string) string {
	return parent + "." + name
}

func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

func ChildPath(parent string, i int, typ string) string {
	return parent + "/" + typ + "[" + strconv.Itoa(i) + "]"
}

// GetPath returns the value at path below v. Child steps yield the child
// wrapped as an Object value. The child index counts all children, and the
// type named in the step must match the child's type.
func (v *Value) GetPath(path string) (*Value, error) {
	rest, ok := strings.CutPrefix(path, "$")
	if !ok {
		return nil, fmt.Errorf("%w: %q must start with $", ErrPath, path)
	}
	res := v
	for rest != "" {
		if res == nil {
			return nil, ErrNilValue
		}
		switch rest[0] {
		case '.':
			var name string
			name, rest = cutSegment(rest[1:])
			if name == "" {
				return nil, fmt.Errorf("%w: empty field in %q", ErrPath, path)
			}
			obj, err := res.AsObject()
			if err != nil {
				return nil, err
			}
			pv := obj.Get(name)
			if pv == nil {
				return nil, fmt.Errorf("%w: no property %q at %q", ErrPath, name, path)
			}
			res = pv
		case '[':
			i, tail, err := cutIndex(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: %w in %q", ErrPath, err, path)
			}
			rest = tail
			list, err := res.AsList()
			if err != nil {
				return nil, err
			}
			if i >= len(list) {
				return nil, fmt.Errorf("%w: index %d out of bounds (len %d)", ErrPath, i, len(list))
			}
			res = list[i]
		case '/':
			j := strings.IndexByte(rest, '[')
			if j < 0 {
				return nil, fmt.Errorf("%w: child step without index in %q", ErrPath, path)
			}
			typ := rest[1:j]
			i, tail, err := cutIndex(rest[j:])
			if err != nil {
				return nil, fmt.Errorf("%w: %w in %q", ErrPath, err, path)
			}
			rest = tail
			obj, err := res.AsObject()
			if err != nil {
				return nil, err
			}
			if i >= len(obj.Children) {
				return nil, fmt.Errorf("%w: child %d out of bounds (len %d)", ErrPath, i, len(obj.Children))
			}
			c := obj.Children[i]
			if c.Type != typ {
				return nil, fmt.Errorf("%w: child %d has type %q not %q", ErrPath, i, c.Type, typ)
			}
			res = FromObject(c)
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrPath, rest[0], path)
		}
	}
	return res, nil
}

func cutSegment(s string) (string, string) {
	i := strings.IndexAny(s, ".[/")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func cutIndex(s string) (int, string, error) {
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return 0, "", errors.New("unterminated index")
	}
	i, err := strconv.Atoi(s[1:end])
	if err != nil || i < 0 {
		return 0, "", fmt.Errorf("bad index %q", s[1:end])
	}
	return i, s[end+1:], nil
}
