package ir

import (
	"errors"
	"testing"
)

func pathDoc() *Value {
	anim := NewObject("Animation").Set("name", FromString("walk"))
	o := NewObject("Sprite").
		Set("id", FromString("hero")).
		Set("frames", FromList([]*Value{FromInt(1), FromList([]*Value{FromInt(7)})})).
		AddChild(NewObject("Palette")).
		AddChild(anim).
		AddChild(NewObject(""))
	return FromObject(o)
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want *Value
	}{
		{"$", doc},
		{"$.id", FromString("hero")},
		{"$.frames[0]", FromInt(1)},
		{"$.frames[1][0]", FromInt(7)},
		{"$/Animation[1].name", FromString("walk")},
		{"$/[2]", FromObject(NewObject(""))},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := doc.GetPath(tc.path)
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tc.want) {
				t.Errorf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestGetPathErrors(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want error
	}{
		{"id", ErrPath},
		{"$.nope", ErrPath},
		{"$.frames[9]", ErrPath},
		{"$.frames[x]", ErrPath},
		{"$.frames[0", ErrPath},
		{"$/Animation[0]", ErrPath},
		{"$/Animation", ErrPath},
		{"$.id[0]", ErrWrongKind},
		{"$.id.x", ErrWrongKind},
		{"$.", ErrPath},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			_, err := doc.GetPath(tc.path)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v want %v", err, tc.want)
			}
		})
	}
}

func TestGetPathWalkAgree(t *testing.T) {
	doc := pathDoc()
	doc.Walk(func(p string, v *Value) bool {
		got, err := doc.GetPath(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			return true
		}
		if !Equal(got, v) {
			t.Errorf("%s: GetPath disagrees with Walk", p)
		}
		return true
	})
}
