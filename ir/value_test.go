package ir

import (
	"errors"
	"testing"
)

func TestNarrowing(t *testing.T) {
	v := FromString("hero")
	if s, err := v.AsString(); err != nil || s != "hero" {
		t.Fatalf("AsString() = %q, %v", s, err)
	}
	_, err := v.AsInt()
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("AsInt() on string: got %v want ErrWrongKind", err)
	}
	var ke *KindError
	if !errors.As(err, &ke) {
		t.Fatalf("expected *KindError, got %T", err)
	}
	if ke.Want != IntKind || ke.Got != StringKind {
		t.Errorf("KindError = %+v", ke)
	}
	var nilV *Value
	if _, err := nilV.AsBool(); !errors.Is(err, ErrNilValue) {
		t.Errorf("AsBool() on nil: %v", err)
	}
}

func TestAsFloatWidens(t *testing.T) {
	f, err := FromInt(3).AsFloat()
	if err != nil || f != 3 {
		t.Errorf("AsFloat() = %v, %v", f, err)
	}
	if _, err := FromBool(true).AsFloat(); err == nil {
		t.Error("expected error for bool")
	}
}

func TestObjectAccessors(t *testing.T) {
	o := NewObject("Sprite")
	o.Set("id", FromString("a"))
	o.Set("id", FromString("b"))
	o.AddChild(NewObject("Animation")).AddChild(NewObject("Palette")).AddChild(NewObject("Animation"))
	if got := o.Get("id").Str; got != "b" {
		t.Errorf("last write should win, got %q", got)
	}
	if !o.Has("id") || o.Has("name") {
		t.Error("Has mismatch")
	}
	if n := len(o.ChildrenOf("Animation")); n != 2 {
		t.Errorf("ChildrenOf(Animation) = %d, want 2", n)
	}
	var nilO *Object
	if nilO.Get("x") != nil || nilO.Has("x") || nilO.ChildrenOf("x") != nil {
		t.Error("nil object accessors should be empty")
	}
}

func TestCloneIndependent(t *testing.T) {
	o := NewObject("A")
	o.Set("l", FromList([]*Value{FromInt(1)}))
	o.AddChild(NewObject("B"))
	v := FromObject(o)
	c := v.Clone()
	if !Equal(v, c) {
		t.Fatal("clone not equal")
	}
	c.Obj.Properties["l"].List[0].Int = 2
	c.Obj.Children[0].Type = "C"
	if v.Obj.Properties["l"].List[0].Int != 1 || v.Obj.Children[0].Type != "B" {
		t.Error("clone shares structure with original")
	}
}

func TestWalk(t *testing.T) {
	o := NewObject("Sprite")
	o.Set("id", FromString("hero"))
	o.Set("tags", FromList([]*Value{FromString("x")}))
	o.AddChild(NewObject("Animation"))
	var paths []string
	FromObject(o).Walk(func(p string, _ *Value) bool {
		paths = append(paths, p)
		return true
	})
	want := []string{"$", "$.id", "$.tags", "$.tags[0]", "$/Animation[0]"}
	if len(paths) != len(want) {
		t.Fatalf("got %v want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d: got %q want %q", i, paths[i], want[i])
		}
	}
}
