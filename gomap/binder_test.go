package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/parse"
)

type Position struct{ X, Y int }
type Size struct{ Width, Height int }

type Frame struct {
	Position Position
	Size     Size
	Hotspot  Position
}

type Animation struct {
	ID     string
	Frames []Frame
}

type Sprite struct {
	ID         string
	Animations map[string]Animation
}

type SpriteSheet struct {
	Image   string
	Sprites map[string]Sprite
	Other   []string
}

func animBinder() *Binder[Animation] {
	pos := NewBinder[Position]().
		Prop("x", Int(func(p *Position) *int { return &p.X })).
		Prop("y", Int(func(p *Position) *int { return &p.Y }))
	size := NewBinder[Size]().
		Prop("width", Int(func(s *Size) *int { return &s.Width })).
		Prop("height", Int(func(s *Size) *int { return &s.Height }))
	framePos := func(f *Frame) *Position { return &f.Position }
	frameHot := func(f *Frame) *Position { return &f.Hotspot }
	frameSize := func(f *Frame) *Size { return &f.Size }
	frame := NewBinder[Frame]().
		Prop("position", Nested(pos, framePos)).
		Prop("hotspot", Nested(pos, frameHot)).
		Prop("size", Nested(size, frameSize)).
		Child("position", ChildInto(pos, framePos)).
		Child("hotspot", ChildInto(pos, frameHot)).
		Child("size", ChildInto(size, frameSize))
	return NewBinder[Animation]().
		Prop("id", String(func(a *Animation) *string { return &a.ID })).
		Child("Frame", AddChild(frame, func(a *Animation, f Frame) { a.Frames = append(a.Frames, f) })).
		Child("Frames", func(a *Animation, o *ir.Object) error {
			count, dx, dy := int64(1), int64(0), int64(0)
			if o.Has("count") {
				var err error
				if count, err = o.Get("count").AsInt(); err != nil {
					return err
				}
			}
			for _, do := range o.ChildrenOf("delta") {
				if do.Has("x") {
					dx, _ = do.Get("x").AsInt()
				}
				if do.Has("y") {
					dy, _ = do.Get("y").AsInt()
				}
			}
			for i := range count {
				f, err := frame.New(o)
				if err != nil {
					return err
				}
				f.Position.X += int(i * dx)
				f.Position.Y += int(i * dy)
				a.Frames = append(a.Frames, f)
			}
			return nil
		})
}

func sheetBinder() *Binder[SpriteSheet] {
	anim := animBinder()
	sprite := NewBinder[Sprite]().
		Prop("id", String(func(s *Sprite) *string { return &s.ID })).
		Child("Animation", AddChild(anim, func(s *Sprite, a Animation) {
			if s.Animations == nil {
				s.Animations = map[string]Animation{}
			}
			s.Animations[a.ID] = a
		}))
	return NewBinder[SpriteSheet]().
		Prop("image", String(func(s *SpriteSheet) *string { return &s.Image })).
		Child("Sprite", AddChild(sprite, func(sh *SpriteSheet, s Sprite) {
			if sh.Sprites == nil {
				sh.Sprites = map[string]Sprite{}
			}
			sh.Sprites[s.ID] = s
		})).
		Default(func(sh *SpriteSheet, o *ir.Object) error {
			sh.Other = append(sh.Other, o.Type)
			return nil
		})
}

const sheetDoc = `SpriteSheet {
	image: "sheet.png"
	unused: 1
	Sprite {
		id: "hero"
		Animation {
			id: "walk"
			Frames {
				count: 3
				delta { x: 16 }
				position { x: 0 y: 32 }
				size { width: 16 height: 16 }
			}
		}
		Animation {
			id: "stand"
			Frame { position { x: 0 y: 0 } size { width: 16 height: 16 } hotspot { x: 8 y: 15 } }
		}
	}
	Palette { }
}`

func TestBindSpriteSheet(t *testing.T) {
	v, err := parse.ParseString(sheetDoc)
	if err != nil {
		t.Fatal(err)
	}
	var sheet SpriteSheet
	if err := sheetBinder().BindValue(&sheet, v); err != nil {
		t.Fatal(err)
	}
	sz := Size{16, 16}
	want := SpriteSheet{
		Image: "sheet.png",
		Sprites: map[string]Sprite{
			"hero": {
				ID: "hero",
				Animations: map[string]Animation{
					"walk": {ID: "walk", Frames: []Frame{
						{Position: Position{0, 32}, Size: sz},
						{Position: Position{16, 32}, Size: sz},
						{Position: Position{32, 32}, Size: sz},
					}},
					"stand": {ID: "stand", Frames: []Frame{
						{Position: Position{0, 0}, Size: sz, Hotspot: Position{8, 15}},
					}},
				},
			},
		},
		Other: []string{"Palette"},
	}
	if diff := cmp.Diff(want, sheet); diff != "" {
		t.Errorf("sheet (-want +got):\n%s", diff)
	}
}

func TestBindPropertyObjects(t *testing.T) {
	v, err := parse.ParseString(`Animation {
	id: "jump"
	Frame { position: { x: 4 y: 8 } size: { width: 2 height: 3 } }
	Frame { position { x: 5 } hotspot: { y: 1 } }
}`)
	if err != nil {
		t.Fatal(err)
	}
	var a Animation
	if err := animBinder().BindValue(&a, v); err != nil {
		t.Fatal(err)
	}
	want := Animation{ID: "jump", Frames: []Frame{
		{Position: Position{4, 8}, Size: Size{2, 3}},
		{Position: Position{5, 0}, Hotspot: Position{0, 1}},
	}}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBindErrors(t *testing.T) {
	v, err := parse.ParseString(`SpriteSheet { Sprite { id: "a" Animation { id: 3 } } }`)
	if err != nil {
		t.Fatal(err)
	}
	var sheet SpriteSheet
	err = sheetBinder().BindValue(&sheet, v)
	var be *BindError
	if !errors.As(err, &be) {
		t.Fatalf("got %v", err)
	}
	if be.Path != "$/Sprite[0]/Animation[0].id" {
		t.Errorf("path = %q", be.Path)
	}
	if !errors.Is(err, ir.ErrWrongKind) {
		t.Errorf("%v should wrap ErrWrongKind", err)
	}
	if err := sheetBinder().BindValue(&sheet, ir.FromInt(1)); !errors.Is(err, ir.ErrWrongKind) {
		t.Errorf("non object: %v", err)
	}
}

func TestStrict(t *testing.T) {
	type P struct{ X int8 }
	b := NewBinder[P](Strict()).Prop("x", Int(func(p *P) *int8 { return &p.X }))
	tests := []struct {
		doc string
		err error
	}{
		{`P { x: 1 }`, nil},
		{`P { x: 1 y: 2 }`, ErrUnhandled},
		{`P { x: 1 Q { } }`, ErrUnhandled},
		{`P { x: 300 }`, ErrBind},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			v, err := parse.ParseString(tt.doc)
			if err != nil {
				t.Fatal(err)
			}
			_, err = b.New(v.Obj)
			if !errors.Is(err, tt.err) || (tt.err == nil) != (err == nil) {
				t.Errorf("got %v want %v", err, tt.err)
			}
		})
	}
}

func TestListAndScalars(t *testing.T) {
	type Item struct{ Name string }
	type Cfg struct {
		On    bool
		Ratio float32
		Tags  []string
		Items []Item
	}
	item := NewBinder[Item]().Prop("name", String(func(i *Item) *string { return &i.Name }))
	b := NewBinder[Cfg]().
		Prop("on", Bool(func(c *Cfg) *bool { return &c.On })).
		Prop("ratio", Float(func(c *Cfg) *float32 { return &c.Ratio })).
		Prop("tags", List(func(v *ir.Value) (string, error) { return v.AsString() }, func(c *Cfg) *[]string { return &c.Tags })).
		Prop("items", List(Value(item), func(c *Cfg) *[]Item { return &c.Items }))
	v, err := parse.ParseString(`Cfg { on: true ratio: 2 tags: ["a" "b"] items: [{ name: "x" } Item { name: "y" }] }`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := b.New(v.Obj)
	if err != nil {
		t.Fatal(err)
	}
	want := Cfg{On: true, Ratio: 2, Tags: []string{"a", "b"}, Items: []Item{{"x"}, {"y"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	v, _ = parse.ParseString(`Cfg { items: [{ name: "x" } { name: 1 }] }`)
	_, err = b.New(v.Obj)
	var be *BindError
	if !errors.As(err, &be) || be.Path != "$.items[1].name" {
		t.Errorf("got %v", err)
	}
	v, _ = parse.ParseString(`Cfg { ratio: 1000000000000000000000000000000000000000.0 }`)
	if _, err := b.New(v.Obj); !errors.Is(err, ErrBind) {
		t.Errorf("float32 overflow: %v", err)
	}
}
