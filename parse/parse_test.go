package parse

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/token"
)

const spriteDoc = `Sprite {
	id: "hero"
	// one animation
	Animation {
		id: "walk"
		Frame { position { x: 0 y: 0 } size { width: 16 height: 16 } }
	}
}`

func TestParseOK(t *testing.T) {
	tests := []string{
		`true`,
		`false`,
		`22`,
		`-7`,
		`1.5`,
		`-.5`,
		`"hello"`,
		`"say \"hi\""`,
		`[]`,
		`[1 2 3]`,
		`[1, 2, 3]`,
		`[[], [1], {}]`,
		`{}`,
		`A {}`,
		`A { x: 1, y: 2 }`,
		`A { x: 1 y: [1 /* c */ 2] B { } { } }`,
		spriteDoc,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseString(in); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Value
	}{
		{`42`, ir.FromInt(42)},
		{`4.0`, ir.FromFloat(4)},
		{`true`, ir.FromBool(true)},
		{`"a\nb"`, ir.FromString(`a\nb`)},
		{`[1, "x"]`, ir.FromList([]*ir.Value{ir.FromInt(1), ir.FromString("x")})},
		{`{ a: 1 }`, ir.FromObject(ir.NewObject("").Set("a", ir.FromInt(1)))},
		{`T { a: 1 a: 2 }`, ir.FromObject(ir.NewObject("T").Set("a", ir.FromInt(2)))},
		{`T { C { } { } }`, ir.FromObject(ir.NewObject("T").AddChild(ir.NewObject("C")).AddChild(ir.NewObject("")))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("got %+v want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSprite(t *testing.T) {
	v, err := ParseString(spriteDoc)
	if err != nil {
		t.Fatal(err)
	}
	sprite, err := v.AsObject()
	if err != nil {
		t.Fatal(err)
	}
	if sprite.Type != "Sprite" {
		t.Errorf("type = %q", sprite.Type)
	}
	if id, _ := sprite.Get("id").AsString(); id != "hero" {
		t.Errorf("id = %q", id)
	}
	if len(sprite.Children) != 1 || sprite.Children[0].Type != "Animation" {
		t.Fatalf("children = %+v", sprite.Children)
	}
	frame := sprite.Children[0].Children[0]
	var got []string
	for _, c := range frame.Children {
		got = append(got, c.Type)
	}
	if diff := cmp.Diff([]string{"position", "size"}, got); diff != "" {
		t.Errorf("frame children (-want +got):\n%s", diff)
	}
	if w, _ := frame.Children[1].Get("width").AsInt(); w != 16 {
		t.Errorf("width = %d", w)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		err    error
		offset int
		eof    bool
	}{
		{in: `{ a: }`, err: ErrUnexpected, offset: 5},
		{in: `{ a 1 }`, err: ErrUnexpected, offset: 4},
		{in: `{ a: 1`, err: ErrUnexpected, offset: 6, eof: true},
		{in: `[1, 2`, err: ErrUnexpected, offset: 5, eof: true},
		{in: `[1,]`, err: ErrUnexpected, offset: 3},
		{in: `[,1]`, err: ErrUnexpected, offset: 1},
		{in: `A`, err: ErrUnexpected, offset: 1, eof: true},
		{in: `1 2`, err: ErrTrailing, offset: 2},
		{in: `{ } }`, err: ErrTrailing, offset: 4},
		{in: ``, err: ErrUnexpected, offset: 0, eof: true},
		{in: `:`, err: ErrUnexpected, offset: 0},
		{in: `99999999999999999999`, err: ErrNumberRange, offset: 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseString(tt.in)
			if v != nil {
				t.Errorf("expected no tree, got %+v", v)
			}
			if !errors.Is(err, tt.err) || !errors.Is(err, ErrParse) {
				t.Fatalf("got %v want %v", err, tt.err)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if pe.Pos.Offset != tt.offset {
				t.Errorf("offset = %d want %d", pe.Pos.Offset, tt.offset)
			}
			if (pe.Got == nil) != tt.eof {
				t.Errorf("Got = %v, eof %v", pe.Got, tt.eof)
			}
		})
	}
}

func TestMissingValuePosition(t *testing.T) {
	_, err := ParseString("{\n  a:\n}")
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if pe.Got == nil || pe.Got.Type != token.TRCurl {
		t.Fatalf("expected '}' got %v", pe.Got)
	}
	if pe.Pos.Line != 2 || pe.Pos.Col != 0 {
		t.Errorf("pos = %v", pe.Pos)
	}
}

func TestSyntaxErrorsPassThrough(t *testing.T) {
	_, err := ParseString(`A { s: "abc }`)
	var se *token.SyntaxError
	if !errors.As(err, &se) || !errors.Is(err, token.ErrUnterminated) {
		t.Fatalf("got %v", err)
	}
	if se.Pos.Offset != 7 {
		t.Errorf("offset = %d", se.Pos.Offset)
	}
}

func TestStrictKeys(t *testing.T) {
	in := `T { a: 1 a: 2 }`
	if _, err := ParseString(in); err != nil {
		t.Fatal(err)
	}
	_, err := ParseString(in, StrictKeys())
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("got %v", err)
	}
	var pe *Error
	if errors.As(err, &pe) && pe.Pos.Offset != 9 {
		t.Errorf("offset = %d", pe.Pos.Offset)
	}
}

func TestPositions(t *testing.T) {
	pos := NewPositions()
	v, err := ParseString("A {\n  x: [1]\n  B { }\n}", ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := pos.Value(v); !ok || p.Offset != 0 {
		t.Errorf("root pos = %v %v", p, ok)
	}
	x := v.Obj.Get("x")
	if p, _ := pos.Value(x); p.Line != 1 || p.Col != 5 {
		t.Errorf("x pos = %v", p)
	}
	if p, _ := pos.Value(x.List[0]); p.Col != 6 {
		t.Errorf("x[0] pos = %v", p)
	}
	if p, ok := pos.Object(v.Obj.Children[0]); !ok || p.Line != 2 || p.Col != 2 {
		t.Errorf("B pos = %v %v", p, ok)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "s.qml")
	if err := os.WriteFile(plain, []byte(spriteDoc), 0644); err != nil {
		t.Fatal(err)
	}

	gzBuf := &bytes.Buffer{}
	gw := gzip.NewWriter(gzBuf)
	gw.Write([]byte(spriteDoc))
	gw.Close()
	gzPath := filepath.Join(dir, "s.qml.gz")
	if err := os.WriteFile(gzPath, gzBuf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	zPath := filepath.Join(dir, "s.qml.zst")
	if err := os.WriteFile(zPath, enc.EncodeAll([]byte(spriteDoc), nil), 0644); err != nil {
		t.Fatal(err)
	}
	enc.Close()

	want, err := ParseString(spriteDoc)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{plain, gzPath, zPath} {
		got, err := ParseFile(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if !ir.Equal(got, want) {
			t.Errorf("%s: tree differs", p)
		}
	}
	if _, err := ParseFile(filepath.Join(dir, "missing.qml")); err == nil {
		t.Error("expected error for missing file")
	}
}
