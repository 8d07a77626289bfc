package qmlon

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/signadot/qmlon/schema"
	"github.com/signadot/qmlon/token"
)

func TestLex(t *testing.T) {
	src := []byte("a: 1 // one\n")
	tests := []struct {
		comments, space bool
		want            []token.TokenType
	}{
		{false, false, []token.TokenType{token.TIdent, token.TColon, token.TInteger}},
		{true, false, []token.TokenType{token.TIdent, token.TColon, token.TInteger, token.TLineComment}},
		{false, true, []token.TokenType{token.TIdent, token.TColon, token.TSpace, token.TInteger, token.TSpace, token.TSpace}},
	}
	for _, tc := range tests {
		toks, err := Lex(src, tc.comments, tc.space)
		if err != nil {
			t.Fatal(err)
		}
		var got []token.TokenType
		for _, tok := range toks {
			got = append(got, tok.Type)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("comments=%t space=%t (-want +got):\n%s", tc.comments, tc.space, diff)
		}
	}
}

func TestLoadSchemaAndCheck(t *testing.T) {
	s, err := LoadSchema("testdata/sprite.schema.qmlon")
	if err != nil {
		t.Fatal(err)
	}
	if s.Root != "Sprite" {
		t.Errorf("root %q", s.Root)
	}
	good, err := ParseFile("testdata/sprite.qmlon")
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(s, good); err != nil {
		t.Errorf("sprite.qmlon: %v", err)
	}
	bad, err := ParseFile("testdata/bad.qmlon")
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(s, bad); !errors.Is(err, schema.ErrInvalid) {
		t.Errorf("bad.qmlon: got %v want ErrInvalid", err)
	}
}

func TestLoadCompressedSchema(t *testing.T) {
	src, err := os.ReadFile("testdata/sprite.schema.qmlon")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(src); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "sprite.schema.qmlon.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSchema(path)
	if err != nil {
		t.Fatal(err)
	}
	good, err := ParseFile("testdata/sprite.qmlon")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Validate(good) {
		t.Error("sprite.qmlon rejected by the compressed schema")
	}
}

func TestLoadSchemaErrors(t *testing.T) {
	if _, err := LoadSchema("testdata/missing.qmlon"); err == nil {
		t.Error("expected error for missing file")
	}
	_, err := LoadSchema("testdata/bad.schema.qmlon")
	if !errors.Is(err, schema.ErrMissing) {
		t.Errorf("property without name: got %v want ErrMissing", err)
	}
	var se *schema.Error
	if !errors.As(err, &se) || se.Pos == nil || se.Pos.Line != 2 {
		t.Errorf("want positioned schema error on line 2, got %v", err)
	}
}

func TestDiffAfterPatch(t *testing.T) {
	doc, err := ParseFile("testdata/sprite.qmlon")
	if err != nil {
		t.Fatal(err)
	}
	patched, err := Patch(doc, []byte(`[{"op": "replace", "path": "/properties/id", "value": "villain"}]`))
	if err != nil {
		t.Fatal(err)
	}
	cs := Diff(doc, patched)
	if len(cs) != 1 || cs[0].String() != `~ $.id "hero" -> "villain"` {
		t.Errorf("got %v", cs)
	}
}
