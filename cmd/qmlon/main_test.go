package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/parse"
	"github.com/signadot/qmlon/schema"
	"github.com/signadot/qmlon/token"
)

func mustParse(t *testing.T, s string) *ir.Value {
	t.Helper()
	v, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestLexReader(t *testing.T) {
	cfg := &LexConfig{MainConfig: &MainConfig{}, Comments: true}
	buf := bytes.NewBuffer(nil)
	if err := lexReader(cfg, buf, strings.NewReader("A { x: 1.5 } // end"), nil); err != nil {
		t.Fatal(err)
	}
	want := `0:0 TIdent: 'A'
0:2 TLCurl: '{'
0:4 TIdent: 'x'
0:5 TColon: ':'
0:7 TFloat: '1.5'
0:11 TRCurl: '}'
0:13 TLineComment: '// end'
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := lexReader(cfg, buf, strings.NewReader(`"open`), nil); err == nil {
		t.Error("expected error for unterminated string")
	}
}

func TestDumpTokenColored(t *testing.T) {
	tok := token.Token{Type: token.TString, Text: `"100%"`}
	got := dumpToken(&tok, encode.NewColors())
	if !strings.Contains(got, `"100%"`) {
		t.Errorf("colored dump lost text: %q", got)
	}
}

func TestWriteDoc(t *testing.T) {
	v := mustParse(t, `A { n: 1 f: 2.0 }`)
	tests := []struct {
		name string
		cfg  MainConfig
		want string
	}{
		{"canonical", MainConfig{}, "A {\n  f: 2.0\n  n: 1\n}\n"},
		{"wire", MainConfig{WireOut: true}, "A{f:2.0,n:1}\n"},
		{"json", MainConfig{J: true, WireOut: true}, `{"type":"A","properties":{"f":2.0,"n":1}}` + "\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := tc.cfg.writeDoc(buf, v); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	buf := bytes.NewBuffer(nil)
	cfg := &MainConfig{Y: true}
	if err := cfg.writeDoc(buf, v); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "type: A") {
		t.Errorf("yaml output %q", buf.String())
	}
}

func TestCheckOne(t *testing.T) {
	s, err := schema.Parse([]byte(`Schema { root: "A" A { Property { name: "n" type: Integer { min: 1 } } } }`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := &CheckConfig{MainConfig: &MainConfig{}}
	buf := bytes.NewBuffer(nil)
	if !checkOne(cfg, buf, s, "good", mustParse(t, `A { n: 2 }`), nil) {
		t.Error("good rejected")
	}
	if checkOne(cfg, buf, s, "bad", mustParse(t, `A { n: 0 }`), nil) {
		t.Error("bad accepted")
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != "good: ok" || !strings.HasPrefix(lines[1], "bad: ") {
		t.Errorf("output %q", buf.String())
	}
	buf.Reset()
	cfg.Quiet = true
	if checkOne(cfg, buf, s, "bad", mustParse(t, `A { n: 0 }`), nil) || buf.Len() != 0 {
		t.Error("quiet check should fail silently")
	}
}

func TestDiffInputs(t *testing.T) {
	a := mustParse(t, `A { x: 1 }`)
	b := mustParse(t, `A { x: 2 }`)
	buf := bytes.NewBuffer(nil)
	differs, err := diffInputs(&DiffConfig{MainConfig: &MainConfig{}}, buf, a, b)
	if err != nil || !differs {
		t.Fatalf("differs=%t err=%v", differs, err)
	}
	if got := buf.String(); got != "~ $.x 1 -> 2\n" {
		t.Errorf("got %q", got)
	}
	buf.Reset()
	differs, err = diffInputs(&DiffConfig{MainConfig: &MainConfig{}, Text: true}, buf, a, a)
	if err != nil || differs || buf.Len() != 0 {
		t.Errorf("equal text diff: differs=%t err=%v out=%q", differs, err, buf.String())
	}
}

func TestPatchFunc(t *testing.T) {
	doc := mustParse(t, `A { x: 1 }`)
	want := mustParse(t, `A { x: 2 }`)
	for _, p := range []string{
		`[{"op": "replace", "path": "/properties/x", "value": 2}]`,
		`[{ op: "replace" path: "/properties/x" value: 2 }]`,
	} {
		got, err := patchFunc([]byte(p))(doc)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if !ir.Equal(got, want) {
			t.Errorf("%s: got %s", p, encode.MustString(got))
		}
	}
}
