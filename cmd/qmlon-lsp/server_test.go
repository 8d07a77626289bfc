package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/qmlon/schema"
	"go.lsp.dev/protocol"
)

const testSchema = `Schema {
  root: "Sprite"
  Sprite {
    Property { name: "id" type: String { min: 1 } }
    Child { type: "Animation" min: 1 }
  }
  Animation { Property { name: "frames" optional: true type: Integer {} } }
}`

func testServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer()
	sch, err := schema.Parse([]byte(testSchema))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.schemas.Register(sch); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDiagnostics(t *testing.T) {
	s := testServer(t)
	tests := []struct {
		name     string
		content  string
		want     []protocol.Range
		severity protocol.DiagnosticSeverity
	}{
		{"valid", "Sprite {\n  id: \"a\"\n  Animation {}\n}\n", nil, 0},
		{
			"syntax",
			"Sprite {\n  id: \"a\n}\n",
			[]protocol.Range{{Start: protocol.Position{Line: 1, Character: 6}, End: protocol.Position{Line: 1, Character: 7}}},
			protocol.DiagnosticSeverityError,
		},
		{
			"parse",
			"Sprite {\n  id: }\n",
			[]protocol.Range{{Start: protocol.Position{Line: 1, Character: 6}, End: protocol.Position{Line: 1, Character: 7}}},
			protocol.DiagnosticSeverityError,
		},
		{
			"schema",
			"Sprite {\n  id: \"\"\n  Animation {}\n}\n",
			[]protocol.Range{{Start: protocol.Position{Line: 1, Character: 6}, End: protocol.Position{Line: 1, Character: 8}}},
			protocol.DiagnosticSeverityWarning,
		},
		{"no schema", "Other { x: 1 }", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := analyze("file:///t.qmlon", tc.content, 1)
			ds := s.validateDocument(doc)
			var got []protocol.Range
			for _, d := range ds {
				got = append(got, d.Range)
				if d.Severity != tc.severity {
					t.Errorf("severity %v want %v: %s", d.Severity, tc.severity, d.Message)
				}
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ranges (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSemanticTokens(t *testing.T) {
	doc := analyze("file:///t.qmlon", "A {\n  x: 1 // c\n}", 1)
	got := encodeSemTokens(classify(doc.tokens))
	want := []uint32{
		0, 0, 1, semKeyword, modDefinition, // A
		0, 2, 1, semOperator, 0, // {
		1, 2, 1, semProperty, 0, // x
		0, 1, 1, semOperator, 0, // :
		0, 2, 1, semNumber, 0, // 1
		0, 2, 4, semComment, 0, // // c
		1, 0, 1, semOperator, 0, // }
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSplitMultilineComment(t *testing.T) {
	doc := analyze("file:///t.qmlon", "/* a\nbc */ 1", 1)
	toks := classify(doc.tokens)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens", len(toks))
	}
	if toks[0].line != 0 || toks[0].length != 4 || toks[1].line != 1 || toks[1].char != 0 || toks[1].length != 5 {
		t.Errorf("comment pieces %+v %+v", toks[0], toks[1])
	}
}

func TestHover(t *testing.T) {
	s := testServer(t)
	doc := analyze("file:///t.qmlon", "Sprite {\n  id: \"hero\"\n  Animation { frames: 3 }\n}\n", 1)
	text := s.hoverText(doc, 1, 6)
	for _, want := range []string{"**Kind:** String", "`$.id`", "`\"hero\"`", "`id`: `String { min: 1 }`"} {
		if !strings.Contains(text, want) {
			t.Errorf("hover on id missing %q:\n%s", want, text)
		}
	}
	text = s.hoverText(doc, 2, 2)
	for _, want := range []string{"**Type:** `Animation`", "`$/Animation[0]`", "property `frames` (optional)"} {
		if !strings.Contains(text, want) {
			t.Errorf("hover on Animation missing %q:\n%s", want, text)
		}
	}
	if got := s.hoverText(doc, 9, 0); got != "" {
		t.Errorf("hover past end: %q", got)
	}
}

func TestCompletion(t *testing.T) {
	s := testServer(t)
	doc := analyze("file:///t.qmlon", "Sprite {\n  \n  Animation {  }\n}\n", 1)
	labels := func(items []protocol.CompletionItem) []string {
		var res []string
		for _, it := range items {
			res = append(res, it.Label)
		}
		return res
	}
	got := labels(s.completions(doc, 1, 2))
	if diff := cmp.Diff([]string{"true", "false", "id", "Animation"}, got); diff != "" {
		t.Errorf("in Sprite (-want +got):\n%s", diff)
	}
	got = labels(s.completions(doc, 2, 14))
	if diff := cmp.Diff([]string{"true", "false", "frames"}, got); diff != "" {
		t.Errorf("in Animation (-want +got):\n%s", diff)
	}
	got = labels(s.completions(doc, 0, 0))
	if diff := cmp.Diff([]string{"true", "false", "Sprite"}, got); diff != "" {
		t.Errorf("outside (-want +got):\n%s", diff)
	}
}

func TestFormatEdits(t *testing.T) {
	doc := analyze("file:///t.qmlon", "A { z: 1 a: 2 }", 1)
	edits := formatEdits(doc, 2)
	if len(edits) != 1 {
		t.Fatalf("got %d edits", len(edits))
	}
	if edits[0].NewText != "A {\n  a: 2\n  z: 1\n}\n" {
		t.Errorf("formatted %q", edits[0].NewText)
	}
	if edits[0].Range.End.Line != 1 {
		t.Errorf("range %+v", edits[0].Range)
	}
	if edits := formatEdits(analyze("u", "A {}\n", 1), 2); edits == nil || len(edits) != 0 {
		t.Errorf("canonical input should need no edits, got %v", edits)
	}
	if edits := formatEdits(analyze("u", "A { } // keep", 1), 2); edits != nil {
		t.Errorf("commented input should not be formatted, got %v", edits)
	}
}

func TestSchemaPaths(t *testing.T) {
	got := schemaPaths(map[string]interface{}{"schemas": []interface{}{"a.qmlon", 3, "b.qmlon"}})
	if diff := cmp.Diff([]string{"a.qmlon", "b.qmlon"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if schemaPaths(nil) != nil {
		t.Error("nil options")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lsp.qmlon")
	src := `Server {
  logLevel: "debug"
  schemas: ["a.schema.qmlon", "/abs/b.schema.qmlon"]
  Schema { path: "c.schema.qmlon" }
}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &serverConfig{
		LogLevel: "debug",
		Schemas: []string{
			filepath.Join(dir, "a.schema.qmlon"),
			"/abs/b.schema.qmlon",
			filepath.Join(dir, "c.schema.qmlon"),
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if err := os.WriteFile(path, []byte(`Server { port: 1 }`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("unknown property accepted")
	}
}
