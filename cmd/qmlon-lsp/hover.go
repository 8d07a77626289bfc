package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/schema"
	"github.com/signadot/qmlon/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value == nil {
		return nil, nil
	}
	text := s.hoverText(doc, int(params.Position.Line), int(params.Position.Character))
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// located is a value of the document with where it starts. owner and prop
// are set for property values.
type located struct {
	path  string
	pos   token.Pos
	v     *ir.Value
	owner *ir.Object
	prop  string
}

func collect(doc *document) []located {
	var res []located
	var visit func(path string, v *ir.Value, owner *ir.Object, prop string)
	visit = func(path string, v *ir.Value, owner *ir.Object, prop string) {
		if pos, ok := valuePos(doc, v); ok {
			res = append(res, located{path: path, pos: pos, v: v, owner: owner, prop: prop})
		}
		switch v.Kind {
		case ir.ListKind:
			for i, e := range v.List {
				visit(ir.IndexPath(path, i), e, nil, "")
			}
		case ir.ObjectKind:
			for _, k := range v.Obj.Keys() {
				visit(ir.FieldPath(path, k), v.Obj.Properties[k], v.Obj, k)
			}
			for i, c := range v.Obj.Children {
				visit(ir.ChildPath(path, i, c.Type), ir.FromObject(c), nil, "")
			}
		}
	}
	visit("$", doc.value, nil, "")
	return res
}

// findAt returns the value starting closest to the cursor on its line.
func findAt(doc *document, line, col int) *located {
	var best *located
	all := collect(doc)
	for i := range all {
		l := &all[i]
		if l.pos.Line != line {
			continue
		}
		if best == nil || abs(l.pos.Col-col) < abs(best.pos.Col-col) {
			best = l
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (s *Server) hoverText(doc *document, line, col int) string {
	l := findAt(doc, line, col)
	if l == nil {
		return ""
	}
	sch := s.schemas.Lookup(doc.rootType())
	parts := []string{
		fmt.Sprintf("**Kind:** %s", l.v.Kind),
		fmt.Sprintf("**Path:** `%s`", l.path),
	}
	switch l.v.Kind {
	case ir.ObjectKind:
		o := l.v.Obj
		if o.Type != "" {
			parts = append(parts, fmt.Sprintf("**Type:** `%s`", o.Type))
		}
		parts = append(parts, fmt.Sprintf("**Contents:** %d properties, %d children", len(o.Properties), len(o.Children)))
		if d := sch.Decl(o.Type); d != nil {
			parts = append(parts, "**Schema:**\n"+describeDecl(d))
		}
	case ir.ListKind:
		parts = append(parts, fmt.Sprintf("**Value:** list with %d elements", len(l.v.List)))
	default:
		val, err := encode.String(l.v)
		if err != nil {
			val = fmt.Sprint(l.v.Str)
		}
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	}
	if l.owner != nil {
		if d := sch.Decl(l.owner.Type); d != nil {
			if p := d.Property(l.prop); p != nil {
				parts = append(parts, "**Schema:** "+describeProperty(p))
			}
		}
	}
	return strings.Join(parts, "\n\n")
}

func describeProperty(p *schema.Property) string {
	res := fmt.Sprintf("`%s`", p.Name)
	if p.Optional {
		res += " (optional)"
	}
	if len(p.Types) != 0 {
		res += ": `" + schema.Describe(p.Types) + "`"
	}
	return res
}

func describeDecl(d *schema.TypeDecl) string {
	var b strings.Builder
	if d.Interface {
		b.WriteString("interface\n")
	}
	for _, p := range d.Properties {
		b.WriteString("- property " + describeProperty(p) + "\n")
	}
	for _, c := range d.Children {
		fmt.Fprintf(&b, "- child `%s` %s\n", c.Type, describeCount(c))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func describeCount(c *schema.Child) string {
	switch {
	case c.Min == nil && c.Max == nil:
		return "any number"
	case c.Max == nil:
		return fmt.Sprintf("at least %d", *c.Min)
	case c.Min == nil:
		return fmt.Sprintf("at most %d", *c.Max)
	default:
		return fmt.Sprintf("%d to %d", *c.Min, *c.Max)
	}
}
