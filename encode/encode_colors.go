package encode

import (
	"strings"

	"github.com/signadot/qmlon/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TypeColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = ir.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = ir.FloatKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = ir.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = ir.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = ir.ObjectKind
	able.Attr = TypeColor
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
