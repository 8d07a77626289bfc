package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return "?"
	}
}

// Change is one difference. From is nil for insertions and To for
// deletions.
type Change struct {
	Path string
	Op   Op
	From *ir.Value
	To   *ir.Value
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s %s", c.Op, c.Path, short(c.To))
	case Delete:
		return fmt.Sprintf("%s %s %s", c.Op, c.Path, short(c.From))
	default:
		return fmt.Sprintf("%s %s %s -> %s", c.Op, c.Path, short(c.From), short(c.To))
	}
}

func short(v *ir.Value) string {
	s, err := encode.String(v, encode.EncodeWire(true))
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	const max = 60
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// Format renders changes one per line.
func Format(cs []Change) string {
	b := &strings.Builder{}
	for _, c := range cs {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
