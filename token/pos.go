package token

import "fmt"

// Pos is a location in the input. Offset is in bytes, Line and Col are zero
// based and Col counts runes.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d col %d (offset %d)", p.Line+1, p.Col+1, p.Offset)
}

func (p Pos) Before(o Pos) bool {
	return p.Offset < o.Offset
}
