package token

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Source reads runes from an io.Reader and keeps track of the position of
// the next rune.
type Source struct {
	r   *bufio.Reader
	pos Pos

	// lookahead
	peeked bool
	pr     rune
	psz    int
	perr   error
}

func NewSource(r io.Reader) *Source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Source{r: br}
}

// Pos returns the position of the next rune, which is the end of input
// once Peek has returned io.EOF.
func (s *Source) Pos() Pos {
	return s.pos
}

// Peek returns the next rune without consuming it.
func (s *Source) Peek() (rune, error) {
	if !s.peeked {
		s.pr, s.psz, s.perr = s.r.ReadRune()
		if s.perr == nil && s.pr == utf8.RuneError && s.psz == 1 {
			s.perr = NewSyntaxError(ErrBadUTF8, s.pos)
		}
		s.peeked = true
	}
	return s.pr, s.perr
}

// Next consumes and returns the next rune.
func (s *Source) Next() (rune, error) {
	r, err := s.Peek()
	if err != nil {
		return r, err
	}
	s.peeked = false
	s.advance(r, s.psz)
	return r, nil
}

func (s *Source) advance(r rune, sz int) {
	if sz == 0 {
		sz = utf8.RuneLen(r)
	}
	s.pos.Offset += sz
	if r == '\n' {
		s.pos.Line++
		s.pos.Col = 0
		return
	}
	s.pos.Col++
}
