package qmlon

import (
	"testing"

	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/ir"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in, pattern string
		want        bool
	}{
		{`1`, `1`, true},
		{`0`, `1`, false},
		{`1`, `1.0`, false},
		{`[1, 2]`, `[1, 2]`, true},
		{`[1, 2]`, `[1]`, false},
		{`[]`, `[]`, true},
		{`A { a: 1 b: 2 }`, `A { a: 1 }`, true},
		{`A { a: 1 b: 2 }`, `{ b: 2 }`, true},
		{`A { a: 1 }`, `B { a: 1 }`, false},
		{`A { a: 1 }`, `A { c: 1 }`, false},
		{`A { X { n: 1 } Y { } X { n: 2 } }`, `A { X { n: 2 } }`, true},
		{`A { X { n: 1 } Y { } X { n: 2 } }`, `A { Y { } X { } }`, true},
		{`A { X { n: 1 } Y { } }`, `A { Y { } X { } }`, false},
		{`A { X { } }`, `A { X { } X { } }`, false},
		{`A { l: [B { x: 1 y: 2 }] }`, `A { l: [{ x: 1 }] }`, true},
	}
	for _, tc := range tests {
		t.Run(tc.in+" ~ "+tc.pattern, func(t *testing.T) {
			got := Match(mustParse(t, tc.in), mustParse(t, tc.pattern))
			if got != tc.want {
				t.Errorf("got %t want %t", got, tc.want)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		pattern, in, want string
	}{
		{`A { a: 1 }`, `A { a: 1 b: 2 }`, `A { a: 1 }`},
		{`{ Y { } }`, `A { k: 1 X { } Y { n: 1 } }`, `A { Y { } }`},
		{`[{ x: 1 }]`, `[{ x: 2 y: 1 } { x: 1 y: 2 }]`, `[{ x: 1 }]`},
		{`"s"`, `[1]`, `[1]`},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			got := Trim(mustParse(t, tc.pattern), mustParse(t, tc.in))
			want := mustParse(t, tc.want)
			if !ir.Equal(got, want) {
				t.Errorf("got %s want %s", encode.MustString(got), encode.MustString(want))
			}
		})
	}
}
