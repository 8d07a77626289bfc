package schema

import "github.com/signadot/qmlon/parse"

type buildOpts struct {
	positions *parse.Positions
}

type Option func(*buildOpts)

// WithPositions lets schema errors report source positions of the schema
// document parsed with p.
func WithPositions(p *parse.Positions) Option {
	return func(o *buildOpts) { o.positions = p }
}
