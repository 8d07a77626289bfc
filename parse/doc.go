// Package parse parses QMLON text into ir values.
//
// # Usage
//
//	v, err := parse.Parse([]byte(`Sprite { id: "hero" Animation { id: "walk" } }`))
//	if err != nil {
//	    return err
//	}
//
//	// record where each value and object started
//	pos := parse.NewPositions()
//	v, err = parse.ParseFile("hero.qml.zst", parse.ParsePositions(pos))
//
// A document is exactly one value. Comments may appear between any two
// tokens. Parsing is all or nothing: on failure no tree is returned and the
// error is a *token.SyntaxError or a *parse.Error.
//
// # Related Packages
//
//   - github.com/signadot/qmlon/token - Tokenization
//   - github.com/signadot/qmlon/ir - Document model
//   - github.com/signadot/qmlon/schema - Schema documents and validation
package parse
