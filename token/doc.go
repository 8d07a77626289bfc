// Package token provides tokenization support for QMLON.
//
// [Tokenize] and [Lex] convert a whole input into a slice of [Token].
// [Tokenizer] produces the same tokens one at a time and is what both are
// built on. Every token carries the [Pos] of its first character.
//
// Whitespace and comments are dropped unless requested with
// [IncludeWhitespace] and [IncludeComments].
package token
