package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/token"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func lex(cfg *LexConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lex.Parse(cc, args)
	if err != nil {
		return err
	}
	var colors *encode.Colors
	if cfg.useColor(cc.Out) {
		colors = encode.NewColors()
	}
	for i, file := range inputs(args) {
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		r, closer, err := openInput(cc, file)
		if err != nil {
			return err
		}
		err = lexReader(cfg, cc.Out, r, colors)
		closer()
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func lexReader(cfg *LexConfig, w io.Writer, r io.Reader, colors *encode.Colors) error {
	tz := token.NewTokenizer(r,
		token.IncludeComments(cfg.Comments),
		token.IncludeWhitespace(cfg.Space))
	for {
		tok, err := tz.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, dumpToken(&tok, colors)+"\n"); err != nil {
			return err
		}
	}
}

func dumpToken(tok *token.Token, colors *encode.Colors) string {
	if colors == nil {
		return tok.Dump()
	}
	return fmt.Sprintf("%d:%d %s: '%s'", tok.Pos.Line, tok.Pos.Col, tok.Type, tokenColor(colors, tok.Type)(tok.Text))
}

func tokenColor(colors *encode.Colors, tt token.TokenType) func(string, ...any) string {
	switch tt {
	case token.TInteger:
		return colors.Get(ir.IntKind, encode.ValueColor)
	case token.TFloat:
		return colors.Get(ir.FloatKind, encode.ValueColor)
	case token.TBool:
		return colors.Get(ir.BoolKind, encode.ValueColor)
	case token.TString:
		return colors.Get(ir.StringKind, encode.ValueColor)
	case token.TIdent:
		return colors.Get(ir.ObjectKind, encode.FieldColor)
	case token.TLineComment, token.TMultiComment:
		return func(s string, _ ...any) string { return color.HiBlackString("%s", s) }
	case token.TSpace:
		return colors.Default
	default:
		return colors.Get(ir.ObjectKind, encode.SepColor)
	}
}
