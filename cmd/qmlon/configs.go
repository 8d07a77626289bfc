package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='spaces per nesting level'"`
	Strict  bool `cli:"name=strict desc='reject duplicate property names'"`

	J bool `cli:"name=j aliases=json desc='output the json mapping'"`
	Y bool `cli:"name=y aliases=yaml desc='output the json mapping as yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Strict {
		return []parse.ParseOption{parse.StrictKeys()}
	}
	return nil
}

func (cfg *MainConfig) colorsSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

// useColor reports whether output to w is colored: -color decides when
// given, otherwise terminals get color.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorsSet() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", a, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type LexConfig struct {
	*MainConfig
	Comments bool `cli:"name=c desc='include comments'"`
	Space    bool `cli:"name=w desc='include whitespace'"`

	Lex *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text    bool `cli:"name=text desc='line diff of the canonical forms'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Filter bool `cli:"name=f aliases=filter desc='print documents for which the expression is true'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`

	Match *cli.Command
}
