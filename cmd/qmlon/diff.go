package main

import (
	"fmt"
	"io"

	"github.com/signadot/qmlon"
	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Value) (bool, error) {
	if cfg.Text {
		as, err := encode.String(a)
		if err != nil {
			return false, err
		}
		bs, err := encode.String(b)
		if err != nil {
			return false, err
		}
		if as == bs {
			return false, nil
		}
		_, err = io.WriteString(w, libdiff.Text(as+"\n", bs+"\n"))
		return true, err
	}
	cs := qmlon.Diff(a, b)
	if len(cs) == 0 {
		return false, nil
	}
	_, err := io.WriteString(w, libdiff.Format(cs))
	return true, err
}
