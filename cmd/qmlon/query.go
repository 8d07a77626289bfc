package main

import (
	"fmt"

	"github.com/signadot/qmlon/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	input := args[0]
	n := 0
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res := doc
		if cfg.Filter {
			ok, err := eval.Match(input, doc)
			if err != nil {
				return fmt.Errorf("error evaluating %s: %w", file, err)
			}
			if !ok {
				continue
			}
		} else {
			res, err = eval.Eval(input, doc)
			if err != nil {
				return fmt.Errorf("error evaluating %s: %w", file, err)
			}
		}
		if err := writeSep(cc.Out, n); err != nil {
			return err
		}
		n++
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
