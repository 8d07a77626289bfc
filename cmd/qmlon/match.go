package main

import (
	"fmt"

	"github.com/signadot/qmlon"
	"github.com/signadot/qmlon/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern document", cli.ErrUsage)
	}
	d, err := getArg(cc, args[0], cfg.String)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	pattern, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("%w: error decoding pattern: %w", cli.ErrUsage, err)
	}
	n := 0
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		if !qmlon.Match(doc, pattern) {
			continue
		}
		if cfg.Trim {
			doc = qmlon.Trim(pattern, doc)
		}
		if err := writeSep(cc.Out, n); err != nil {
			return err
		}
		n++
		if err := cfg.writeDoc(cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}
