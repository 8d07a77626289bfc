package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		v, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := cfg.writeDoc(cc.Out, v); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
