package main

import (
	"fmt"
	"io"

	"github.com/signadot/qmlon"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/schema"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires a schema file", cli.ErrUsage)
	}
	s, err := qmlon.LoadSchema(args[0])
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range inputs(args[1:]) {
		v, err := getObjFile(cc, file, cfg.parseOpts()...)
		if !checkOne(cfg, cc.Out, s, file, v, err) {
			failed++
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkOne reports on one document and whether it passed.
func checkOne(cfg *CheckConfig, w io.Writer, s *schema.Schema, name string, v *ir.Value, err error) bool {
	if err == nil {
		err = s.Check(v)
	}
	if cfg.Quiet {
		return err == nil
	}
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", name, err)
		return false
	}
	fmt.Fprintf(w, "%s: ok\n", name)
	return true
}
