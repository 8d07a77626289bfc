package main

import (
	"fmt"

	"github.com/signadot/qmlon"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	d, err := getArg(cc, args[0], cfg.String)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	apply := patchFunc(d)
	for i, file := range inputs(args[1:]) {
		target, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := apply(target)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := writeSep(cc.Out, i); err != nil {
			return err
		}
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// patchFunc applies d as a QMLON list of operations if it parses as one,
// and as a JSON patch otherwise.
func patchFunc(d []byte) func(*ir.Value) (*ir.Value, error) {
	if ops, err := parse.Parse(d); err == nil && ops.Kind == ir.ListKind {
		return func(doc *ir.Value) (*ir.Value, error) {
			return qmlon.PatchValue(doc, ops)
		}
	}
	return func(doc *ir.Value) (*ir.Value, error) {
		return qmlon.Patch(doc, d)
	}
}
