package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/eval"
	"github.com/signadot/qmlon/ir"

	"github.com/goccy/go-yaml"
)

// writeDoc writes v in the output format chosen on the command line.
func (cfg *MainConfig) writeDoc(w io.Writer, v *ir.Value) error {
	switch {
	case cfg.J:
		d, err := ir.ToJSON(v)
		if err != nil {
			return err
		}
		if !cfg.WireOut {
			buf := bytes.NewBuffer(nil)
			if err := json.Indent(buf, d, "", "  "); err != nil {
				return fmt.Errorf("internal error: %w", err)
			}
			d = buf.Bytes()
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case cfg.Y:
		d, err := yaml.Marshal(eval.ToAny(v))
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	default:
		if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}
}
