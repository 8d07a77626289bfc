package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/qmlon/encode"
	"github.com/signadot/qmlon/ir"
)

// Logf writes to stderr, rendering documents and JSON-like arguments
// readably.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Value:
			args[i] = render(x)
		case *ir.Object:
			args[i] = render(ir.FromObject(x))
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func render(v *ir.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Value] %v", v)
	}
	return buf.String()
}
