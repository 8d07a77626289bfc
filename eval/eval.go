package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/qmlon/debug"
	"github.com/signadot/qmlon/ir"
)

var ErrEval = errors.New("eval")

// Env is the evaluation environment of an expression.
type Env = map[string]any

// NewEnv returns the environment binding doc. The document is always
// available as "doc"; an object document also binds "typename",
// "properties" and "children".
func NewEnv(doc *ir.Value) Env {
	env := Env{"doc": ToAny(doc)}
	if doc.IsObject() {
		m := ObjectToAny(doc.Obj)
		env["typename"] = m["type"]
		env["properties"] = m["properties"]
		env["children"] = m["children"]
	}
	return env
}

func compile(input string, doc *ir.Value, opts ...expr.Option) (*vm.Program, error) {
	prg, err := expr.Compile(input, append(exprOpts(doc), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return prg, nil
}

func run(prg *vm.Program, doc *ir.Value) (any, error) {
	res, err := expr.Run(prg, NewEnv(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return res, nil
}

// Eval evaluates input against doc and converts the result to a value.
func Eval(input string, doc *ir.Value) (*ir.Value, error) {
	if doc == nil {
		return nil, ir.ErrNilValue
	}
	prg, err := compile(input, doc)
	if err != nil {
		return nil, err
	}
	res, err := run(prg, doc)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", input, res)
	}
	v, err := FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrEval, input, err)
	}
	return v, nil
}

// Match reports whether input evaluates to true against doc.
func Match(input string, doc *ir.Value) (bool, error) {
	if doc == nil {
		return false, ir.ErrNilValue
	}
	prg, err := compile(input, doc, expr.AsBool())
	if err != nil {
		return false, err
	}
	res, err := run(prg, doc)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q is %T, not bool", ErrEval, input, res)
	}
	return b, nil
}

func exprOpts(doc *ir.Value) []expr.Option {
	return []expr.Option{
		expr.Env(NewEnv(doc)),
		expr.Function("get", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("childrenOf", func(params ...any) (any, error) {
			kids := doc.Obj.ChildrenOf(params[0].(string))
			res := make([]any, len(kids))
			for i, c := range kids {
				res[i] = ObjectToAny(c)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("paths", func(params ...any) (any, error) {
			var res []any
			doc.Walk(func(p string, _ *ir.Value) bool {
				res = append(res, p)
				return true
			})
			return res, nil
		},
			new(func() []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
