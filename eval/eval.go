package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/outline-format/go-outline/debug"
	"github.com/outline-format/go-outline/tree"
)

var ErrEval = errors.New("equation error")

// Env builds the expression environment for a node: one variable per
// field holding its math value, nil for blank fields unless
// zeroBlanks substitutes type-appropriate zeros.
func Env(n *tree.Node, zeroBlanks bool) (map[string]any, error) {
	env := map[string]any{}
	for _, f := range n.Format.Fields() {
		v, err := f.MathValue(n.Data, zeroBlanks)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrEval, f.Name(), err)
		}
		env[f.Name()] = v.Any()
	}
	return env, nil
}

func exprOpts(n *tree.Node, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		// field gives access to names that are not identifiers
		expr.Function("field", func(params ...any) (any, error) {
			name := params[0].(string)
			v, ok := env[name]
			if !ok {
				return nil, fmt.Errorf("%w: no field %q", ErrEval, name)
			}
			return v, nil
		},
			new(func(string) any)),
		expr.Function("childcount", func(params ...any) (any, error) {
			return n.NumChildren(), nil
		},
			new(func() int)),
		expr.Function("title", func(params ...any) (any, error) {
			return n.Title(), nil
		},
			new(func() string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Run compiles and evaluates an equation against a node.
func Run(src string, n *tree.Node, zeroBlanks bool) (any, error) {
	env, err := Env(n, zeroBlanks)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval: %q on node %s env %v\n", src, n.UID, env)
	}
	prg, err := expr.Compile(src, exprOpts(n, env)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEval, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEval, err)
	}
	return res, nil
}
