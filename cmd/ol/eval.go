package main

import (
	"fmt"

	"github.com/outline-format/go-outline/eval"
	"github.com/scott-cotton/cli"
)

func olEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an equation", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range orStdin(args[1:]) {
		f, err := readDoc(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		for _, n := range f.Model.Nodes() {
			res, err := eval.Run(src, n, cfg.ZeroBlanks)
			if err != nil {
				return fmt.Errorf("error evaluating on node %s: %w", n.UID, err)
			}
			fmt.Fprintf(cc.Out, "%s: %v\n", n.Title(), res)
		}
	}
	return nil
}
