package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, arg := range orStdin(args) {
		f, err := readDoc(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		if i > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		if err := cfg.writeDoc(cc.Out, f); err != nil {
			return err
		}
	}
	return nil
}
