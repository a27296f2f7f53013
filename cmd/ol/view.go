package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/outline-format/go-outline/tree"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	titleColor := color.New(color.FgCyan, color.Bold)
	if cfg.useColor(cc.Out) {
		titleColor.EnableColor()
	} else {
		titleColor.DisableColor()
	}
	for _, arg := range orStdin(args) {
		f, err := readDoc(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		for _, root := range f.Roots() {
			viewBranch(cfg, cc.Out, root, 0, titleColor)
		}
	}
	return nil
}

func viewBranch(cfg *ViewConfig, w io.Writer, n *tree.Node, depth int, titleColor *color.Color) {
	indent := strings.Repeat("    ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, titleColor.Sprint(n.Title()))
	for _, line := range n.Output(cfg.Plain, cfg.KeepBlanks) {
		fmt.Fprintf(w, "%s  %s\n", indent, line)
	}
	for _, child := range n.Children() {
		viewBranch(cfg, w, child, depth+1, titleColor)
	}
}
