package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/outline-format/go-outline/tree"
	"github.com/scott-cotton/cli"
)

func setOptTypeFunc(set map[string]string) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		uid, title, ok := strings.Cut(a, "=")
		if !ok || uid == "" {
			return nil, fmt.Errorf("%w: argument %q expected uid=title", cli.ErrUsage, a)
		}
		set[uid] = title
		return 0, nil
	}
}

func titles(cfg *TitlesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Titles.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(cfg.Set) > 0 {
		return setTitles(cfg, cc, args)
	}
	rootColor := color.New(color.Bold)
	if cfg.useColor(cc.Out) {
		rootColor.EnableColor()
	} else {
		rootColor.DisableColor()
	}
	for _, arg := range orStdin(args) {
		f, err := readDoc(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		for _, root := range f.Roots() {
			printTitles(cc.Out, root, 0, cfg.Depth, rootColor)
		}
	}
	return nil
}

func setTitles(cfg *TitlesConfig, cc *cli.Context, args []string) error {
	for _, arg := range orStdin(args) {
		f, err := readDoc(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		for uid, title := range cfg.Set {
			n, ok := f.Model.Node(uid)
			if !ok {
				return fmt.Errorf("%w: no node %q in %s", cli.ErrUsage, uid, arg)
			}
			if title != n.Title() && !n.SetTitle(title) {
				return fmt.Errorf("title %q does not fit node %q", title, uid)
			}
		}
		if err := cfg.writeDoc(cc.Out, f); err != nil {
			return err
		}
	}
	return nil
}

func printTitles(w io.Writer, n *tree.Node, depth, maxDepth int, rootColor *color.Color) {
	indent := strings.Repeat("    ", depth)
	if depth == 0 {
		fmt.Fprintf(w, "%s%s\n", indent, rootColor.Sprint(n.Title()))
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, n.Title())
	}
	if maxDepth > 0 && depth+1 >= maxDepth {
		return
	}
	for _, child := range n.Children() {
		printTitles(w, child, depth+1, maxDepth, rootColor)
	}
}
