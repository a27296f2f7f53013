package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/outline-format/go-outline/outdiff"
	"github.com/outline-format/go-outline/treeio"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	from, to := args[0], args[1]
	if cfg.Reverse {
		from, to = to, from
	}
	fromFile, err := readDoc(from)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", from, err)
	}
	toFile, err := readDoc(to)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", to, err)
	}
	diffs := outdiff.Lines(renderDoc(fromFile), renderDoc(toFile))
	if outdiff.Same(diffs) {
		return nil
	}
	useColor := cfg.useColor(cc.Out)
	ins, del := color.New(color.FgGreen), color.New(color.FgRed)
	for _, c := range []*color.Color{ins, del} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for _, line := range strings.Split(strings.TrimSuffix(outdiff.Unified(diffs), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+ "):
			fmt.Fprintln(cc.Out, ins.Sprint(line))
		case strings.HasPrefix(line, "- "):
			fmt.Fprintln(cc.Out, del.Sprint(line))
		default:
			fmt.Fprintln(cc.Out, line)
		}
	}
	return cli.ExitCodeErr(1)
}

func renderDoc(f *treeio.File) string {
	var b strings.Builder
	for _, n := range f.Model.Nodes() {
		b.WriteString(n.Title())
		b.WriteString("\n")
		for _, line := range n.Output(true, false) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
