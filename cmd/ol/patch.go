package main

import (
	"bytes"
	"fmt"

	"github.com/outline-format/go-outline/treeio"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchRaw, err := readRaw(args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	for _, arg := range orStdin(args[1:]) {
		docRaw, err := readRaw(arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		var out []byte
		if cfg.Merge {
			out, err = treeio.MergePatch(docRaw, patchRaw)
		} else {
			out, err = treeio.Patch(docRaw, patchRaw)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		// reload to check the patched document still parses
		f, err := treeio.Read(bytes.NewReader(out))
		if err != nil {
			return fmt.Errorf("patched %s is not a valid document: %w", arg, err)
		}
		if err := cfg.writeDoc(cc.Out, f); err != nil {
			return err
		}
	}
	return nil
}
