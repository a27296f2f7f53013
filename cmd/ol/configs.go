package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/outline-format/go-outline/treeio"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='write documents as json'"`
	Y bool `cli:"name=y aliases=yaml desc='write documents as yaml'"`

	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) writeDoc(w io.Writer, f *treeio.File) error {
	if cfg.J {
		return treeio.WriteJSON(w, f)
	}
	return treeio.Write(w, f)
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func readDoc(arg string) (*treeio.File, error) {
	if arg == "-" {
		return treeio.Read(os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return treeio.Read(f)
}

func readRaw(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type TitlesConfig struct {
	*MainConfig
	Depth int `cli:"name=depth desc='max depth to print, 0 for unlimited'"`

	// Set maps node uid to a replacement title; when non-empty the
	// command rewrites documents instead of printing titles.
	Set map[string]string

	Titles *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Plain      bool `cli:"name=p desc='render plain text, stripping markup'"`
	KeepBlanks bool `cli:"name=blanks desc='keep lines whose fields are all empty'"`

	View *cli.Command
}

type EvalConfig struct {
	*MainConfig
	ZeroBlanks bool `cli:"name=z desc='treat blank fields as zeros'"`

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m desc='apply the patch as a merge patch'"`

	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}
