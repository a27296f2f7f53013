// Package outdiff computes line diffs between rendered outline
// output, for comparing a node's output across edits or two versions
// of a document.
package outdiff

import (
	"strings"

	"github.com/outline-format/go-outline/debug"
	"github.com/outline-format/go-outline/tree"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Lines computes a line-granular diff between two texts.
func Lines(from, to string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	c1, c2, lineArr := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(c1, c2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArr)
	if debug.Diff() {
		debug.Logf("outdiff: %d hunks\n", len(diffs))
	}
	return diffs
}

// Nodes diffs the plain text output of two nodes.
func Nodes(from, to *tree.Node) []diffmatchpatch.Diff {
	fromText := strings.Join(from.Output(true, false), "\n") + "\n"
	toText := strings.Join(to.Output(true, false), "\n") + "\n"
	return Lines(fromText, toText)
}

// Unified renders a diff with one prefixed line per changed or
// context line.
func Unified(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Same reports whether a diff holds no changes.
func Same(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return false
		}
	}
	return true
}
