package nodefmt

import (
	"regexp"
	"strings"

	"github.com/outline-format/go-outline/field"
)

// placeholder grammar: "{*" + optional modifier + field name + "*}".
// The modifier characters are reserved; a placeholder carrying one is
// kept as literal text.
var (
	fieldSplitRe = regexp.MustCompile(`\{\*(?:\**|\?|!|&|#)[\w\-.]+\*\}`)
	fieldPartRe  = regexp.MustCompile(`^\{\*(\**|\?|!|&|#)([\w\-.]+)\*\}$`)
)

// segment is one parsed piece of a template line. A field segment
// holds only the field name; the live field is looked up at render
// time so that format edits are always visible.
type segment struct {
	fieldName string
	text      string
}

func (s segment) isField() bool { return s.fieldName != "" }

type template []segment

// splitLine splits text on placeholder boundaries, keeping the
// placeholders as tokens and dropping empty tokens.
func splitLine(text string) []string {
	var toks []string
	last := 0
	for _, loc := range fieldSplitRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			toks = append(toks, text[last:loc[0]])
		}
		toks = append(toks, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		toks = append(toks, text[last:])
	}
	return toks
}

// parseLine parses a raw template line. Whitespace runs collapse to
// single spaces first, so serialization reproduces the normalized
// form of the input.
func parseLine(text string, fields map[string]field.Field) template {
	text = strings.Join(strings.Fields(text), " ")
	var tpl template
	for _, tok := range splitLine(text) {
		if m := fieldPartRe.FindStringSubmatch(tok); m != nil && m[1] == "" {
			if _, ok := fields[m[2]]; ok {
				tpl = append(tpl, segment{fieldName: m[2]})
				continue
			}
		}
		tpl = append(tpl, segment{text: tok})
	}
	return tpl
}

// serialize rebuilds the raw line, spelling each field segment with
// the field's canonical placeholder.
func (t template) serialize(fields map[string]field.Field) string {
	var b strings.Builder
	for _, s := range t {
		if s.isField() {
			if f, ok := fields[s.fieldName]; ok {
				b.WriteString(f.SepName())
				continue
			}
		}
		b.WriteString(s.text)
	}
	return b.String()
}

// withoutField drops every segment referencing the named field.
func (t template) withoutField(name string) template {
	var res template
	for _, s := range t {
		if s.fieldName == name {
			continue
		}
		res = append(res, s)
	}
	return res
}
