package field

import (
	"fmt"
	"regexp"
)

// regExpField validates values against a regular expression format.
// The match is anchored at the start only: text whose prefix matches
// is accepted even when the pattern does not consume the whole string.
type regExpField struct {
	base
	re *regexp.Regexp
}

func newRegExpField(name string, d *Data) (Field, error) {
	f := &regExpField{base: newBase(name, policy{
		typeName:      "RegularExpression",
		defaultFormat: ".*",
		defaultLines:  1,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *regExpField) SetFormat(format string) error {
	re, err := regexp.Compile("^(?:" + format + ")")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	f.format = format
	f.re = re
	return nil
}

func (f *regExpField) FormatOutput(storedText string, ctx RenderContext) string {
	text := storedText
	if storedText != "" && !f.re.MatchString(UnescapeHTML(storedText)) {
		text = ErrorMarker
	}
	return f.wrap(text, ctx)
}

func (f *regExpField) FormatEditorText(storedText string) (string, error) {
	text := storedText
	if !f.opts.EvalHTML {
		text = UnescapeHTML(storedText)
	}
	if text == "" || f.re.MatchString(text) {
		return text, nil
	}
	return "", fmt.Errorf("%w: %q does not match %q", ErrValidation, text, f.format)
}

func (f *regExpField) StoredText(editorText string) (string, error) {
	if editorText == "" || f.re.MatchString(editorText) {
		if f.opts.EvalHTML {
			return editorText, nil
		}
		return EscapeHTML(editorText), nil
	}
	return "", fmt.Errorf("%w: %q does not match %q", ErrValidation, editorText, f.format)
}

func (f *regExpField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(titleText)
}
