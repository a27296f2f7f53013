package field

import "strings"

// lineBreak is the stored-text line break marker.
const lineBreak = "<br />"

// textField holds rich text; the stored form is not HTML-safe by
// itself, so title edits are escaped on ingestion.
type textField struct{ base }

func newTextField(name string, d *Data) (Field, error) {
	f := &textField{base: newBase(name, policy{
		typeName:     "Text",
		defaultLines: 1,
		fixEvalHTML:  true,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *textField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(EscapeHTML(titleText))
}

// htmlTextField stores HTML-safe text; title edits pass through
// unescaped.
type htmlTextField struct{ base }

func newHTMLTextField(name string, d *Data) (Field, error) {
	f := &htmlTextField{base: newBase(name, policy{
		typeName:        "HtmlText",
		defaultLines:    1,
		evalHTMLDefault: true,
		fixEvalHTML:     true,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *htmlTextField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(titleText)
}

// oneLineTextField truncates at the first line break marker and never
// stores multi-line content.
type oneLineTextField struct{ base }

func newOneLineTextField(name string, d *Data) (Field, error) {
	f := &oneLineTextField{base: newBase(name, policy{
		typeName:     "OneLineText",
		defaultLines: 1,
		fixEvalHTML:  true,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, lineBreak)
	return line
}

func (f *oneLineTextField) FormatOutput(storedText string, ctx RenderContext) string {
	return f.wrap(firstLine(storedText), ctx)
}

func (f *oneLineTextField) FormatEditorText(storedText string) (string, error) {
	return firstLine(storedText), nil
}

func (f *oneLineTextField) StoredText(editorText string) (string, error) {
	return firstLine(editorText), nil
}

func (f *oneLineTextField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(EscapeHTML(titleText))
}

// spacedTextField renders inside a preformatted block; the stored form
// is always escaped, regardless of the html-eval setting.
type spacedTextField struct{ base }

func newSpacedTextField(name string, d *Data) (Field, error) {
	f := &spacedTextField{base: newBase(name, policy{
		typeName:     "SpacedText",
		defaultLines: 1,
		fixEvalHTML:  true,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *spacedTextField) FormatOutput(storedText string, ctx RenderContext) string {
	if storedText != "" {
		storedText = "<pre>" + storedText + "</pre>"
	}
	return f.wrap(storedText, ctx)
}

func (f *spacedTextField) FormatEditorText(storedText string) (string, error) {
	return UnescapeHTML(storedText), nil
}

func (f *spacedTextField) StoredText(editorText string) (string, error) {
	return EscapeHTML(editorText), nil
}

func (f *spacedTextField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(titleText)
}
