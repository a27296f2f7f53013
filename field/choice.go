package field

import (
	"fmt"
	"strings"
)

// choiceSep separates entries in a choice format; a doubled separator
// inside an entry stands for one literal separator character.
const choiceSep = "/"

// SplitChoices splits a choice format on the separator, unescaping
// doubled separators and dropping empty entries and duplicates while
// preserving first-seen order.
func SplitChoices(text string) []string {
	const placeholder = "\x00"
	text = strings.ReplaceAll(text, choiceSep+choiceSep, placeholder)
	var res []string
	for _, part := range strings.Split(text, choiceSep) {
		part = strings.ReplaceAll(strings.TrimSpace(part), placeholder, choiceSep)
		if part == "" {
			continue
		}
		if !contains(res, part) {
			res = append(res, part)
		}
	}
	return res
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// joinChoices joins entries with the separator, doubling any
// separator characters inside an entry.
func joinChoices(list []string) string {
	escaped := make([]string, len(list))
	for i, v := range list {
		escaped[i] = strings.ReplaceAll(v, choiceSep, choiceSep+choiceSep)
	}
	return strings.Join(escaped, choiceSep)
}

// choiceField restricts values to one entry of a declared choice list.
type choiceField struct {
	base
	choiceList []string
	choices    map[string]bool
}

func newChoiceField(name string, d *Data) (Field, error) {
	f := &choiceField{base: newBase(name, policy{
		typeName:      "Choice",
		defaultFormat: "1/2/3/4",
		defaultLines:  1,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

// SetFormat reparses the choice list. The list and the stored-form set
// are built before either is installed, so a renderer never observes
// them out of step.
func (f *choiceField) SetFormat(format string) error {
	list := SplitChoices(format)
	choices := make(map[string]bool, len(list))
	for _, c := range list {
		if f.opts.EvalHTML {
			choices[c] = true
		} else {
			choices[EscapeHTML(c)] = true
		}
	}
	f.format = format
	f.choiceList = list
	f.choices = choices
	return nil
}

func (f *choiceField) FormatOutput(storedText string, ctx RenderContext) string {
	if !f.choices[storedText] {
		storedText = ErrorMarker
	}
	return f.wrap(storedText, ctx)
}

func (f *choiceField) FormatEditorText(storedText string) (string, error) {
	if storedText != "" && !f.choices[storedText] {
		return "", fmt.Errorf("%w: %q is not a choice", ErrValidation, storedText)
	}
	if f.opts.EvalHTML {
		return storedText, nil
	}
	return UnescapeHTML(storedText), nil
}

func (f *choiceField) StoredText(editorText string) (string, error) {
	if !f.opts.EvalHTML {
		editorText = EscapeHTML(editorText)
	}
	if editorText == "" || f.choices[editorText] {
		return editorText, nil
	}
	return "", fmt.Errorf("%w: %q is not a choice", ErrValidation, editorText)
}

func (f *choiceField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(titleText)
}

func (f *choiceField) InitDefaultChoices() []string {
	res := make([]string, len(f.choiceList))
	copy(res, f.choiceList)
	return res
}

func (f *choiceField) ComboChoices() []string {
	return f.InitDefaultChoices()
}

// combinationField holds a set of selections from the declared
// choices; the stored form always lists selections in the declared
// order, never input order.
type combinationField struct {
	base
	choiceList []string
	choices    map[string]bool
}

func newCombinationField(name string, d *Data) (Field, error) {
	f := &combinationField{base: newBase(name, policy{
		typeName:      "Combination",
		defaultFormat: "1/2/3/4",
		defaultLines:  1,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *combinationField) SetFormat(format string) error {
	listSource := format
	if !f.opts.EvalHTML {
		listSource = EscapeHTML(format)
	}
	list := SplitChoices(listSource)
	choices := make(map[string]bool, len(list))
	for _, c := range list {
		choices[c] = true
	}
	f.format = format
	f.choiceList = list
	f.choices = choices
	return nil
}

// sortedSelections splits inText and orders the entries like the
// declared choice list, reporting whether all entries were declared.
func (f *combinationField) sortedSelections(inText string) ([]string, bool) {
	sels := make(map[string]bool)
	for _, s := range SplitChoices(inText) {
		sels[s] = true
	}
	var res []string
	for _, c := range f.choiceList {
		if sels[c] {
			res = append(res, c)
		}
	}
	return res, len(res) == len(sels)
}

func (f *combinationField) FormatOutput(storedText string, ctx RenderContext) string {
	text := ErrorMarker
	if sels, valid := f.sortedSelections(storedText); valid {
		text = strings.Join(sels, ctx.OutputSep)
	}
	return f.wrap(text, ctx)
}

func (f *combinationField) FormatEditorText(storedText string) (string, error) {
	for _, s := range SplitChoices(storedText) {
		if !f.choices[s] {
			return "", fmt.Errorf("%w: %q is not a choice", ErrValidation, s)
		}
	}
	if f.opts.EvalHTML {
		return storedText, nil
	}
	return UnescapeHTML(storedText), nil
}

func (f *combinationField) StoredText(editorText string) (string, error) {
	if !f.opts.EvalHTML {
		editorText = EscapeHTML(editorText)
	}
	sels, valid := f.sortedSelections(editorText)
	if !valid {
		return "", fmt.Errorf("%w: undeclared selection in %q", ErrValidation, editorText)
	}
	return joinChoices(sels), nil
}

func (f *combinationField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(titleText)
}

func (f *combinationField) ComboChoices() []string {
	res := make([]string, len(f.choiceList))
	for i, c := range f.choiceList {
		if f.opts.EvalHTML {
			res[i] = c
		} else {
			res[i] = UnescapeHTML(c)
		}
	}
	return res
}

// ComboActiveChoices returns the selections currently present in
// editor text, in declared order.
func (f *combinationField) ComboActiveChoices(editorText string) []string {
	sels, _ := f.sortedSelections(EscapeHTML(editorText))
	if f.opts.EvalHTML {
		return sels
	}
	res := make([]string, len(sels))
	for i, s := range sels {
		res[i] = UnescapeHTML(s)
	}
	return res
}
