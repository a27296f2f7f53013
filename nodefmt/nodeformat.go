package nodefmt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/outline-format/go-outline/field"
)

// DefaultFieldName names the single field a fresh format starts with.
const DefaultFieldName = "Name"

// defaultOutputSep joins a combination field's selections on output.
const defaultOutputSep = ", "

var endTagRe = regexp.MustCompile(`(?i)(<br[ /]*>|<hr[ /]*>)$`)

// NodeFormat owns an ordered field set, one title template and the
// output line templates, and renders node data through them. Many
// nodes share one format; mutators reparse the templates so renders
// never observe a field set and templates out of step.
type NodeFormat struct {
	Name         string
	SpaceBetween bool
	FormatHTML   bool
	ChildType    string
	IconName     string
	// OutputSep joins combination selections in rendered output.
	OutputSep string

	fieldNames  []string
	fields      map[string]field.Field
	titleLine   template
	outputLines []template
}

// Data is the persisted dictionary form of a node format.
type Data struct {
	Name         string        `yaml:"formatname" json:"formatname"`
	Fields       []*field.Data `yaml:"fields" json:"fields"`
	TitleLine    string        `yaml:"titleline,omitempty" json:"titleline,omitempty"`
	OutputLines  []string      `yaml:"outputlines,omitempty" json:"outputlines,omitempty"`
	SpaceBetween *bool         `yaml:"spacebetween,omitempty" json:"spacebetween,omitempty"`
	FormatHTML   bool          `yaml:"formathtml,omitempty" json:"formathtml,omitempty"`
	ChildType    string        `yaml:"childtype,omitempty" json:"childtype,omitempty"`
	Icon         string        `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// New builds a format from its persisted dictionary. A nil dictionary
// yields an empty format with no fields or lines.
func New(name string, d *Data) (*NodeFormat, error) {
	nf := &NodeFormat{
		Name:         name,
		SpaceBetween: true,
		OutputSep:    defaultOutputSep,
		fields:       map[string]field.Field{},
	}
	if d == nil {
		return nf, nil
	}
	for _, fd := range d.Fields {
		if err := nf.AddField(fd); err != nil {
			return nil, fmt.Errorf("format %q: %w", name, err)
		}
	}
	nf.ChangeTitleLine(d.TitleLine)
	nf.ChangeOutputLines(d.OutputLines, false)
	if d.SpaceBetween != nil {
		nf.SpaceBetween = *d.SpaceBetween
	}
	nf.FormatHTML = d.FormatHTML
	nf.ChildType = d.ChildType
	nf.IconName = d.Icon
	return nf, nil
}

// NewWithDefaultField builds a fresh format holding one text field
// used for both title and output.
func NewWithDefaultField(name string) *NodeFormat {
	nf, _ := New(name, nil)
	nf.AddFieldIfNew(&field.Data{Name: DefaultFieldName})
	ref := fmt.Sprintf("{*%s*}", DefaultFieldName)
	nf.ChangeTitleLine(ref)
	nf.ChangeOutputLines([]string{ref}, false)
	return nf
}

// StoreFormat returns the sparse persisted form: defaults are omitted.
func (nf *NodeFormat) StoreFormat() *Data {
	d := &Data{
		Name:        nf.Name,
		TitleLine:   nf.TitleLineText(),
		OutputLines: nf.OutputLineTexts(),
	}
	for _, f := range nf.Fields() {
		d.Fields = append(d.Fields, f.StoreData())
	}
	if !nf.SpaceBetween {
		v := false
		d.SpaceBetween = &v
	}
	d.FormatHTML = nf.FormatHTML
	d.ChildType = nf.ChildType
	d.Icon = nf.IconName
	return d
}

// Fields returns the fields in author-declared order.
func (nf *NodeFormat) Fields() []field.Field {
	res := make([]field.Field, 0, len(nf.fieldNames))
	for _, name := range nf.fieldNames {
		res = append(res, nf.fields[name])
	}
	return res
}

// FieldNames returns the field names in author-declared order.
func (nf *NodeFormat) FieldNames() []string {
	res := make([]string, len(nf.fieldNames))
	copy(res, nf.fieldNames)
	return res
}

// Field looks up a field by name.
func (nf *NodeFormat) Field(name string) (field.Field, bool) {
	f, ok := nf.fields[name]
	return f, ok
}

// AddField adds or replaces a field from its persisted dictionary.
func (nf *NodeFormat) AddField(d *field.Data) error {
	f, err := field.New(d)
	if err != nil {
		return err
	}
	if _, ok := nf.fields[f.Name()]; !ok {
		nf.fieldNames = append(nf.fieldNames, f.Name())
	}
	nf.fields[f.Name()] = f
	return nil
}

// AddFieldIfNew adds a field only when the name is not taken.
func (nf *NodeFormat) AddFieldIfNew(d *field.Data) error {
	if _, ok := nf.fields[d.Name]; ok {
		return nil
	}
	return nf.AddField(d)
}

// AddFieldList adds plain text fields for every listed name. With
// firstTitle the first name becomes the title line; with toOutput the
// output lines are replaced by one line per name.
func (nf *NodeFormat) AddFieldList(names []string, firstTitle, toOutput bool) error {
	for _, name := range names {
		if err := nf.AddFieldIfNew(&field.Data{Name: name}); err != nil {
			return err
		}
	}
	if len(names) == 0 {
		return nil
	}
	if firstTitle {
		nf.ChangeTitleLine(fmt.Sprintf("{*%s*}", names[0]))
	}
	if toOutput {
		lines := make([]string, len(names))
		for i, name := range names {
			lines[i] = fmt.Sprintf("{*%s*}", name)
		}
		nf.ChangeOutputLines(lines, false)
	}
	return nil
}

// ReorderFields installs a new declared order. Every existing field
// must appear exactly once in the list.
func (nf *NodeFormat) ReorderFields(names []string) error {
	if len(names) != len(nf.fieldNames) {
		return fmt.Errorf("%w: reorder list names %d of %d fields",
			ErrUnknownField, len(names), len(nf.fieldNames))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := nf.fields[name]; !ok || seen[name] {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		seen[name] = true
	}
	copy(nf.fieldNames, names)
	return nil
}

// RemoveField drops the named field and every template segment that
// references it, discarding output lines emptied by the removal.
func (nf *NodeFormat) RemoveField(name string) error {
	if _, ok := nf.fields[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	delete(nf.fields, name)
	for i, n := range nf.fieldNames {
		if n == name {
			nf.fieldNames = append(nf.fieldNames[:i], nf.fieldNames[i+1:]...)
			break
		}
	}
	nf.titleLine = nf.titleLine.withoutField(name)
	var lines []template
	for _, line := range nf.outputLines {
		if line = line.withoutField(name); len(line) > 0 {
			lines = append(lines, line)
		}
	}
	nf.outputLines = lines
	return nil
}

// UpdateLineParsing reparses every template against the current field
// set, re-resolving placeholders after field renames or removals.
func (nf *NodeFormat) UpdateLineParsing() {
	nf.titleLine = parseLine(nf.titleLine.serialize(nf.fields), nf.fields)
	for i, line := range nf.outputLines {
		nf.outputLines[i] = parseLine(line.serialize(nf.fields), nf.fields)
	}
}

// TitleLineText returns the title template with placeholders embedded.
func (nf *NodeFormat) TitleLineText() string {
	return nf.titleLine.serialize(nf.fields)
}

// OutputLineTexts returns the output templates with placeholders
// embedded, at least one line.
func (nf *NodeFormat) OutputLineTexts() []string {
	if len(nf.outputLines) == 0 {
		return []string{""}
	}
	res := make([]string, len(nf.outputLines))
	for i, line := range nf.outputLines {
		res[i] = line.serialize(nf.fields)
	}
	return res
}

// ChangeTitleLine replaces the title template.
func (nf *NodeFormat) ChangeTitleLine(text string) {
	nf.titleLine = parseLine(text, nf.fields)
}

// ChangeOutputLines replaces the output templates. Lines parsing to
// nothing are dropped unless keepBlanks is set.
func (nf *NodeFormat) ChangeOutputLines(lines []string, keepBlanks bool) {
	nf.outputLines = nil
	for _, line := range lines {
		parsed := parseLine(line, nf.fields)
		if keepBlanks || len(parsed) > 0 {
			nf.outputLines = append(nf.outputLines, parsed)
		}
	}
}

// AddOutputLine appends an output template after the existing lines.
func (nf *NodeFormat) AddOutputLine(line string) {
	if parsed := parseLine(line, nf.fields); len(parsed) > 0 {
		nf.outputLines = append(nf.outputLines, parsed)
	}
}

func (nf *NodeFormat) renderCtx(titleMode bool) field.RenderContext {
	return field.RenderContext{
		TitleMode:  titleMode,
		FormatHTML: nf.FormatHTML,
		OutputSep:  nf.OutputSep,
	}
}

// FormatTitle renders node data through the title template, truncated
// to the first line.
func (nf *NodeFormat) FormatTitle(data map[string]string) string {
	var b strings.Builder
	ctx := nf.renderCtx(true)
	for _, seg := range nf.titleLine {
		if seg.isField() {
			b.WriteString(field.OutputText(nf.fields[seg.fieldName], data, ctx))
		} else {
			b.WriteString(seg.text)
		}
	}
	line, _, _ := strings.Cut(strings.TrimSpace(b.String()), "\n")
	return line
}

// FormatOutput renders node data through the output templates. A line
// whose field segments all rendered empty is dropped unless keepBlanks
// is set or the line has no field segments at all. When a dropped line
// ends in a break or rule tag under HTML formatting, that trailing tag
// moves to the previously emitted line.
func (nf *NodeFormat) FormatOutput(data map[string]string, plainText, keepBlanks bool) []string {
	var result []string
	ctx := nf.renderCtx(plainText)
	for _, lineData := range nf.outputLines {
		var b strings.Builder
		numEmpty, numFull := 0, 0
		for _, seg := range lineData {
			if seg.isField() {
				text := field.OutputText(nf.fields[seg.fieldName], data, ctx)
				if text != "" {
					numFull++
				} else {
					numEmpty++
				}
				b.WriteString(text)
				continue
			}
			text := seg.text
			if !nf.FormatHTML && !plainText {
				text = field.EscapeHTML(text)
			} else if nf.FormatHTML && plainText {
				text = field.RemoveMarkup(text)
			}
			b.WriteString(text)
		}
		line := b.String()
		if keepBlanks || numFull > 0 || numEmpty == 0 {
			result = append(result, line)
		} else if nf.FormatHTML && !plainText && len(result) > 0 {
			if m := endTagRe.FindStringSubmatch(line); m != nil {
				result[len(result)-1] += m[1]
			}
		}
	}
	return result
}

// SetInitDefaultData fills data with each field's initial default,
// skipping keys already set unless overwrite is given.
func (nf *NodeFormat) SetInitDefaultData(data map[string]string, overwrite bool) {
	for _, f := range nf.Fields() {
		text := f.Opts().InitDefault
		if text != "" && (overwrite || data[f.Name()] == "") {
			data[f.Name()] = text
		}
	}
}
