package field

import (
	"fmt"
	"strings"
)

// RenderContext carries the per-render settings a field needs from its
// owning node format.
type RenderContext struct {
	// TitleMode strips all markup from the rendered value for tree
	// title use.
	TitleMode bool
	// FormatHTML marks the document as HTML-formatted. When false,
	// prefix and suffix are escaped on output.
	FormatHTML bool
	// OutputSep joins a Combination field's selections. The owning
	// node format supplies it for every render call.
	OutputSep string
}

// Opts holds the presentation options shared by every field variant.
type Opts struct {
	Prefix         string
	Suffix         string
	InitDefault    string
	NumLines       int
	SortKeyNum     int
	SortKeyForward bool
	EvalHTML       bool
	UseFileInfo    bool
}

// Field is the behavior shared by all field type variants.
type Field interface {
	Name() string
	TypeName() string
	Format() string
	// SetFormat validates and installs a format specifier. It fails
	// with ErrFormat before mutating any state.
	SetFormat(format string) error
	Opts() *Opts
	StoreData() *Data
	SepName() string

	// FormatOutput renders stored text. Bad data renders as
	// ErrorMarker, never an error.
	FormatOutput(storedText string, ctx RenderContext) string
	FormatEditorText(storedText string) (string, error)
	StoredText(editorText string) (string, error)
	StoredTextFromTitle(titleText string) (string, error)

	MathValue(data map[string]string, zeroBlanks bool) (Value, error)
	CompareValue(data map[string]string) Value
	SortKey(data map[string]string) SortKey
	AdjustedCompareValue(raw string) Value

	InitDefaultChoices() []string
	ComboChoices() []string

	// closes the variant set to this package
	fixedEvalHTML() bool
}

// Data is the persisted dictionary form of a field. Omitted optional
// keys mean "use the variant default".
type Data struct {
	Name       string `yaml:"fieldname" json:"fieldname"`
	Type       string `yaml:"fieldtype" json:"fieldtype"`
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`
	Prefix     string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix     string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Init       string `yaml:"init,omitempty" json:"init,omitempty"`
	Lines      int    `yaml:"lines,omitempty" json:"lines,omitempty"`
	SortKeyNum int    `yaml:"sortkeynum,omitempty" json:"sortkeynum,omitempty"`
	SortKeyFwd *bool  `yaml:"sortkeyfwd,omitempty" json:"sortkeyfwd,omitempty"`
	EvalHTML   *bool  `yaml:"evalhtml,omitempty" json:"evalhtml,omitempty"`
}

// policy fixes the per-variant defaults.
type policy struct {
	typeName        string
	defaultFormat   string
	evalHTMLDefault bool
	fixEvalHTML     bool
	defaultLines    int
}

type base struct {
	name   string
	format string
	opts   Opts
	pol    policy
}

func newBase(name string, pol policy) base {
	return base{name: name, pol: pol}
}

// applyData fills the options from persisted data, honoring variant
// defaults and the fixed html-eval policy.
func (b *base) applyData(d *Data) {
	if d == nil {
		d = &Data{}
	}
	b.opts.Prefix = d.Prefix
	b.opts.Suffix = d.Suffix
	b.opts.InitDefault = d.Init
	b.opts.NumLines = d.Lines
	if b.opts.NumLines == 0 {
		b.opts.NumLines = b.pol.defaultLines
	}
	b.opts.SortKeyNum = d.SortKeyNum
	b.opts.SortKeyForward = true
	if d.SortKeyFwd != nil {
		b.opts.SortKeyForward = *d.SortKeyFwd
	}
	b.opts.EvalHTML = b.pol.evalHTMLDefault
	if !b.pol.fixEvalHTML && d.EvalHTML != nil {
		b.opts.EvalHTML = *d.EvalHTML
	}
}

func (b *base) dataFormat(d *Data) string {
	if d == nil || d.Format == "" {
		return b.pol.defaultFormat
	}
	return d.Format
}

func (b *base) Name() string     { return b.name }
func (b *base) TypeName() string { return b.pol.typeName }
func (b *base) Format() string   { return b.format }
func (b *base) Opts() *Opts      { return &b.opts }

// SepName returns the canonical placeholder spelling for this field.
func (b *base) SepName() string {
	if b.opts.UseFileInfo {
		return fmt.Sprintf("{*!%s*}", b.name)
	}
	return fmt.Sprintf("{*%s*}", b.name)
}

// StoreData returns the sparse persisted form: defaults are omitted.
func (b *base) StoreData() *Data {
	d := &Data{Name: b.name, Type: b.pol.typeName}
	if b.format != "" {
		d.Format = b.format
	}
	d.Prefix = b.opts.Prefix
	d.Suffix = b.opts.Suffix
	d.Init = b.opts.InitDefault
	if b.opts.NumLines != b.pol.defaultLines {
		d.Lines = b.opts.NumLines
	}
	if b.opts.SortKeyNum > 0 {
		d.SortKeyNum = b.opts.SortKeyNum
	}
	if !b.opts.SortKeyForward {
		v := false
		d.SortKeyFwd = &v
	}
	if !b.pol.fixEvalHTML && b.opts.EvalHTML != b.pol.evalHTMLDefault {
		v := b.opts.EvalHTML
		d.EvalHTML = &v
	}
	return d
}

// wrap applies title-mode markup removal and the prefix/suffix.
func (b *base) wrap(value string, ctx RenderContext) string {
	prefix, suffix := b.opts.Prefix, b.opts.Suffix
	if ctx.TitleMode {
		value = RemoveMarkup(value)
		if ctx.FormatHTML {
			prefix = RemoveMarkup(prefix)
			suffix = RemoveMarkup(suffix)
		}
	} else if !ctx.FormatHTML {
		prefix = EscapeHTML(prefix)
		suffix = EscapeHTML(suffix)
	}
	return prefix + value + suffix
}

// default behavior: plain text semantics, overridden per variant

func (b *base) SetFormat(format string) error {
	b.format = format
	return nil
}

func (b *base) FormatOutput(storedText string, ctx RenderContext) string {
	return b.wrap(storedText, ctx)
}

func (b *base) FormatEditorText(storedText string) (string, error) {
	return storedText, nil
}

func (b *base) StoredText(editorText string) (string, error) {
	return editorText, nil
}

func (b *base) MathValue(data map[string]string, zeroBlanks bool) (Value, error) {
	stored := RemoveMarkup(data[b.name])
	if stored == "" && !zeroBlanks {
		return NoVal(), nil
	}
	return TextVal(stored), nil
}

func (b *base) CompareValue(data map[string]string) Value {
	return TextVal(strings.ToLower(RemoveMarkup(data[b.name])))
}

func (b *base) SortKey(data map[string]string) SortKey {
	return SortKey{Rank: rankText, Value: b.CompareValue(data)}
}

func (b *base) AdjustedCompareValue(raw string) Value {
	return TextVal(strings.ToLower(RemoveMarkup(raw)))
}

func (b *base) InitDefaultChoices() []string { return nil }
func (b *base) ComboChoices() []string       { return nil }

func (b *base) fixedEvalHTML() bool { return b.pol.fixEvalHTML }

// OutputText renders a field's value from a node's data. Empty stored
// text renders as the empty string, without prefix or suffix.
func OutputText(f Field, data map[string]string, ctx RenderContext) string {
	stored := data[f.Name()]
	if stored == "" {
		return ""
	}
	return f.FormatOutput(stored, ctx)
}

// EditorText returns a field's value from a node's data in editor form.
func EditorText(f Field, data map[string]string) (string, error) {
	return f.FormatEditorText(data[f.Name()])
}

// SetInitDefault sets the default initial value from editor text.
func SetInitDefault(f Field, editorText string) error {
	stored, err := f.StoredText(editorText)
	if err != nil {
		return err
	}
	f.Opts().InitDefault = stored
	return nil
}

// EditorInitDefault returns the initial value in editor form.
func EditorInitDefault(f Field) (string, error) {
	return f.FormatEditorText(f.Opts().InitDefault)
}
