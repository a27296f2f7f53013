package field

import "fmt"

// constructors for the closed set of field type variants
var registry = map[string]func(name string, d *Data) (Field, error){
	"Text":              newTextField,
	"HtmlText":          newHTMLTextField,
	"OneLineText":       newOneLineTextField,
	"SpacedText":        newSpacedTextField,
	"Number":            newNumberField,
	"Boolean":           newBooleanField,
	"Choice":            newChoiceField,
	"Combination":       newCombinationField,
	"RegularExpression": newRegExpField,
}

// TypeNames lists the field type names in presentation order.
func TypeNames() []string {
	return []string{
		"Text",
		"HtmlText",
		"OneLineText",
		"SpacedText",
		"Number",
		"Boolean",
		"Choice",
		"Combination",
		"RegularExpression",
	}
}

// New builds a field from its persisted dictionary. An unknown type
// name fails with ErrFormat rather than defaulting.
func New(d *Data) (Field, error) {
	if d == nil || d.Name == "" {
		return nil, fmt.Errorf("%w: missing field name", ErrFormat)
	}
	typeName := d.Type
	if typeName == "" {
		typeName = "Text"
	}
	ctor, ok := registry[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: unknown field type %q", ErrFormat, typeName)
	}
	return ctor(d.Name, d)
}

// NewByType builds a field of the named type with its default format.
func NewByType(typeName, name string) (Field, error) {
	return New(&Data{Name: name, Type: typeName})
}

// ChangeType rebuilds f as a different variant, preserving the name
// and presentation options. The format resets to the new variant's
// default; the html-eval setting carries over only when the new
// variant leaves it editable.
func ChangeType(f Field, typeName string) (Field, error) {
	nf, err := NewByType(typeName, f.Name())
	if err != nil {
		return nil, err
	}
	o, n := f.Opts(), nf.Opts()
	n.Prefix = o.Prefix
	n.Suffix = o.Suffix
	n.InitDefault = o.InitDefault
	n.NumLines = o.NumLines
	n.SortKeyNum = o.SortKeyNum
	n.SortKeyForward = o.SortKeyForward
	n.UseFileInfo = o.UseFileInfo
	if !nf.fixedEvalHTML() && n.EvalHTML != o.EvalHTML {
		n.EvalHTML = o.EvalHTML
		// rebuild derived state under the carried-over setting
		if err := nf.SetFormat(nf.Format()); err != nil {
			return nil, err
		}
	}
	return nf, nil
}
