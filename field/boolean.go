package field

import (
	"fmt"

	"github.com/outline-format/go-outline/boollit"
)

// booleanField formats booleans through the boolean literal service,
// using the field format as the true/false token pair.
type booleanField struct {
	base
	tokens []string
}

func newBooleanField(name string, d *Data) (Field, error) {
	f := &booleanField{base: newBase(name, policy{
		typeName:      "Boolean",
		defaultFormat: "yes/no",
		defaultLines:  1,
		fixEvalHTML:   true,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *booleanField) SetFormat(format string) error {
	tr, fa, err := boollit.Tokens(format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	f.format = format
	f.tokens = []string{tr, fa}
	return nil
}

func (f *booleanField) FormatOutput(storedText string, ctx RenderContext) string {
	text := ErrorMarker
	if v, err := boollit.Parse(storedText); err == nil {
		if s, err := boollit.Format(v, f.format); err == nil {
			text = s
		}
	}
	return f.wrap(text, ctx)
}

func (f *booleanField) FormatEditorText(storedText string) (string, error) {
	if storedText == "" {
		return "", nil
	}
	v, err := boollit.Parse(storedText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	s, err := boollit.Format(v, f.format)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s, nil
}

func (f *booleanField) StoredText(editorText string) (string, error) {
	if editorText == "" {
		return "", nil
	}
	v, err := boollit.ParseWithFormat(editorText, f.format)
	if err != nil {
		// tolerate any common boolean spelling
		v, err = boollit.Parse(editorText)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return boollit.String(v), nil
}

func (f *booleanField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(titleText)
}

func (f *booleanField) MathValue(data map[string]string, zeroBlanks bool) (Value, error) {
	stored := data[f.name]
	if stored == "" {
		if zeroBlanks {
			return BoolVal(false), nil
		}
		return NoVal(), nil
	}
	v, err := boollit.Parse(stored)
	if err != nil {
		return NoVal(), fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return BoolVal(v), nil
}

func (f *booleanField) CompareValue(data map[string]string) Value {
	v, err := boollit.Parse(data[f.name])
	if err != nil {
		return BoolVal(false)
	}
	return BoolVal(v)
}

func (f *booleanField) SortKey(data map[string]string) SortKey {
	return SortKey{Rank: rankBool, Value: f.CompareValue(data)}
}

func (f *booleanField) AdjustedCompareValue(raw string) Value {
	v, err := boollit.ParseWithFormat(raw, f.format)
	if err != nil {
		v, err = boollit.Parse(raw)
	}
	if err != nil {
		return BoolVal(false)
	}
	return BoolVal(v)
}

func (f *booleanField) InitDefaultChoices() []string {
	res := make([]string, len(f.tokens))
	copy(res, f.tokens)
	return res
}

func (f *booleanField) ComboChoices() []string {
	return f.InitDefaultChoices()
}
