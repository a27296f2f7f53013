package field

import (
	"fmt"

	"github.com/outline-format/go-outline/numlit"
)

// numberField formats numbers through the numeric literal service,
// using the field format as the pattern.
type numberField struct{ base }

func newNumberField(name string, d *Data) (Field, error) {
	f := &numberField{base: newBase(name, policy{
		typeName:      "Number",
		defaultFormat: "#.##",
		defaultLines:  1,
		fixEvalHTML:   true,
	})}
	f.applyData(d)
	if err := f.SetFormat(f.dataFormat(d)); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *numberField) SetFormat(format string) error {
	if err := numlit.CheckPattern(format); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	f.format = format
	return nil
}

func (f *numberField) FormatOutput(storedText string, ctx RenderContext) string {
	text := ErrorMarker
	if n, err := numlit.Parse(storedText); err == nil {
		if s, err := n.Format(f.format); err == nil {
			text = s
		}
	}
	return f.wrap(text, ctx)
}

func (f *numberField) FormatEditorText(storedText string) (string, error) {
	if storedText == "" {
		return "", nil
	}
	n, err := numlit.Parse(storedText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	s, err := n.Format(f.format)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s, nil
}

func (f *numberField) StoredText(editorText string) (string, error) {
	if editorText == "" {
		return "", nil
	}
	n, err := numlit.ParseWithPattern(editorText, f.format)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return n.String(), nil
}

func (f *numberField) StoredTextFromTitle(titleText string) (string, error) {
	return f.StoredText(titleText)
}

func (f *numberField) MathValue(data map[string]string, zeroBlanks bool) (Value, error) {
	stored := data[f.name]
	if stored == "" {
		if zeroBlanks {
			return NumVal(0), nil
		}
		return NoVal(), nil
	}
	n, err := numlit.Parse(stored)
	if err != nil {
		return NoVal(), fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return NumVal(n.Float64()), nil
}

func (f *numberField) CompareValue(data map[string]string) Value {
	n, err := numlit.Parse(data[f.name])
	if err != nil {
		return NumVal(0)
	}
	return NumVal(n.Float64())
}

func (f *numberField) SortKey(data map[string]string) SortKey {
	return SortKey{Rank: rankNumber, Value: f.CompareValue(data)}
}

func (f *numberField) AdjustedCompareValue(raw string) Value {
	n, err := numlit.Parse(raw)
	if err != nil {
		return NumVal(0)
	}
	return NumVal(n.Float64())
}
