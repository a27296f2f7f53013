package field

import (
	"cmp"
	"strings"
)

type Kind int

const (
	NoValue Kind = iota
	NumberValue
	BoolValue
	TextValue
)

// Value is a comparison value extracted from a field: text, number or
// boolean, or nothing for a blank field.
type Value struct {
	Kind Kind
	Text string
	Num  float64
	Bool bool
}

func NoVal() Value            { return Value{} }
func TextVal(s string) Value  { return Value{Kind: TextValue, Text: s} }
func NumVal(f float64) Value  { return Value{Kind: NumberValue, Num: f} }
func BoolVal(b bool) Value    { return Value{Kind: BoolValue, Bool: b} }
func (v Value) IsBlank() bool { return v.Kind == NoValue }

// Any returns the value as a plain Go value for expression
// environments; blank values become nil.
func (v Value) Any() any {
	switch v.Kind {
	case TextValue:
		return v.Text
	case NumberValue:
		return v.Num
	case BoolValue:
		return v.Bool
	default:
		return nil
	}
}

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Values of different kinds order by kind.
func Compare(a, b Value) int {
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case NumberValue:
		return cmp.Compare(a.Num, b.Num)
	case BoolValue:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case TextValue:
		return strings.Compare(a.Text, b.Text)
	default:
		return 0
	}
}

// type ranks prefix sort keys so that mixed-type columns order
// numbers before booleans before text
const (
	rankNumber = "20_num"
	rankBool   = "30_bool"
	rankText   = "80_text"
)

// SortKey orders rows across heterogeneous field types: the rank
// string groups by type, the value orders within the type.
type SortKey struct {
	Rank  string
	Value Value
}

// CompareSortKeys returns an integer comparing two sort keys.
func CompareSortKeys(a, b SortKey) int {
	if c := strings.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return Compare(a.Value, b.Value)
}
