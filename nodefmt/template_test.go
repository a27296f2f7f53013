package nodefmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/outline-format/go-outline/field"
)

func testFields(t *testing.T, datas ...*field.Data) map[string]field.Field {
	t.Helper()
	res := map[string]field.Field{}
	for _, d := range datas {
		f, err := field.New(d)
		if err != nil {
			t.Fatal(err)
		}
		res[f.Name()] = f
	}
	return res
}

type parseTest struct {
	in   string
	want template
}

func TestParseLine(t *testing.T) {
	fields := testFields(t, &field.Data{Name: "Name"}, &field.Data{Name: "Date"})
	tests := []parseTest{
		{
			in: "{*Name*} - {*Date*}",
			want: template{
				{fieldName: "Name"},
				{text: " - "},
				{fieldName: "Date"},
			},
		},
		{
			// unknown field names pass through as literal text
			in: "{*Nope*}x",
			want: template{
				{text: "{*Nope*}"},
				{text: "x"},
			},
		},
		{
			// modifiers are reserved and inert
			in: "{*?Name*}",
			want: template{
				{text: "{*?Name*}"},
			},
		},
		{
			// whitespace runs collapse on parse
			in: "a   b {*Name*}",
			want: template{
				{text: "a b "},
				{fieldName: "Name"},
			},
		},
		{in: "", want: nil},
	}
	for _, tc := range tests {
		got := parseLine(tc.in, fields)
		if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(segment{})); diff != "" {
			t.Errorf("parseLine(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	fields := testFields(t, &field.Data{Name: "Name"}, &field.Data{Name: "Date"})
	lines := []string{
		"{*Name*} - {*Date*}",
		"{*Name*}: {*Date*}",
		"plain text only",
		"{*Nope*} {*Name*}",
	}
	for _, line := range lines {
		got := parseLine(line, fields).serialize(fields)
		if got != line {
			t.Errorf("round trip %q -> %q", line, got)
		}
	}
}
