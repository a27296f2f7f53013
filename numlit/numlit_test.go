package numlit

import (
	"errors"
	"testing"
)

type fmtTest struct {
	in      string
	pattern string
	out     string
}

func TestFormat(t *testing.T) {
	var fts = []fmtTest{
		{in: "5", pattern: "#.##", out: "5"},
		{in: "5.2", pattern: "#.##", out: "5.2"},
		{in: "5.258", pattern: "#.##", out: "5.26"},
		{in: "5", pattern: "0.00", out: "5.00"},
		{in: "0.5", pattern: "#.##", out: "0.5"},
		{in: "-5.2", pattern: "#.##", out: "-5.2"},
		{in: "5.2", pattern: "+#.##", out: "+5.2"},
		{in: "1234567", pattern: `#\,###\,###`, out: "1,234,567"},
		{in: "1234.5", pattern: `#\.##0,00`, out: "1.234,50"},
		{in: "42", pattern: "0000", out: "0042"},
		{in: "1234567", pattern: "#.##", out: "1234567"},
		{in: "12000", pattern: "0.00E0", out: "1.20E4"},
		{in: "0.00012", pattern: "#.##e0", out: "1.2e-4"},
	}
	for _, ft := range fts {
		n, err := Parse(ft.in)
		if err != nil {
			t.Error(err)
			continue
		}
		got, err := n.Format(ft.pattern)
		if err != nil {
			t.Error(err)
			continue
		}
		if got != ft.out {
			t.Errorf("format %q with %q: got %q want %q", ft.in, ft.pattern, got, ft.out)
		}
	}
}

func TestParseWithPattern(t *testing.T) {
	var pts = []fmtTest{
		{in: "1,234,567", pattern: `#\,###\,###`, out: "1234567"},
		{in: "1.234,5", pattern: `#\.##0,00`, out: "1234.5"},
		{in: "+5", pattern: "+#.##", out: "5"},
		{in: "5.25", pattern: "#.##", out: "5.25"},
		{in: "1e3", pattern: "#.##", out: "1000"},
	}
	for _, pt := range pts {
		n, err := ParseWithPattern(pt.in, pt.pattern)
		if err != nil {
			t.Error(err)
			continue
		}
		if n.String() != pt.out {
			t.Errorf("parse %q with %q: got %q want %q", pt.in, pt.pattern, n.String(), pt.out)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "12a"} {
		if _, err := Parse(in); !errors.Is(err, ErrNumber) {
			t.Errorf("parse %q: got %v want ErrNumber", in, err)
		}
	}
}

func TestBadPatterns(t *testing.T) {
	for _, pat := range []string{"", "###,###.##0,0", "abc", `#\`} {
		if err := CheckPattern(pat); !errors.Is(err, ErrBadPattern) {
			t.Errorf("pattern %q: got %v want ErrBadPattern", pat, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{"5", "-12", "5.25", "1e+20"} {
		n, err := Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		m, err := Parse(n.String())
		if err != nil {
			t.Fatal(err)
		}
		if m.String() != n.String() {
			t.Errorf("round trip %q: got %q", in, m.String())
		}
	}
}
