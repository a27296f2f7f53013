package numlit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number holds a parsed numeric literal, keeping integers exact.
type Number struct {
	i *int64
	f *float64
}

func FromInt(v int64) Number {
	return Number{i: &v}
}

func FromFloat(v float64) Number {
	return Number{f: &v}
}

// Parse reads a free-form numeric literal, integer if possible.
func Parse(s string) (Number, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Number{}, fmt.Errorf("%w: empty text", ErrNumber)
	}
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return FromFloat(f), nil
}

func (n Number) IsInt() bool {
	return n.i != nil
}

func (n Number) Float64() float64 {
	if n.i != nil {
		return float64(*n.i)
	}
	if n.f != nil {
		return *n.f
	}
	return 0
}

// String returns the canonical stored form.
func (n Number) String() string {
	if n.i != nil {
		return strconv.FormatInt(*n.i, 10)
	}
	if n.f != nil {
		return strconv.FormatFloat(*n.f, 'g', -1, 64)
	}
	return "0"
}

type tokKind int

const (
	digitOpt tokKind = iota
	digitReq
	sep
)

type tok struct {
	kind tokKind
	ch   byte
}

type pattern struct {
	whole   []tok
	frac    []tok
	exp     []tok
	radix   byte
	expMark byte
	reqSign bool
	optSign bool
}

// CheckPattern reports whether the pattern is usable.
func CheckPattern(s string) error {
	_, err := parsePattern(s)
	return err
}

func parsePattern(s string) (*pattern, error) {
	p := &pattern{}
	cur := &p.whole
	digits := 0
	i := 0
	for i < len(s) {
		c := s[i]
		i++
		switch {
		case c == '\\':
			if i == len(s) {
				return nil, fmt.Errorf("%w: trailing backslash in %q", ErrBadPattern, s)
			}
			*cur = append(*cur, tok{kind: sep, ch: s[i]})
			i++
		case c == '#':
			*cur = append(*cur, tok{kind: digitOpt})
			digits++
		case c == '0':
			*cur = append(*cur, tok{kind: digitReq})
			digits++
		case c == '-':
			p.optSign = true
		case c == '+':
			p.reqSign = true
		case c == '.' || c == ',':
			if p.expMark != 0 {
				return nil, fmt.Errorf("%w: decimal point after exponent in %q", ErrBadPattern, s)
			}
			if p.radix != 0 {
				return nil, fmt.Errorf("%w: multiple decimal points in %q", ErrBadPattern, s)
			}
			p.radix = c
			cur = &p.frac
		case c == 'e' || c == 'E':
			if p.expMark != 0 {
				return nil, fmt.Errorf("%w: multiple exponent markers in %q", ErrBadPattern, s)
			}
			p.expMark = c
			cur = &p.exp
		default:
			*cur = append(*cur, tok{kind: sep, ch: c})
		}
	}
	if digits == 0 {
		return nil, fmt.Errorf("%w: no digit slots in %q", ErrBadPattern, s)
	}
	return p, nil
}

func (p *pattern) sepChars() map[byte]bool {
	res := map[byte]bool{' ': true}
	for _, list := range [][]tok{p.whole, p.frac, p.exp} {
		for _, t := range list {
			if t.kind == sep {
				res[t.ch] = true
			}
		}
	}
	return res
}

// Format renders n according to the pattern.
func (n Number) Format(patternStr string) (string, error) {
	p, err := parsePattern(patternStr)
	if err != nil {
		return "", err
	}
	if p.expMark != 0 {
		return p.formatExp(n), nil
	}
	return p.formatDecimal(n), nil
}

func (p *pattern) formatDecimal(n Number) string {
	neg := n.Float64() < 0
	whole, frac := p.splitDigits(n)
	res := p.buildWhole(whole) + p.buildFrac(frac)
	if neg {
		return "-" + res
	}
	if p.reqSign {
		return "+" + res
	}
	return res
}

// splitDigits returns the whole and fraction digit strings for the
// absolute value, with the fraction rounded to the available slots.
func (p *pattern) splitDigits(n Number) (string, string) {
	slots := countDigits(p.frac)
	if n.IsInt() && slots == 0 {
		v := *n.i
		if v < 0 {
			v = -v
		}
		return strconv.FormatInt(v, 10), ""
	}
	s := strconv.FormatFloat(math.Abs(n.Float64()), 'f', slots, 64)
	whole, frac, _ := strings.Cut(s, ".")
	return whole, frac
}

func countDigits(toks []tok) int {
	res := 0
	for _, t := range toks {
		if t.kind != sep {
			res++
		}
	}
	return res
}

func (p *pattern) buildWhole(digits string) string {
	minDigits := 0
	for _, t := range p.whole {
		if t.kind == digitReq {
			minDigits++
		}
	}
	for len(digits) < minDigits {
		digits = "0" + digits
	}
	var rev []byte
	di := len(digits)
	for i := len(p.whole) - 1; i >= 0; i-- {
		t := p.whole[i]
		switch t.kind {
		case sep:
			if di > 0 {
				rev = append(rev, t.ch)
			}
		default:
			if di > 0 {
				di--
				rev = append(rev, digits[di])
			}
		}
	}
	var b strings.Builder
	// digits wider than the pattern keep their leading part
	b.WriteString(digits[:di])
	for i := len(rev) - 1; i >= 0; i-- {
		b.WriteByte(rev[i])
	}
	return b.String()
}

func (p *pattern) buildFrac(digits string) string {
	if countDigits(p.frac) == 0 || digits == "" {
		return ""
	}
	// drop trailing zeros sitting in optional slots
	kinds := make([]tokKind, 0, len(digits))
	for _, t := range p.frac {
		if t.kind != sep {
			kinds = append(kinds, t.kind)
		}
	}
	end := len(digits)
	for end > 0 && digits[end-1] == '0' && kinds[end-1] == digitOpt {
		end--
	}
	digits = digits[:end]
	if digits == "" {
		return ""
	}
	var b strings.Builder
	b.WriteByte(p.radix)
	di := 0
	for _, t := range p.frac {
		if t.kind == sep {
			if di < len(digits) {
				b.WriteByte(t.ch)
			}
			continue
		}
		if di == len(digits) {
			break
		}
		b.WriteByte(digits[di])
		di++
	}
	return b.String()
}

func (p *pattern) formatExp(n Number) string {
	f := n.Float64()
	exp := 0
	if f != 0 {
		exp = int(math.Floor(math.Log10(math.Abs(f))))
		f = f / math.Pow(10, float64(exp))
	}
	mant := p.formatDecimal(FromFloat(f))
	expDigits := strconv.Itoa(exp)
	if exp < 0 {
		expDigits = expDigits[1:]
	}
	minDigits := 0
	for _, t := range p.exp {
		if t.kind == digitReq {
			minDigits++
		}
	}
	for len(expDigits) < minDigits {
		expDigits = "0" + expDigits
	}
	sign := ""
	if exp < 0 {
		sign = "-"
	}
	return mant + string(p.expMark) + sign + expDigits
}

// ParseWithPattern reads text entered against the pattern, tolerating
// the pattern's group separators and decimal convention.
func ParseWithPattern(s, patternStr string) (Number, error) {
	p, err := parsePattern(patternStr)
	if err != nil {
		return Number{}, err
	}
	seps := p.sepChars()
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case seps[c] && c != p.radix:
			// dropped group separator
		case c == ',' && p.radix == ',':
			b.WriteByte('.')
		default:
			b.WriteByte(c)
		}
	}
	t := strings.TrimPrefix(b.String(), "+")
	return Parse(t)
}
