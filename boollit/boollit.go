// Package boollit parses and formats boolean literals against a
// true/false token-pair format such as "yes/no", "T/F" or "1/0".
package boollit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBoolean   = errors.New("bad boolean")
	ErrBadFormat = errors.New("bad boolean format")
)

// free-form spellings accepted without a format
var freeForm = map[string]bool{
	"true": true, "t": true, "yes": true, "y": true, "1": true,
	"false": false, "f": false, "no": false, "n": false, "0": false,
}

// Parse reads a boolean from the common spellings, case-insensitive.
func Parse(s string) (bool, error) {
	v, ok := freeForm[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrBoolean, s)
	}
	return v, nil
}

// Tokens splits a format into its true and false tokens.
func Tokens(format string) (string, string, error) {
	parts := strings.Split(format, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q needs one true and one false token", ErrBadFormat, format)
	}
	tr := strings.TrimSpace(parts[0])
	fa := strings.TrimSpace(parts[1])
	if tr == "" || fa == "" {
		return "", "", fmt.Errorf("%w: %q has an empty token", ErrBadFormat, format)
	}
	return tr, fa, nil
}

// CheckFormat reports whether the format is usable.
func CheckFormat(format string) error {
	_, _, err := Tokens(format)
	return err
}

// Format renders v using the format's token pair.
func Format(v bool, format string) (string, error) {
	tr, fa, err := Tokens(format)
	if err != nil {
		return "", err
	}
	if v {
		return tr, nil
	}
	return fa, nil
}

// ParseWithFormat matches s against the format's token pair,
// case-insensitive.
func ParseWithFormat(s, format string) (bool, error) {
	tr, fa, err := Tokens(format)
	if err != nil {
		return false, err
	}
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case strings.ToLower(tr):
		return true, nil
	case strings.ToLower(fa):
		return false, nil
	}
	return false, fmt.Errorf("%w: %q does not match %q", ErrBoolean, s, format)
}

// String returns the canonical stored form.
func String(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
