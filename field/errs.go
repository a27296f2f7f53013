package field

import "errors"

var (
	// ErrFormat reports an invalid format specifier or field type.
	ErrFormat = errors.New("bad field format")

	// ErrValidation reports a value that does not conform to an
	// otherwise valid format.
	ErrValidation = errors.New("invalid field data")
)

// ErrorMarker is substituted for a value that cannot be rendered.
const ErrorMarker = "#####"
