package nodefmt

import "errors"

var (
	ErrUnknownField = errors.New("unknown field")
)
