package tree

import "errors"

var (
	ErrUnknownUID = errors.New("unknown node uid")
)
