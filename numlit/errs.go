package numlit

import "errors"

var (
	ErrNumber     = errors.New("bad number")
	ErrBadPattern = errors.New("bad number pattern")
)
