package treeio

import "errors"

var (
	ErrDocument      = errors.New("bad document")
	ErrUnknownFormat = errors.New("unknown node format")
)
