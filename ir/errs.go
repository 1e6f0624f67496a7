package ir

import "errors"

var (
	ErrNotSection = errors.New("not a section")
	ErrHasParent  = errors.New("node already has a parent")
	ErrIndex      = errors.New("index out of range")
)
