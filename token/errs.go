package token

import "errors"

var (
	ErrRead = errors.New("read error")
)
