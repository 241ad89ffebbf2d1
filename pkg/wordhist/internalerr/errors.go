package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrEmptyInput    = errors.New("empty input")
	ErrNoText        = errors.New("no text supplied yet")
)
