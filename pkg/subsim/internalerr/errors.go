package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingField  = errors.New("missing field")
	ErrNoInput       = errors.New("no input")
	ErrNotFound      = errors.New("not found")
)
