package companies

import "errors"

var (
	ErrNotFound     = errors.New("company not found")
	ErrInvalidInput = errors.New("invalid company input")
)
