package review

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid review input")
	ErrSessionNotFound = errors.New("review session not found")
)
