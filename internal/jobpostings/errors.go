package jobpostings

import "errors"

var (
	ErrNotFound     = errors.New("job posting not found")
	ErrInvalidInput = errors.New("invalid job posting input")
)
