package applications

import "errors"

var (
	ErrNotFound        = errors.New("application not found")
	ErrPostingNotFound = errors.New("job posting not found")
	ErrPostingClosed   = errors.New("job posting is closed")
	ErrInvalidInput    = errors.New("invalid application input")
)
