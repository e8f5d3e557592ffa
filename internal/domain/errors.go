package domain

import "errors"

var (
	ErrEmptyUsername  = errors.New("username cannot be empty")
	ErrCorruptSession = errors.New("failed to read session cookie")
	ErrInvalidPattern = errors.New("invalid path pattern")
)
