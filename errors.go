package freemail

import "github.com/optimode/freemail/internal/parse"

var (
	// ErrEmptyInput is returned when the email or domain is empty or blank.
	ErrEmptyInput = parse.ErrEmpty

	// ErrInvalidEmail is returned when an address has nothing after its
	// last '@', e.g. "user@".
	ErrInvalidEmail = parse.ErrNoDomain
)
