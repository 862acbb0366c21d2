package port

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalid      = errors.New("invalid")
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrCanceled     = errors.New("canceled")
)
