package service

import (
	"context"
	"sort"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/pkg/errors"
)

const (
	MessageGeneric        = "Something went wrong. Please try again."
	MessageSessionExpired = "Your session has expired, please log in again."
	MessageNotLoggedIn    = "You are not logged in, please log in first."
	MessageForbidden      = "You are not allowed to perform this action."
	MessageNotFound       = "The requested item does not exist anymore."
	MessageBadCredentials = "Invalid email or password."
)

// AlertedError marks an error the operator has already been told about.
type AlertedError struct {
	Title string
	Err   error
}

func (e *AlertedError) Error() string {
	return e.Title + ": " + e.Err.Error()
}

func (e *AlertedError) Unwrap() error {
	return e.Err
}

func IsAlerted(err error) bool {
	var alerted *AlertedError
	return errors.As(err, &alerted)
}

// fieldErrors is implemented by backend validation errors.
type fieldErrors interface {
	FieldErrors() map[string]string
}

// UserMessage returns the message shown to the operator for err.
func UserMessage(err error) string {
	var errs validate.Errors
	if errors.As(err, &errs) {
		return errs.Error()
	}

	switch {
	case errors.Is(err, ErrBadCredentials):
		return MessageBadCredentials
	case errors.Is(err, port.ErrNotLoggedIn):
		return MessageNotLoggedIn
	case errors.Is(err, port.ErrUnauthorized):
		return MessageSessionExpired
	case errors.Is(err, port.ErrForbidden):
		return MessageForbidden
	case errors.Is(err, port.ErrInvalid):
		var withFields fieldErrors
		if errors.As(err, &withFields) && len(withFields.FieldErrors()) > 0 {
			return formatFields(withFields.FieldErrors())
		}
		return MessageGeneric
	case errors.Is(err, port.ErrNotFound):
		return MessageNotFound
	default:
		return MessageGeneric
	}
}

func formatFields(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + fields[name]
	}

	return strings.Join(parts, ", ")
}

type alerts struct {
	alerter port.Alerter
}

func (a alerts) fail(ctx context.Context, title string, err error) error {
	a.alerter.Failure(ctx, title, err)
	return errors.WithStack(&AlertedError{Title: title, Err: err})
}

func (a alerts) succeed(ctx context.Context, title string, message string) {
	a.alerter.Success(ctx, title, message)
}
