package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/model"
)

const (
	MessageRequired = "is required"
)

func Required(errs Errors, field string, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, MessageRequired)
		return false
	}
	return true
}

// Email checks the value is a bare email address. Empty values are accepted.
func Email(errs Errors, field string, value string) bool {
	if value == "" {
		return true
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".") {
		errs.Add(field, "must be a valid email address")
		return false
	}

	return true
}

// URL checks the value is an absolute http(s) URL. Empty values are accepted.
func URL(errs Errors, field string, value string) bool {
	if value == "" {
		return true
	}

	u, err := url.ParseRequestURI(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.Add(field, "must be a valid http(s) URL")
		return false
	}

	return true
}

var phoneRegExp = regexp.MustCompile(`^\+?[0-9 ()\-]+$`)

// Phone accepts digits, spaces and the + - ( ) separators with 7 to 20 digits.
// Empty values are accepted.
func Phone(errs Errors, field string, value string) bool {
	if value == "" {
		return true
	}

	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	if !phoneRegExp.MatchString(value) || digits < 7 || digits > 20 {
		errs.Add(field, "must be a valid phone number")
		return false
	}

	return true
}

func OneOf[T ~string](errs Errors, field string, value T, allowed []T) bool {
	if slices.Contains(allowed, value) {
		return true
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}

	errs.Add(field, fmt.Sprintf("must be one of %s", strings.Join(names, ", ")))

	return false
}

func IntRange(errs Errors, field string, value int, min int, max int) bool {
	if value < min || value > max {
		errs.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
		return false
	}
	return true
}

func IntMin(errs Errors, field string, value int, min int) bool {
	if value < min {
		errs.Add(field, fmt.Sprintf("must be greater than or equal to %d", min))
		return false
	}
	return true
}

// DateOrder checks end is not before start when both are set.
func DateOrder(errs Errors, field string, start model.Date, end model.Date) bool {
	if start.IsZero() || end.IsZero() {
		return true
	}

	if end.Before(start) {
		errs.Add(field, "must not be before the start date")
		return false
	}

	return true
}

func RequiredDate(errs Errors, field string, value model.Date) bool {
	if value.IsZero() {
		errs.Add(field, MessageRequired)
		return false
	}
	return true
}

func MinItems[T any](errs Errors, field string, items []T, min int) bool {
	if len(items) < min {
		errs.Add(field, fmt.Sprintf("must contain at least %d items", min))
		return false
	}
	return true
}
