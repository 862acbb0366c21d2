package listing

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/redmatter/go-globre/v2"
)

type Predicate[T any] func(item T) bool

// Filter returns the items matching every predicate, preserving order.
func Filter[T any](items []T, predicates ...Predicate[T]) []T {
	filtered := make([]T, 0, len(items))

	for _, item := range items {
		if matchAll(item, predicates) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func matchAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Search matches items having query as a case-insensitive substring of any
// of the given fields. An empty query matches everything.
func Search[T any](query string, fields ...func(T) string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))

	return func(item T) bool {
		if query == "" {
			return true
		}

		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), query) {
				return true
			}
		}

		return false
	}
}

// Glob matches items whose field matches the shell-style pattern, ignoring
// case. Extended syntax ("{a,b}") and globstar are enabled.
func Glob[T any](pattern string, field func(T) string) (Predicate[T], error) {
	if pattern == "" {
		return func(item T) bool { return true }, nil
	}

	rawRegExp := globre.RegexFromGlob(
		pattern,
		globre.ExtendedSyntaxEnabled(true),
		globre.GlobStarEnabled(true),
		globre.WithDelimiter('/'),
	)

	re, err := regexp.Compile("(?i)" + rawRegExp)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse glob pattern '%s'", pattern)
	}

	return func(item T) bool {
		return re.MatchString(field(item))
	}, nil
}

// Equal matches items whose field equals value. An empty value matches
// everything.
func Equal[T any, V comparable](value V, field func(T) V) Predicate[T] {
	var zero V
	return func(item T) bool {
		if value == zero {
			return true
		}
		return field(item) == value
	}
}
