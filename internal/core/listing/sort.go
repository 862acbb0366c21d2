package listing

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

type SortKey[T any] struct {
	Name    string
	Compare func(a, b T) int
}

type SortKeys[T any] []SortKey[T]

func (k SortKeys[T]) Names() []string {
	names := make([]string, len(k))
	for i, key := range k {
		names[i] = key.Name
	}
	return names
}

func (k SortKeys[T]) Get(name string) (SortKey[T], error) {
	for _, key := range k {
		if key.Name == name {
			return key, nil
		}
	}

	return SortKey[T]{}, errors.Wrapf(ErrUnknownSortKey, "'%s' (allowed: %s)", name, strings.Join(k.Names(), ", "))
}

// ParseSort splits a sort expression like "name" or "-name" into the key
// name and the direction.
func ParseSort(expr string) (string, bool) {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "-") {
		return expr[1:], true
	}
	return strings.TrimPrefix(expr, "+"), false
}

// Sort stably sorts items in place by the named key. An empty name leaves
// the items untouched.
func Sort[T any](items []T, keys SortKeys[T], name string, descending bool) error {
	if name == "" {
		return nil
	}

	key, err := keys.Get(name)
	if err != nil {
		return errors.WithStack(err)
	}

	slices.SortStableFunc(items, func(a, b T) int {
		if descending {
			return key.Compare(b, a)
		}
		return key.Compare(a, b)
	})

	return nil
}

func ByString[T any](name string, field func(T) string) SortKey[T] {
	return SortKey[T]{
		Name: name,
		Compare: func(a, b T) int {
			return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
		},
	}
}

func ByOrdered[T any, V cmp.Ordered](name string, field func(T) V) SortKey[T] {
	return SortKey[T]{
		Name: name,
		Compare: func(a, b T) int {
			return cmp.Compare(field(a), field(b))
		},
	}
}

// ByDate sorts unset dates last in ascending order.
func ByDate[T any](name string, field func(T) model.Date) SortKey[T] {
	return SortKey[T]{
		Name: name,
		Compare: func(a, b T) int {
			da, db := field(a), field(b)
			switch {
			case da.IsZero() && db.IsZero():
				return 0
			case da.IsZero():
				return 1
			case db.IsZero():
				return -1
			default:
				return da.Compare(db.Time)
			}
		},
	}
}
