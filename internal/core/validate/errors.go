package validate

import (
	"slices"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/port"
)

// Errors maps a field name to the reason it was rejected.
type Errors map[string]string

func (e Errors) Add(field string, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}

func (e Errors) Merge(other Errors) {
	for field, message := range other {
		e.Add(field, message)
	}
}

// Only returns the subset of errors concerning the given fields.
func (e Errors) Only(fields ...string) Errors {
	subset := Errors{}
	for _, f := range fields {
		if message, exists := e[f]; exists {
			subset[f] = message
		}
	}
	return subset
}

func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Err returns nil when there are no errors.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// Error implements error.
func (e Errors) Error() string {
	var sb strings.Builder
	for idx, f := range e.Fields() {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f)
		sb.WriteString(": ")
		sb.WriteString(e[f])
	}
	return sb.String()
}

func (e Errors) Is(target error) bool {
	return target == port.ErrInvalid
}

var _ error = Errors{}
