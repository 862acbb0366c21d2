package workflow

import (
	"fmt"
	"strings"
)

// StepError reports the step that failed. Rollback lists the undo
// failures of the previous steps, if any.
type StepError struct {
	Step     string
	Err      error
	Rollback []error
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// RolledBack is true when every previous step was undone.
func (e *StepError) RolledBack() bool {
	return len(e.Rollback) == 0
}

func (e *StepError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "step '%s' failed: %s", e.Step, e.Err)

	if len(e.Rollback) == 0 {
		return sb.String()
	}

	sb.WriteString(" (rollback failed: ")
	for idx, err := range e.Rollback {
		if idx > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	sb.WriteString(")")

	return sb.String()
}

var _ error = &StepError{}
