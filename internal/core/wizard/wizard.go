package wizard

import (
	"fmt"

	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/pkg/errors"
)

var (
	ErrLastStep    = errors.New("already at the last step")
	ErrNotLastStep = errors.New("submit is only allowed from the last step")
)

type Step[T any] struct {
	Name     string
	Fields   []string
	Validate func(draft *T) validate.Errors
}

// StepError reports the validation failures of a step.
type StepError struct {
	Step   int
	Name   string
	Errors validate.Errors
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Step, e.Name, e.Errors.Error())
}

func (e *StepError) Unwrap() error {
	return e.Errors
}

// Wizard walks a draft through ordered steps. Steps are numbered from 1.
type Wizard[T any] struct {
	draft   *T
	steps   []Step[T]
	current int
}

func (w *Wizard[T]) Draft() *T {
	return w.draft
}

func (w *Wizard[T]) Current() int {
	return w.current
}

func (w *Wizard[T]) Total() int {
	return len(w.steps)
}

func (w *Wizard[T]) Step() Step[T] {
	return w.steps[w.current-1]
}

func (w *Wizard[T]) Steps() []Step[T] {
	return w.steps
}

func (w *Wizard[T]) IsLast() bool {
	return w.current == len(w.steps)
}

// Next validates the current step and moves forward when it is valid.
func (w *Wizard[T]) Next() error {
	if err := w.validateStep(w.current); err != nil {
		return errors.WithStack(err)
	}

	if w.IsLast() {
		return errors.WithStack(ErrLastStep)
	}

	w.current++

	return nil
}

// Back moves to the previous step without validating. It returns false on
// the first step.
func (w *Wizard[T]) Back() bool {
	if w.current <= 1 {
		return false
	}

	w.current--

	return true
}

// Submit validates every step and returns the draft. On failure the
// wizard is moved back to the first invalid step.
func (w *Wizard[T]) Submit() (*T, error) {
	if !w.IsLast() {
		return nil, errors.WithStack(ErrNotLastStep)
	}

	for idx := range w.steps {
		if err := w.validateStep(idx + 1); err != nil {
			w.current = idx + 1
			return nil, errors.WithStack(err)
		}
	}

	return w.draft, nil
}

func (w *Wizard[T]) validateStep(number int) error {
	step := w.steps[number-1]
	if step.Validate == nil {
		return nil
	}

	errs := step.Validate(w.draft)
	if errs.Empty() {
		return nil
	}

	return &StepError{
		Step:   number,
		Name:   step.Name,
		Errors: errs,
	}
}

func New[T any](draft *T, steps ...Step[T]) *Wizard[T] {
	if len(steps) == 0 {
		panic("wizard: at least one step is required")
	}

	return &Wizard[T]{
		draft:   draft,
		steps:   steps,
		current: 1,
	}
}
