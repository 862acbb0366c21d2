package common

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/wizard"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RunWizard asks every field of every step of w, repeating a step while it
// is invalid, and returns the submitted draft.
func RunWizard[T any](p *Prompter, w *wizard.Wizard[T]) (*T, error) {
	for {
		step := w.Step()

		p.Printf("\nStep %d/%d: %s\n", w.Current(), w.Total(), step.Name)

		for _, field := range step.Fields {
			if err := askField(p, w.Draft(), field); err != nil {
				return nil, errors.WithStack(err)
			}
		}

		if !w.IsLast() {
			if err := w.Next(); err != nil {
				if !printStepError(p, err) {
					return nil, errors.WithStack(err)
				}
			}
			continue
		}

		draft, err := w.Submit()
		if err != nil {
			if !printStepError(p, err) {
				return nil, errors.WithStack(err)
			}
			continue
		}

		return draft, nil
	}
}

func askField(p *Prompter, draft any, field string) error {
	for {
		current, err := FieldValue(draft, field)
		if err != nil {
			return errors.WithStack(err)
		}

		value, err := p.Ask(field, current)
		if err != nil {
			return errors.WithStack(err)
		}

		if value == current {
			return nil
		}

		if err := ApplySets(draft, []string{field + "=" + value}); err != nil {
			p.Printf("  invalid value: %s\n", errors.Cause(err))
			continue
		}

		return nil
	}
}

func printStepError(p *Prompter, err error) bool {
	var stepErr *wizard.StepError
	if !errors.As(err, &stepErr) {
		return false
	}

	p.Printf("Please fix the following fields:\n")

	fields := stepErr.Errors.Fields()
	slices.Sort(fields)

	for _, field := range fields {
		p.Printf("  - %s: %s\n", field, stepErr.Errors[field])
	}

	return true
}

// FieldValue returns the textual value of the "path.to.field" of source.
func FieldValue(source any, path string) (string, error) {
	data, err := yaml.Marshal(source)
	if err != nil {
		return "", errors.WithStack(err)
	}

	var value any = map[string]any{}
	if err := yaml.Unmarshal(data, &value); err != nil {
		return "", errors.WithStack(err)
	}

	for _, key := range strings.Split(path, ".") {
		fields, ok := value.(map[string]any)
		if !ok {
			return "", nil
		}

		value, ok = fields[key]
		if !ok || value == nil {
			return "", nil
		}
	}

	if t, ok := value.(time.Time); ok {
		return t.Format(model.DateLayout), nil
	}

	return fmt.Sprint(value), nil
}
