package workflow

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

// Run executes the steps in order. When a step fails, the steps completed
// before it are undone in reverse order and a *StepError is returned.
func Run(ctx context.Context, steps ...Step) error {
	for idx, step := range steps {
		slog.DebugContext(ctx, "running step", slog.String("step", step.Name))

		if err := step.do(ctx); err != nil {
			stepErr := &StepError{
				Step:     step.Name,
				Err:      err,
				Rollback: rollback(ctx, steps[:idx]),
			}

			return errors.WithStack(stepErr)
		}
	}

	return nil
}

func rollback(ctx context.Context, done []Step) []error {
	var errs []error

	for idx := len(done) - 1; idx >= 0; idx-- {
		step := done[idx]

		slog.DebugContext(ctx, "undoing step", slog.String("step", step.Name))

		if err := step.undo(ctx); err != nil {
			slog.ErrorContext(ctx, "could not undo step", slog.String("step", step.Name), slogx.Error(errors.WithStack(err)))
			errs = append(errs, errors.Wrapf(err, "undo '%s'", step.Name))
		}
	}

	return errs
}
