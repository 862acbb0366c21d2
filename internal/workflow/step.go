package workflow

import "context"

// Step is one remote action of a multi-call operation. Undo reverts Do
// and may be nil when nothing needs reverting.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

func (s Step) do(ctx context.Context) error {
	if s.Do == nil {
		return nil
	}

	return s.Do(ctx)
}

func (s Step) undo(ctx context.Context) error {
	if s.Undo == nil {
		return nil
	}

	return s.Undo(ctx)
}
