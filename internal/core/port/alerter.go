package port

import "context"

// Alerter surfaces the outcome of a user action, the way a blocking
// alert dialog would.
type Alerter interface {
	Success(ctx context.Context, title string, message string)
	Failure(ctx context.Context, title string, err error)
}
