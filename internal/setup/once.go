package setup

import (
	"context"
	"sync"

	"github.com/bornholm/civicadmin/internal/config"
)

// createFromConfigOnce wraps a factory so that it is only invoked once per
// process, every later call returns the first result.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = factory(ctx, conf)
		})

		return value, err
	}
}
