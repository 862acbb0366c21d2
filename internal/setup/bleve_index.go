package setup

import (
	"context"

	bleveAdapter "github.com/bornholm/civicadmin/internal/adapter/bleve"
	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/pkg/errors"
)

func newBleveIndex(ctx context.Context) (port.Index, error) {
	index, err := bleveAdapter.NewMemoryIndex()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return index, nil
}

var getSearchManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.SearchManager, error) {
	collector, err := getCollectorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewSearchManager(collector, newBleveIndex), nil
})

func NewSearchManagerFromConfig(ctx context.Context, conf *config.Config) (*service.SearchManager, error) {
	return getSearchManagerFromConfig(ctx, conf)
}
