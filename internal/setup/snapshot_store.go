package setup

import (
	"context"

	gormAdapter "github.com/bornholm/civicadmin/internal/adapter/gorm"
	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/pkg/errors"
)

var getSnapshotStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.SnapshotStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not open snapshot database")
	}

	return gormAdapter.NewSnapshotStore(db), nil
})

var getSnapshotManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.SnapshotManager, error) {
	collector, err := getCollectorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store, err := getSnapshotStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewSnapshotManager(collector, store, conf.Report.Concurrency), nil
})

func NewSnapshotManagerFromConfig(ctx context.Context, conf *config.Config) (*service.SnapshotManager, error) {
	return getSnapshotManagerFromConfig(ctx, conf)
}
