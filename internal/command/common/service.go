package common

import (
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/bornholm/civicadmin/internal/setup"
	"github.com/bornholm/civicadmin/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func GetClient(ctx *cli.Context) (*client.Client, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	apiClient, err := setup.NewClientFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create client")
	}

	return apiClient, nil
}

func GetPoliticianManager(ctx *cli.Context) (*service.PoliticianManager, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	manager, err := setup.NewPoliticianManagerFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create politician manager")
	}

	return manager, nil
}

func GetLearningManager(ctx *cli.Context) (*service.LearningManager, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	manager, err := setup.NewLearningManagerFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create learning manager")
	}

	return manager, nil
}

func GetAuthManager(ctx *cli.Context) (*service.AuthManager, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	manager, err := setup.NewAuthManagerFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create auth manager")
	}

	return manager, nil
}

func GetCollector(ctx *cli.Context) (*service.Collector, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	collector, err := setup.NewCollectorFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create collector")
	}

	return collector, nil
}

func GetSnapshotManager(ctx *cli.Context) (*service.SnapshotManager, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	manager, err := setup.NewSnapshotManagerFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create snapshot manager")
	}

	return manager, nil
}

func GetSearchManager(ctx *cli.Context) (*service.SearchManager, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	manager, err := setup.NewSearchManagerFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create search manager")
	}

	return manager, nil
}
