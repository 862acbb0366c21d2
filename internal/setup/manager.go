package setup

import (
	"context"
	"os"

	"github.com/bornholm/civicadmin/internal/adapter/alert"
	"github.com/bornholm/civicadmin/internal/adapter/cache"
	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/pkg/errors"
)

var getAlerterFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Alerter, error) {
	// Command output owns stdout, alerts of both kinds go to stderr
	return alert.NewConsole(os.Stderr, os.Stderr), nil
})

func NewAlerterFromConfig(ctx context.Context, conf *config.Config) (port.Alerter, error) {
	return getAlerterFromConfig(ctx, conf)
}

var getAdminAPIFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.AdminAPI, error) {
	client, err := getClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create client from config")
	}

	return cache.NewAdminAPI(client, conf.Cache.Size, conf.Cache.TTL), nil
})

var getPoliticianManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.PoliticianManager, error) {
	api, err := getAdminAPIFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	alerter, err := getAlerterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewPoliticianManager(
		api, alerter,
		service.WithDocumentMaxSize(int64(conf.Document.MaxSize)),
		service.WithDocumentAllowedTypes(conf.Document.AllowedTypes...),
	), nil
})

func NewPoliticianManagerFromConfig(ctx context.Context, conf *config.Config) (*service.PoliticianManager, error) {
	return getPoliticianManagerFromConfig(ctx, conf)
}

var getLearningManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.LearningManager, error) {
	client, err := getClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create client from config")
	}

	alerter, err := getAlerterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewLearningManager(client, alerter), nil
})

func NewLearningManagerFromConfig(ctx context.Context, conf *config.Config) (*service.LearningManager, error) {
	return getLearningManagerFromConfig(ctx, conf)
}

var getCollectorFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.Collector, error) {
	client, err := getClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create client from config")
	}

	api, err := getAdminAPIFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewCollector(api, client), nil
})

func NewCollectorFromConfig(ctx context.Context, conf *config.Config) (*service.Collector, error) {
	return getCollectorFromConfig(ctx, conf)
}

var getAuthManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.AuthManager, error) {
	client, err := getClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create client from config")
	}

	credentials, err := getCredentialStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	alerter, err := getAlerterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewAuthManager(client, credentials, conf.Auth.Profile, alerter), nil
})

func NewAuthManagerFromConfig(ctx context.Context, conf *config.Config) (*service.AuthManager, error) {
	return getAuthManagerFromConfig(ctx, conf)
}
