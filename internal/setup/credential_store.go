package setup

import (
	"context"

	"github.com/bornholm/civicadmin/internal/adapter/keyring"
	"github.com/bornholm/civicadmin/internal/adapter/settings"
	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

var getProfileStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*settings.ProfileStore, error) {
	return settings.NewProfileStore(settings.NewStore(settings.Defaults)), nil
})

func NewProfileStoreFromConfig(ctx context.Context, conf *config.Config) (*settings.ProfileStore, error) {
	return getProfileStoreFromConfig(ctx, conf)
}

var getCredentialStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.CredentialStore, error) {
	if conf.Auth.Keyring {
		return keyring.NewCredentialStore(keyring.DefaultService), nil
	}

	profiles, err := getProfileStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return profiles, nil
})

func NewCredentialStoreFromConfig(ctx context.Context, conf *config.Config) (port.CredentialStore, error) {
	return getCredentialStoreFromConfig(ctx, conf)
}
