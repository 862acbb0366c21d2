package keyring

import (
	"context"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

const DefaultService = "civicadmin"

// CredentialStore keeps tokens in the operating system keyring, one entry
// per profile.
type CredentialStore struct {
	service string
}

// GetToken implements port.CredentialStore.
func (s *CredentialStore) GetToken(ctx context.Context, profile string) (string, error) {
	token, err := keyring.Get(s.service, profile)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", errors.WithStack(port.ErrNotLoggedIn)
		}

		return "", errors.Wrapf(err, "could not read token of profile '%s'", profile)
	}

	if token == "" {
		return "", errors.WithStack(port.ErrNotLoggedIn)
	}

	return token, nil
}

// SetToken implements port.CredentialStore.
func (s *CredentialStore) SetToken(ctx context.Context, profile string, token string) error {
	if err := keyring.Set(s.service, profile, token); err != nil {
		return errors.Wrapf(err, "could not store token of profile '%s'", profile)
	}

	return nil
}

// DeleteToken implements port.CredentialStore.
func (s *CredentialStore) DeleteToken(ctx context.Context, profile string) error {
	if err := keyring.Delete(s.service, profile); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return errors.Wrapf(err, "could not delete token of profile '%s'", profile)
	}

	return nil
}

func NewCredentialStore(service string) *CredentialStore {
	if service == "" {
		service = DefaultService
	}

	return &CredentialStore{
		service: service,
	}
}

var _ port.CredentialStore = &CredentialStore{}
