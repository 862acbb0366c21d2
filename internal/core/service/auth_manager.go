package service

import (
	"context"
	"fmt"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/pkg/errors"
)

var ErrBadCredentials = errors.New("bad credentials")

const (
	FieldLoginEmail    = "email"
	FieldLoginPassword = "password"
)

// AuthManager opens and closes the staff session of a profile.
type AuthManager struct {
	alerts
	api         port.AuthAPI
	credentials port.CredentialStore
	profile     string
}

func (m *AuthManager) Profile() string {
	return m.profile
}

// Login exchanges the credentials for a token, stored for the profile.
func (m *AuthManager) Login(ctx context.Context, email string, password string) (*model.AdminUser, error) {
	const title = "Log in"

	errs := validate.Errors{}
	if validate.Required(errs, FieldLoginEmail, email) {
		validate.Email(errs, FieldLoginEmail, email)
	}
	validate.Required(errs, FieldLoginPassword, password)

	if !errs.Empty() {
		return nil, m.fail(ctx, title, errs)
	}

	session, err := m.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, port.ErrUnauthorized) {
			err = errors.Wrap(ErrBadCredentials, err.Error())
		}

		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	if err := m.credentials.SetToken(ctx, m.profile, session.Token); err != nil {
		return nil, m.fail(ctx, title, errors.Wrap(err, "could not store token"))
	}

	m.api.SetToken(session.Token)

	m.succeed(ctx, title, fmt.Sprintf("Logged in as %s (profile '%s').", session.User.DisplayName(), m.profile))

	return &session.User, nil
}

// Logout forgets the stored token of the profile.
func (m *AuthManager) Logout(ctx context.Context) error {
	const title = "Log out"

	if err := m.credentials.DeleteToken(ctx, m.profile); err != nil {
		return m.fail(ctx, title, errors.Wrap(err, "could not delete token"))
	}

	m.api.SetToken("")

	m.succeed(ctx, title, fmt.Sprintf("Logged out of profile '%s'.", m.profile))

	return nil
}

// Whoami returns the user behind the current token.
func (m *AuthManager) Whoami(ctx context.Context) (*model.AdminUser, error) {
	const title = "Load session"

	if m.api.Token() == "" {
		return nil, m.fail(ctx, title, errors.WithStack(port.ErrNotLoggedIn))
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	return user, nil
}

func NewAuthManager(api port.AuthAPI, credentials port.CredentialStore, profile string, alerter port.Alerter) *AuthManager {
	return &AuthManager{
		alerts:      alerts{alerter: alerter},
		api:         api,
		credentials: credentials,
		profile:     profile,
	}
}
