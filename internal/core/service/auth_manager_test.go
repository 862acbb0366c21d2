package service

import (
	"context"
	"testing"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

type fakeAuthAPI struct {
	token    string
	password string
}

func (a *fakeAuthAPI) Login(ctx context.Context, email string, password string) (*port.Session, error) {
	if password != a.password {
		return nil, errors.WithStack(port.ErrUnauthorized)
	}

	return &port.Session{
		Token: "token-" + email,
		User:  model.AdminUser{ID: "u1", Email: email, Name: "Staff"},
	}, nil
}

func (a *fakeAuthAPI) Me(ctx context.Context) (*model.AdminUser, error) {
	if a.token == "" {
		return nil, errors.WithStack(port.ErrUnauthorized)
	}
	return &model.AdminUser{ID: "u1", Email: "staff@example.org"}, nil
}

func (a *fakeAuthAPI) SetToken(token string) {
	a.token = token
}

func (a *fakeAuthAPI) Token() string {
	return a.token
}

type memoryCredentialStore struct {
	tokens map[string]string
}

func (s *memoryCredentialStore) GetToken(ctx context.Context, profile string) (string, error) {
	token, exists := s.tokens[profile]
	if !exists {
		return "", errors.WithStack(port.ErrNotLoggedIn)
	}
	return token, nil
}

func (s *memoryCredentialStore) SetToken(ctx context.Context, profile string, token string) error {
	s.tokens[profile] = token
	return nil
}

func (s *memoryCredentialStore) DeleteToken(ctx context.Context, profile string) error {
	delete(s.tokens, profile)
	return nil
}

var (
	_ port.AuthAPI         = &fakeAuthAPI{}
	_ port.CredentialStore = &memoryCredentialStore{}
)

func TestAuthManager(t *testing.T) {
	ctx := context.Background()
	api := &fakeAuthAPI{password: "secret"}
	credentials := &memoryCredentialStore{tokens: map[string]string{}}
	alerter := &recordingAlerter{}

	manager := NewAuthManager(api, credentials, "staging", alerter)

	if _, err := manager.Whoami(ctx); !errors.Is(err, port.ErrNotLoggedIn) {
		t.Errorf("Whoami: expected ErrNotLoggedIn, got '%v'", err)
	}

	if e, g := MessageNotLoggedIn, alerter.Last().Message; e != g {
		t.Errorf("alerter.Last().Message: expected '%v', got '%v'", e, g)
	}

	_, err := manager.Login(ctx, "staff@example.org", "wrong")
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Login: expected ErrBadCredentials, got '%v'", err)
	}

	if e, g := MessageBadCredentials, alerter.Last().Message; e != g {
		t.Errorf("alerter.Last().Message: expected '%v', got '%v'", e, g)
	}

	_, err = manager.Login(ctx, "not an email", "")
	if !errors.Is(err, port.ErrInvalid) {
		t.Errorf("Login: expected ErrInvalid, got '%v'", err)
	}

	if e, g := "email: must be a valid email address, password: is required", alerter.Last().Message; e != g {
		t.Errorf("alerter.Last().Message: expected '%v', got '%v'", e, g)
	}

	user, err := manager.Login(ctx, "staff@example.org", "secret")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Staff", user.DisplayName(); e != g {
		t.Errorf("user.DisplayName(): expected '%v', got '%v'", e, g)
	}

	if e, g := "token-staff@example.org", credentials.tokens["staging"]; e != g {
		t.Errorf("credentials.tokens[staging]: expected '%v', got '%v'", e, g)
	}

	if e, g := "Logged in as Staff (profile 'staging').", alerter.Last().Message; e != g {
		t.Errorf("alerter.Last().Message: expected '%v', got '%v'", e, g)
	}

	if _, err := manager.Whoami(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := manager.Logout(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, exists := credentials.tokens["staging"]; exists {
		t.Errorf("token of profile 'staging' should have been deleted")
	}

	if e, g := "", api.Token(); e != g {
		t.Errorf("api.Token(): expected '%v', got '%v'", e, g)
	}
}
