package client

import (
	"context"
	"net/http"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

type LoginResponse = port.Session

// Login exchanges staff credentials for a token. The token is not retained
// by the client, call SetToken to use it.
//
// Login implements port.AuthAPI.
func (c *Client) Login(ctx context.Context, email string, password string) (*LoginResponse, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    email,
		Password: password,
	}

	var res LoginResponse
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodPost, "/api/admin/auth/login", payload, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	if res.Token == "" {
		return nil, errors.New("login response did not contain a token")
	}

	return &res, nil
}

func (c *Client) Me(ctx context.Context) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodGet, "/api/admin/auth/me", nil, &user); err != nil {
		return nil, errors.WithStack(err)
	}

	return &user, nil
}
