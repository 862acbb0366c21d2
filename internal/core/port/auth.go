package port

import (
	"context"

	"github.com/bornholm/civicadmin/internal/core/model"
)

// Session is the result of a successful staff login.
type Session struct {
	Token string          `json:"token"`
	User  model.AdminUser `json:"user"`
}

type AuthAPI interface {
	Login(ctx context.Context, email string, password string) (*Session, error)
	// Me returns the user behind the current token
	Me(ctx context.Context) (*model.AdminUser, error)
	SetToken(token string)
	Token() string
}
