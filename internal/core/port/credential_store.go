package port

import "context"

// CredentialStore keeps API tokens per profile.
type CredentialStore interface {
	// GetToken returns the token of the profile, or ErrNotLoggedIn if there is none
	GetToken(ctx context.Context, profile string) (string, error)
	SetToken(ctx context.Context, profile string, token string) error
	DeleteToken(ctx context.Context, profile string) error
}
