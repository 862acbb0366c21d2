package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type TokenInfo struct {
	Subject   string
	ExpiresAt *time.Time
}

// InspectToken reads the claims of a JWT without verifying its signature.
func InspectToken(raw string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, errors.WithStack(err)
	}

	info := &TokenInfo{}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	info.Subject = subject

	expiresAt, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if expiresAt != nil {
		t := expiresAt.Time
		info.ExpiresAt = &t
	}

	return info, nil
}
