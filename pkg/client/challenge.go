package client

import (
	"context"
	"net/http"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

const challengesPath = "/api/admin/learning/challenges"

// ListChallenges implements port.ChallengeStore.
func (c *Client) ListChallenges(ctx context.Context) ([]model.Challenge, error) {
	return listResource[model.Challenge](ctx, c, APILearning, challengesPath)
}

// CreateChallenge implements port.ChallengeStore.
func (c *Client) CreateChallenge(ctx context.Context, challenge model.Challenge) (*model.Challenge, error) {
	challenge.ID = ""
	return sendResource(ctx, c, APILearning, http.MethodPost, challengesPath, challenge)
}

// UpdateChallenge implements port.ChallengeStore.
func (c *Client) UpdateChallenge(ctx context.Context, challenge model.Challenge) (*model.Challenge, error) {
	path, err := resourcePath(challengesPath, challenge.ID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sendResource(ctx, c, APILearning, http.MethodPut, path, challenge)
}

// DeleteChallenge implements port.ChallengeStore.
func (c *Client) DeleteChallenge(ctx context.Context, id model.ChallengeID) error {
	path, err := resourcePath(challengesPath, id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APILearning, path)
}
