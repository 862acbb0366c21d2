package client

import (
	"context"
	"net/http"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

// ListCommitments implements port.CommitmentStore.
func (c *Client) ListCommitments(ctx context.Context, politicianID model.PoliticianID) ([]model.Commitment, error) {
	items, err := listResource[model.Commitment](ctx, c, APIAdmin, politicianPath(politicianID, "commitments"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return setParent(items, func(item *model.Commitment) { item.PoliticianID = politicianID }), nil
}

// CreateCommitment implements port.CommitmentStore.
func (c *Client) CreateCommitment(ctx context.Context, commitment model.Commitment) (*model.Commitment, error) {
	if commitment.PoliticianID == "" {
		return nil, errors.New("commitment politician id is missing")
	}
	commitment.ID = ""
	return sendResource(ctx, c, APIAdmin, http.MethodPost, politicianPath(commitment.PoliticianID, "commitments"), commitment)
}

// UpdateCommitment implements port.CommitmentStore.
func (c *Client) UpdateCommitment(ctx context.Context, commitment model.Commitment) (*model.Commitment, error) {
	path, err := resourcePath("/api/admin/commitments", commitment.ID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sendResource(ctx, c, APIAdmin, http.MethodPut, path, commitment)
}

// DeleteCommitment implements port.CommitmentStore.
func (c *Client) DeleteCommitment(ctx context.Context, id model.CommitmentID) error {
	path, err := resourcePath("/api/admin/commitments", id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APIAdmin, path)
}
