package client

import (
	"context"
	"net/http"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

// ListVotingRecords implements port.VotingRecordStore.
func (c *Client) ListVotingRecords(ctx context.Context, politicianID model.PoliticianID) ([]model.VotingRecord, error) {
	items, err := listResource[model.VotingRecord](ctx, c, APIAdmin, politicianPath(politicianID, "votes"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return setParent(items, func(item *model.VotingRecord) { item.PoliticianID = politicianID }), nil
}

// CreateVotingRecord implements port.VotingRecordStore.
func (c *Client) CreateVotingRecord(ctx context.Context, record model.VotingRecord) (*model.VotingRecord, error) {
	if record.PoliticianID == "" {
		return nil, errors.New("voting record politician id is missing")
	}
	record.ID = ""
	return sendResource(ctx, c, APIAdmin, http.MethodPost, politicianPath(record.PoliticianID, "votes"), record)
}

// UpdateVotingRecord implements port.VotingRecordStore.
func (c *Client) UpdateVotingRecord(ctx context.Context, record model.VotingRecord) (*model.VotingRecord, error) {
	path, err := resourcePath("/api/admin/votes", record.ID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sendResource(ctx, c, APIAdmin, http.MethodPut, path, record)
}

// DeleteVotingRecord implements port.VotingRecordStore.
func (c *Client) DeleteVotingRecord(ctx context.Context, id model.VotingRecordID) error {
	path, err := resourcePath("/api/admin/votes", id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APIAdmin, path)
}
