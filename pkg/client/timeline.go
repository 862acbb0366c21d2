package client

import (
	"context"
	"net/http"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

// ListTimelineEvents implements port.TimelineStore.
func (c *Client) ListTimelineEvents(ctx context.Context, politicianID model.PoliticianID) ([]model.TimelineEvent, error) {
	items, err := listResource[model.TimelineEvent](ctx, c, APIAdmin, politicianPath(politicianID, "timeline"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return setParent(items, func(item *model.TimelineEvent) { item.PoliticianID = politicianID }), nil
}

// CreateTimelineEvent implements port.TimelineStore.
func (c *Client) CreateTimelineEvent(ctx context.Context, event model.TimelineEvent) (*model.TimelineEvent, error) {
	if event.PoliticianID == "" {
		return nil, errors.New("timeline event politician id is missing")
	}
	event.ID = ""
	return sendResource(ctx, c, APIAdmin, http.MethodPost, politicianPath(event.PoliticianID, "timeline"), event)
}

// UpdateTimelineEvent implements port.TimelineStore.
func (c *Client) UpdateTimelineEvent(ctx context.Context, event model.TimelineEvent) (*model.TimelineEvent, error) {
	path, err := resourcePath("/api/admin/timeline", event.ID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sendResource(ctx, c, APIAdmin, http.MethodPut, path, event)
}

// DeleteTimelineEvent implements port.TimelineStore.
func (c *Client) DeleteTimelineEvent(ctx context.Context, id model.TimelineEventID) error {
	path, err := resourcePath("/api/admin/timeline", id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APIAdmin, path)
}
