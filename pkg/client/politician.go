package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

func politicianPath(id model.PoliticianID, segments ...string) string {
	path := fmt.Sprintf("/api/admin/politicians/%s", url.PathEscape(string(id)))
	for _, s := range segments {
		path += "/" + s
	}
	return path
}

// ListPoliticians implements port.PoliticianStore.
func (c *Client) ListPoliticians(ctx context.Context) ([]model.Politician, error) {
	politicians := make([]model.Politician, 0)
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodGet, "/api/admin/politicians", nil, &politicians); err != nil {
		return nil, errors.WithStack(err)
	}

	return politicians, nil
}

// GetPolitician implements port.PoliticianStore.
func (c *Client) GetPolitician(ctx context.Context, id model.PoliticianID) (*model.Politician, error) {
	var politician model.Politician
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodGet, politicianPath(id), nil, &politician); err != nil {
		return nil, errors.WithStack(err)
	}

	return &politician, nil
}

// CreatePolitician implements port.PoliticianStore.
func (c *Client) CreatePolitician(ctx context.Context, politician model.Politician) (*model.Politician, error) {
	politician.ID = ""

	var created model.Politician
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodPost, "/api/admin/politicians", politician, &created); err != nil {
		return nil, errors.WithStack(err)
	}

	return &created, nil
}

// UpdatePolitician implements port.PoliticianStore.
func (c *Client) UpdatePolitician(ctx context.Context, politician model.Politician) (*model.Politician, error) {
	if politician.ID == "" {
		return nil, errors.New("politician id is missing")
	}

	var updated model.Politician
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodPut, politicianPath(politician.ID), politician, &updated); err != nil {
		return nil, errors.WithStack(err)
	}

	return &updated, nil
}

// DeletePolitician implements port.PoliticianStore.
func (c *Client) DeletePolitician(ctx context.Context, id model.PoliticianID) error {
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodDelete, politicianPath(id), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// SetPoliticianPublished implements port.PoliticianStore.
func (c *Client) SetPoliticianPublished(ctx context.Context, id model.PoliticianID, published bool) (*model.Politician, error) {
	payload := struct {
		IsPublished bool `json:"isPublished"`
	}{published}

	var updated model.Politician
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodPatch, politicianPath(id, "publish"), payload, &updated); err != nil {
		return nil, errors.WithStack(err)
	}

	return &updated, nil
}

// SetPoliticianFeatured implements port.PoliticianStore.
func (c *Client) SetPoliticianFeatured(ctx context.Context, id model.PoliticianID, featured bool) (*model.Politician, error) {
	payload := struct {
		IsFeatured bool `json:"isFeatured"`
	}{featured}

	var updated model.Politician
	if err := c.jsonRequest(ctx, APIAdmin, http.MethodPatch, politicianPath(id, "feature"), payload, &updated); err != nil {
		return nil, errors.WithStack(err)
	}

	return &updated, nil
}
