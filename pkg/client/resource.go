package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// The politician sub-resources and learning records share the same
// list/create/update/delete shape, only paths differ.

func listResource[T any](ctx context.Context, c *Client, api API, path string) ([]T, error) {
	items := make([]T, 0)
	if err := c.jsonRequest(ctx, api, http.MethodGet, path, nil, &items); err != nil {
		return nil, errors.WithStack(err)
	}

	return items, nil
}

// setParent fills the parent identifier of items listed under their
// parent route, some routes leave it out of the payload.
func setParent[T any](items []T, set func(item *T)) []T {
	for i := range items {
		set(&items[i])
	}
	return items
}

func sendResource[T any](ctx context.Context, c *Client, api API, method string, path string, payload T) (*T, error) {
	var result T
	if err := c.jsonRequest(ctx, api, method, path, payload, &result); err != nil {
		return nil, errors.WithStack(err)
	}

	return &result, nil
}

func deleteResource(ctx context.Context, c *Client, api API, path string) error {
	if err := c.jsonRequest(ctx, api, http.MethodDelete, path, nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func resourcePath[ID ~string](prefix string, id ID) (string, error) {
	if id == "" {
		return "", errors.Errorf("missing identifier for %s", prefix)
	}
	return prefix + "/" + url.PathEscape(string(id)), nil
}
