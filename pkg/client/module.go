package client

import (
	"context"
	"net/http"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

const modulesPath = "/api/admin/learning/modules"

// ListModules implements port.ModuleStore.
func (c *Client) ListModules(ctx context.Context) ([]model.Module, error) {
	return listResource[model.Module](ctx, c, APILearning, modulesPath)
}

// GetModule implements port.ModuleStore.
func (c *Client) GetModule(ctx context.Context, id model.ModuleID) (*model.Module, error) {
	path, err := resourcePath(modulesPath, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var module model.Module
	if err := c.jsonRequest(ctx, APILearning, http.MethodGet, path, nil, &module); err != nil {
		return nil, errors.WithStack(err)
	}

	return &module, nil
}

// CreateModule implements port.ModuleStore.
func (c *Client) CreateModule(ctx context.Context, module model.Module) (*model.Module, error) {
	module.ID = ""
	module.Lessons = nil
	return sendResource(ctx, c, APILearning, http.MethodPost, modulesPath, module)
}

// UpdateModule implements port.ModuleStore.
func (c *Client) UpdateModule(ctx context.Context, module model.Module) (*model.Module, error) {
	path, err := resourcePath(modulesPath, module.ID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	module.Lessons = nil
	return sendResource(ctx, c, APILearning, http.MethodPut, path, module)
}

// DeleteModule implements port.ModuleStore.
func (c *Client) DeleteModule(ctx context.Context, id model.ModuleID) error {
	path, err := resourcePath(modulesPath, id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APILearning, path)
}

// SetModulePublished implements port.ModuleStore.
func (c *Client) SetModulePublished(ctx context.Context, id model.ModuleID, published bool) (*model.Module, error) {
	path, err := resourcePath(modulesPath, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	payload := struct {
		IsPublished bool `json:"isPublished"`
	}{published}

	var module model.Module
	if err := c.jsonRequest(ctx, APILearning, http.MethodPatch, path+"/publish", payload, &module); err != nil {
		return nil, errors.WithStack(err)
	}

	return &module, nil
}
