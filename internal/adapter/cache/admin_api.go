package cache

import (
	"context"
	"time"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

const politicianCacheName = "politicians"

// AdminAPI caches politician lookups of the wrapped backend. Every
// politician mutation invalidates the cached profile.
type AdminAPI struct {
	port.AdminAPI
	politicians *Cache[model.PoliticianID, model.Politician]
}

// ListPoliticians implements [port.PoliticianStore].
func (a *AdminAPI) ListPoliticians(ctx context.Context) ([]model.Politician, error) {
	politicians, err := a.AdminAPI.ListPoliticians(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range politicians {
		a.politicians.Add(p.ID, p)
	}

	return politicians, nil
}

// GetPolitician implements [port.PoliticianStore].
func (a *AdminAPI) GetPolitician(ctx context.Context, id model.PoliticianID) (*model.Politician, error) {
	politician, err := a.politicians.GetOrLoad(ctx, id, func(ctx context.Context) (model.Politician, error) {
		p, err := a.AdminAPI.GetPolitician(ctx, id)
		if err != nil {
			return model.Politician{}, errors.WithStack(err)
		}

		return *p, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &politician, nil
}

// UpdatePolitician implements [port.PoliticianStore].
func (a *AdminAPI) UpdatePolitician(ctx context.Context, politician model.Politician) (*model.Politician, error) {
	defer a.politicians.Remove(politician.ID)

	return a.AdminAPI.UpdatePolitician(ctx, politician)
}

// DeletePolitician implements [port.PoliticianStore].
func (a *AdminAPI) DeletePolitician(ctx context.Context, id model.PoliticianID) error {
	defer a.politicians.Remove(id)

	return a.AdminAPI.DeletePolitician(ctx, id)
}

// SetPoliticianPublished implements [port.PoliticianStore].
func (a *AdminAPI) SetPoliticianPublished(ctx context.Context, id model.PoliticianID, published bool) (*model.Politician, error) {
	defer a.politicians.Remove(id)

	return a.AdminAPI.SetPoliticianPublished(ctx, id, published)
}

// SetPoliticianFeatured implements [port.PoliticianStore].
func (a *AdminAPI) SetPoliticianFeatured(ctx context.Context, id model.PoliticianID, featured bool) (*model.Politician, error) {
	defer a.politicians.Remove(id)

	return a.AdminAPI.SetPoliticianFeatured(ctx, id, featured)
}

func NewAdminAPI(backend port.AdminAPI, size int, ttl time.Duration) *AdminAPI {
	return &AdminAPI{
		AdminAPI:    backend,
		politicians: New[model.PoliticianID, model.Politician](politicianCacheName, size, ttl),
	}
}

var _ port.AdminAPI = &AdminAPI{}
