package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// CatalogService manages the bookable services offered by salons.
type CatalogService struct {
	client Doer
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(client Doer) *CatalogService {
	return &CatalogService{client: client}
}

func (s *CatalogService) List(ctx context.Context, params model.ServiceListParams) (*model.List[model.Service], error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	return fetchList[model.Service](ctx, s.client, authed(http.MethodGet, path("services"), params.Values(), nil))
}

func (s *CatalogService) Get(ctx context.Context, id string) (*model.Service, error) {
	return getByID[model.Service](ctx, s.client, "services", id)
}

func (s *CatalogService) Create(ctx context.Context, req model.CreateServiceRequest) (*model.Service, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Service](ctx, s.client, authed(http.MethodPost, path("services"), nil, req))
}

func (s *CatalogService) Update(ctx context.Context, id string, req model.UpdateServiceRequest) (*model.Service, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Service](ctx, s.client, authed(http.MethodPatch, path("services", id), nil, req))
}

func (s *CatalogService) Delete(ctx context.Context, id string) (*model.MessageResponse, error) {
	return deleteByID(ctx, s.client, "services", id)
}
