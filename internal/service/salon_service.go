package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// SalonService manages salon listings and their moderation.
type SalonService struct {
	client Doer
}

// NewSalonService creates a new SalonService.
func NewSalonService(client Doer) *SalonService {
	return &SalonService{client: client}
}

// List returns one page of salons.
func (s *SalonService) List(ctx context.Context, params model.SalonListParams) (*model.List[model.Salon], error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	return fetchList[model.Salon](ctx, s.client, authed(http.MethodGet, path("salons"), params.Values(), nil))
}

// Get returns a single salon.
func (s *SalonService) Get(ctx context.Context, id string) (*model.Salon, error) {
	return getByID[model.Salon](ctx, s.client, "salons", id)
}

// Create registers a salon, uploading its images as multipart form data.
func (s *SalonService) Create(ctx context.Context, req model.CreateSalonRequest, images ...apiclient.File) (*model.Salon, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	form, err := multipartForm(req, "images", images...)
	if err != nil {
		return nil, err
	}
	return fetch[model.Salon](ctx, s.client, authed(http.MethodPost, path("salons"), nil, form))
}

// Update applies a partial edit.
func (s *SalonService) Update(ctx context.Context, id string, req model.UpdateSalonRequest) (*model.Salon, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Salon](ctx, s.client, authed(http.MethodPatch, path("salons", id), nil, req))
}

// UpdateStatus approves, rejects or suspends a salon.
func (s *SalonService) UpdateStatus(ctx context.Context, id string, req model.UpdateSalonStatusRequest) (*model.Salon, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Salon](ctx, s.client, authed(http.MethodPatch, path("salons", id, "status"), nil, req))
}

// Delete removes a salon.
func (s *SalonService) Delete(ctx context.Context, id string) (*model.MessageResponse, error) {
	return deleteByID(ctx, s.client, "salons", id)
}
