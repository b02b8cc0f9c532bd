package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// OfferService manages promotional codes.
type OfferService struct {
	client Doer
}

// NewOfferService creates a new OfferService.
func NewOfferService(client Doer) *OfferService {
	return &OfferService{client: client}
}

func (s *OfferService) List(ctx context.Context, params model.OfferListParams) (*model.List[model.Offer], error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	return fetchList[model.Offer](ctx, s.client, authed(http.MethodGet, path("offers"), params.Values(), nil))
}

func (s *OfferService) Get(ctx context.Context, id string) (*model.Offer, error) {
	return getByID[model.Offer](ctx, s.client, "offers", id)
}

func (s *OfferService) Create(ctx context.Context, req model.CreateOfferRequest) (*model.Offer, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Offer](ctx, s.client, authed(http.MethodPost, path("offers"), nil, req))
}

func (s *OfferService) Update(ctx context.Context, id string, req model.UpdateOfferRequest) (*model.Offer, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Offer](ctx, s.client, authed(http.MethodPatch, path("offers", id), nil, req))
}

// Toggle flips an offer between active and inactive.
func (s *OfferService) Toggle(ctx context.Context, id string) (*model.Offer, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return fetch[model.Offer](ctx, s.client, authed(http.MethodPatch, path("offers", id, "toggle"), nil, nil))
}

func (s *OfferService) Delete(ctx context.Context, id string) (*model.MessageResponse, error) {
	return deleteByID(ctx, s.client, "offers", id)
}
