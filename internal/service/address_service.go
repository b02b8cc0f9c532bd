package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// AddressService manages customers' saved addresses.
type AddressService struct {
	client Doer
}

// NewAddressService creates a new AddressService.
func NewAddressService(client Doer) *AddressService {
	return &AddressService{client: client}
}

// List returns the addresses of one customer.
func (s *AddressService) List(ctx context.Context, userID string) ([]model.Address, error) {
	if err := validator.Var("userId", userID, "required,max=64"); err != nil {
		return nil, err
	}
	query := url.Values{"userId": {userID}}
	list, err := fetchList[model.Address](ctx, s.client, authed(http.MethodGet, path("addresses"), query, nil))
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (s *AddressService) Create(ctx context.Context, req model.CreateAddressRequest) (*model.Address, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Address](ctx, s.client, authed(http.MethodPost, path("addresses"), nil, req))
}

func (s *AddressService) Update(ctx context.Context, id string, req model.UpdateAddressRequest) (*model.Address, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Address](ctx, s.client, authed(http.MethodPatch, path("addresses", id), nil, req))
}

func (s *AddressService) Delete(ctx context.Context, id string) (*model.MessageResponse, error) {
	return deleteByID(ctx, s.client, "addresses", id)
}
