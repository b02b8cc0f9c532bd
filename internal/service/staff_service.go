package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

type StaffService struct {
	client Doer
}

func NewStaffService(client Doer) *StaffService {
	return &StaffService{client: client}
}

func (s *StaffService) List(ctx context.Context, params model.StaffListParams) (*model.List[model.Staff], error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	return fetchList[model.Staff](ctx, s.client, authed(http.MethodGet, path("staff"), params.Values(), nil))
}

func (s *StaffService) Get(ctx context.Context, id string) (*model.Staff, error) {
	return getByID[model.Staff](ctx, s.client, "staff", id)
}

// Create adds a staff member. A non-nil photo is sent as multipart form data;
// otherwise the request is plain JSON.
func (s *StaffService) Create(ctx context.Context, req model.CreateStaffRequest, photo *apiclient.File) (*model.Staff, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}

	var body interface{} = req
	if photo != nil {
		form, err := multipartForm(req, "photo", *photo)
		if err != nil {
			return nil, err
		}
		body = form
	}
	return fetch[model.Staff](ctx, s.client, authed(http.MethodPost, path("staff"), nil, body))
}

func (s *StaffService) Update(ctx context.Context, id string, req model.UpdateStaffRequest) (*model.Staff, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Staff](ctx, s.client, authed(http.MethodPatch, path("staff", id), nil, req))
}

func (s *StaffService) Delete(ctx context.Context, id string) (*model.MessageResponse, error) {
	return deleteByID(ctx, s.client, "staff", id)
}
