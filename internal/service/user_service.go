package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

type UserService struct {
	client Doer
}

func NewUserService(client Doer) *UserService {
	return &UserService{client: client}
}

func (s *UserService) List(ctx context.Context, params model.UserListParams) (*model.List[model.User], error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	return fetchList[model.User](ctx, s.client, authed(http.MethodGet, path("user"), params.Values(), nil))
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return getByID[model.User](ctx, s.client, "user", id)
}

func (s *UserService) Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.User](ctx, s.client, authed(http.MethodPatch, path("user", id), nil, req))
}

func (s *UserService) Delete(ctx context.Context, id string) (*model.MessageResponse, error) {
	return deleteByID(ctx, s.client, "user", id)
}

// Profile returns the signed-in admin's own account.
func (s *UserService) Profile(ctx context.Context) (*model.User, error) {
	return fetch[model.User](ctx, s.client, authed(http.MethodGet, path("user", "profile"), nil, nil))
}

// UpdateProfile edits the signed-in admin's profile. A non-nil avatar is
// uploaded as multipart form data.
func (s *UserService) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest, avatar *apiclient.File) (*model.User, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}

	var body interface{} = req
	if avatar != nil {
		form, err := multipartForm(req, "avatar", *avatar)
		if err != nil {
			return nil, err
		}
		body = form
	}
	return fetch[model.User](ctx, s.client, authed(http.MethodPatch, path("user", "profile"), nil, body))
}
