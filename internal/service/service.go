package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

const apiPrefix = "/api/v1"

// Doer is the request helper every service calls through.
type Doer interface {
	Do(ctx context.Context, req *apiclient.Request, out interface{}) error
}

// Services groups one service per backend resource.
type Services struct {
	Auth      *AuthService
	Users     *UserService
	Salons    *SalonService
	Bookings  *BookingService
	Products  *ProductService
	Catalog   *CatalogService
	Staff     *StaffService
	Addresses *AddressService
	Orders    *OrderService
	Offers    *OfferService
	Analytics *AnalyticsService
}

// New wires every service to the same request helper.
func New(client Doer) *Services {
	return &Services{
		Auth:      NewAuthService(client),
		Users:     NewUserService(client),
		Salons:    NewSalonService(client),
		Bookings:  NewBookingService(client),
		Products:  NewProductService(client),
		Catalog:   NewCatalogService(client),
		Staff:     NewStaffService(client),
		Addresses: NewAddressService(client),
		Orders:    NewOrderService(client),
		Offers:    NewOfferService(client),
		Analytics: NewAnalyticsService(client),
	}
}

// path joins segments under /api/v1, escaping each one.
func path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return apiPrefix + "/" + strings.Join(escaped, "/")
}

func checkID(id string) error {
	return validator.Var("id", id, "required,max=64")
}

func authed(method, p string, query url.Values, body interface{}) *apiclient.Request {
	return &apiclient.Request{Method: method, Path: p, Query: query, Body: body, RequireAuth: true}
}

func fetch[T any](ctx context.Context, c Doer, req *apiclient.Request) (*T, error) {
	var env model.Envelope[T]
	if err := c.Do(ctx, req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func fetchList[T any](ctx context.Context, c Doer, req *apiclient.Request) (*model.List[T], error) {
	var env model.Envelope[[]T]
	if err := c.Do(ctx, req, &env); err != nil {
		return nil, err
	}
	return &model.List[T]{Items: env.Data, Pagination: env.Pagination}, nil
}

func acknowledge(ctx context.Context, c Doer, req *apiclient.Request) (*model.MessageResponse, error) {
	var out model.MessageResponse
	if err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getByID fetches a single record of a resource.
func getByID[T any](ctx context.Context, c Doer, resource, id string) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return fetch[T](ctx, c, authed(http.MethodGet, path(resource, id), nil, nil))
}

// deleteByID removes a single record of a resource.
func deleteByID(ctx context.Context, c Doer, resource, id string) (*model.MessageResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return acknowledge(ctx, c, authed(http.MethodDelete, path(resource, id), nil, nil))
}

// multipartForm builds a form from req's fields plus files under field.
func multipartForm(req interface{}, field string, files ...apiclient.File) (*apiclient.Form, error) {
	form, err := apiclient.FormFromStruct(req)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		form.AddFile(field, f)
	}
	return form, nil
}
