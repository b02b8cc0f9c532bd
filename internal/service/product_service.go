package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// ProductService manages the retail inventory.
type ProductService struct {
	client Doer
}

// NewProductService creates a new ProductService.
func NewProductService(client Doer) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) List(ctx context.Context, params model.ProductListParams) (*model.List[model.Product], error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	return fetchList[model.Product](ctx, s.client, authed(http.MethodGet, path("products"), params.Values(), nil))
}

func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	return getByID[model.Product](ctx, s.client, "products", id)
}

// Create adds a product, uploading its images as multipart form data.
func (s *ProductService) Create(ctx context.Context, req model.CreateProductRequest, images ...apiclient.File) (*model.Product, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	form, err := multipartForm(req, "images", images...)
	if err != nil {
		return nil, err
	}
	return fetch[model.Product](ctx, s.client, authed(http.MethodPost, path("products"), nil, form))
}

func (s *ProductService) Update(ctx context.Context, id string, req model.UpdateProductRequest) (*model.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Product](ctx, s.client, authed(http.MethodPatch, path("products", id), nil, req))
}

// UpdateStock sets the absolute stock level.
func (s *ProductService) UpdateStock(ctx context.Context, id string, req model.UpdateStockRequest) (*model.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Product](ctx, s.client, authed(http.MethodPatch, path("products", id, "stock"), nil, req))
}

func (s *ProductService) Delete(ctx context.Context, id string) (*model.MessageResponse, error) {
	return deleteByID(ctx, s.client, "products", id)
}
