package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// OrderService reads product orders and advances their fulfilment.
type OrderService struct {
	client Doer
}

// NewOrderService creates a new OrderService.
func NewOrderService(client Doer) *OrderService {
	return &OrderService{client: client}
}

func (s *OrderService) List(ctx context.Context, params model.OrderListParams) (*model.List[model.Order], error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	return fetchList[model.Order](ctx, s.client, authed(http.MethodGet, path("orders"), params.Values(), nil))
}

func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	return getByID[model.Order](ctx, s.client, "orders", id)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, req model.UpdateOrderStatusRequest) (*model.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Order](ctx, s.client, authed(http.MethodPatch, path("orders", id, "status"), nil, req))
}
