package service

import (
	"context"
	"net/http"

	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// BookingService reads and moderates appointments.
type BookingService struct {
	client Doer
}

// NewBookingService creates a new BookingService.
func NewBookingService(client Doer) *BookingService {
	return &BookingService{client: client}
}

// List returns one page of bookings.
func (s *BookingService) List(ctx context.Context, params model.BookingListParams) (*model.List[model.Booking], error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	return fetchList[model.Booking](ctx, s.client, authed(http.MethodGet, path("bookings"), params.Values(), nil))
}

// Get returns a single booking.
func (s *BookingService) Get(ctx context.Context, id string) (*model.Booking, error) {
	return getByID[model.Booking](ctx, s.client, "bookings", id)
}

// UpdateStatus changes a booking's status.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, req model.UpdateBookingStatusRequest) (*model.Booking, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Booking](ctx, s.client, authed(http.MethodPatch, path("bookings", id, "status"), nil, req))
}

// Cancel cancels a booking with a reason.
func (s *BookingService) Cancel(ctx context.Context, id string, req model.CancelBookingRequest) (*model.Booking, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	return fetch[model.Booking](ctx, s.client, authed(http.MethodPatch, path("bookings", id, "cancel"), nil, req))
}
