package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/validator"
)

// AnalyticsService reads dashboard aggregates.
type AnalyticsService struct {
	client Doer
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(client Doer) *AnalyticsService {
	return &AnalyticsService{client: client}
}

// Overview returns the headline numbers.
func (s *AnalyticsService) Overview(ctx context.Context) (*model.AnalyticsOverview, error) {
	return fetch[model.AnalyticsOverview](ctx, s.client, authed(http.MethodGet, path("analytics", "overview"), nil, nil))
}

// Revenue returns the revenue series for a period.
func (s *AnalyticsService) Revenue(ctx context.Context, params model.RevenueParams) ([]model.RevenuePoint, error) {
	if err := validator.Struct(&params); err != nil {
		return nil, err
	}
	points, err := fetch[[]model.RevenuePoint](ctx, s.client, authed(http.MethodGet, path("analytics", "revenue"), params.Values(), nil))
	if err != nil {
		return nil, err
	}
	return *points, nil
}

// TopSalons ranks salons by booking volume.
func (s *AnalyticsService) TopSalons(ctx context.Context, limit int) ([]model.TopSalon, error) {
	if err := validator.Var("limit", limit, "min=0,max=50"); err != nil {
		return nil, err
	}
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	salons, err := fetch[[]model.TopSalon](ctx, s.client, authed(http.MethodGet, path("analytics", "top-salons"), query, nil))
	if err != nil {
		return nil, err
	}
	return *salons, nil
}

// Badges returns the navigation badge counts.
func (s *AnalyticsService) Badges(ctx context.Context) (*model.BadgeCounts, error) {
	return fetch[model.BadgeCounts](ctx, s.client, authed(http.MethodGet, path("analytics", "badges"), nil, nil))
}
