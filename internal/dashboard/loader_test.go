package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeAnalytics struct {
	OverviewFn func(ctx context.Context) (*model.AnalyticsOverview, error)
	BadgesFn   func(ctx context.Context) (*model.BadgeCounts, error)
}

func (f *fakeAnalytics) Overview(ctx context.Context) (*model.AnalyticsOverview, error) {
	return f.OverviewFn(ctx)
}

func (f *fakeAnalytics) Badges(ctx context.Context) (*model.BadgeCounts, error) {
	return f.BadgesFn(ctx)
}

type fakeBookings struct {
	ListFn func(ctx context.Context, params model.BookingListParams) (*model.List[model.Booking], error)
}

func (f *fakeBookings) List(ctx context.Context, params model.BookingListParams) (*model.List[model.Booking], error) {
	return f.ListFn(ctx, params)
}

type fakeSalons struct {
	ListFn func(ctx context.Context, params model.SalonListParams) (*model.List[model.Salon], error)
}

func (f *fakeSalons) List(ctx context.Context, params model.SalonListParams) (*model.List[model.Salon], error) {
	return f.ListFn(ctx, params)
}

func TestOverviewAllSettled(t *testing.T) {
	boom := &apiclient.Error{Status: http.StatusInternalServerError, Message: "analytics unavailable"}

	var gotSalonParams model.SalonListParams
	var gotBookingParams model.BookingListParams
	loader := NewLoader(
		&fakeAnalytics{
			OverviewFn: func(context.Context) (*model.AnalyticsOverview, error) { return nil, boom },
			BadgesFn: func(context.Context) (*model.BadgeCounts, error) {
				return &model.BadgeCounts{PendingSalons: 2}, nil
			},
		},
		&fakeBookings{ListFn: func(_ context.Context, p model.BookingListParams) (*model.List[model.Booking], error) {
			gotBookingParams = p
			return &model.List[model.Booking]{Items: []model.Booking{{ID: "b1"}}}, nil
		}},
		&fakeSalons{ListFn: func(_ context.Context, p model.SalonListParams) (*model.List[model.Salon], error) {
			gotSalonParams = p
			return &model.List[model.Salon]{Items: []model.Salon{{ID: "s1"}, {ID: "s2"}}}, nil
		}},
		zerolog.Nop(),
	)

	o := loader.Overview(context.Background())

	require.Nil(t, o.Stats)
	require.True(t, errors.Is(o.StatsErr, boom))
	require.Len(t, o.RecentBookings, 1)
	require.Equal(t, RecentLimit, gotBookingParams.Limit)
	require.NoError(t, o.RecentBookingsErr)
	require.Len(t, o.PendingSalons, 2)
	require.Equal(t, model.SalonStatusPending, gotSalonParams.Status)
	require.Equal(t, 2, o.Badges.PendingSalons)
	require.True(t, errors.Is(o.Err(), boom))
}

func TestOverviewSuccess(t *testing.T) {
	loader := NewLoader(
		&fakeAnalytics{
			OverviewFn: func(context.Context) (*model.AnalyticsOverview, error) {
				return &model.AnalyticsOverview{TotalSalons: 12}, nil
			},
			BadgesFn: func(context.Context) (*model.BadgeCounts, error) { return &model.BadgeCounts{}, nil },
		},
		&fakeBookings{ListFn: func(context.Context, model.BookingListParams) (*model.List[model.Booking], error) {
			return &model.List[model.Booking]{}, nil
		}},
		&fakeSalons{ListFn: func(context.Context, model.SalonListParams) (*model.List[model.Salon], error) {
			return &model.List[model.Salon]{}, nil
		}},
		zerolog.Nop(),
	)

	o := loader.Overview(context.Background())
	require.NoError(t, o.Err())
	require.Equal(t, 12, o.Stats.TotalSalons)
}
