package dashboard

import (
	"context"

	"github.com/glowbook/admin-console/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RecentLimit is how many bookings and pending salons the overview shows.
const RecentLimit = 5

// AnalyticsSource reads dashboard aggregates.
type AnalyticsSource interface {
	Overview(ctx context.Context) (*model.AnalyticsOverview, error)
	Badges(ctx context.Context) (*model.BadgeCounts, error)
}

// BookingSource lists bookings.
type BookingSource interface {
	List(ctx context.Context, params model.BookingListParams) (*model.List[model.Booking], error)
}

// SalonSource lists salons.
type SalonSource interface {
	List(ctx context.Context, params model.SalonListParams) (*model.List[model.Salon], error)
}

// Overview is the dashboard landing page. Each slice is filled independently
// and carries its own error; one failing fetch never blanks the others.
type Overview struct {
	Stats    *model.AnalyticsOverview
	StatsErr error

	RecentBookings    []model.Booking
	RecentBookingsErr error

	PendingSalons    []model.Salon
	PendingSalonsErr error

	Badges    *model.BadgeCounts
	BadgesErr error
}

// Err returns the first slice error, or nil when every fetch succeeded.
func (o *Overview) Err() error {
	for _, err := range []error{o.StatsErr, o.RecentBookingsErr, o.PendingSalonsErr, o.BadgesErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Loader fetches the dashboard landing page.
type Loader struct {
	analytics AnalyticsSource
	bookings  BookingSource
	salons    SalonSource
	log       zerolog.Logger
}

// NewLoader creates a new Loader.
func NewLoader(analytics AnalyticsSource, bookings BookingSource, salons SalonSource, log zerolog.Logger) *Loader {
	return &Loader{
		analytics: analytics,
		bookings:  bookings,
		salons:    salons,
		log:       log.With().Str("component", "dashboard_loader").Logger(),
	}
}

// Overview issues every fetch concurrently and waits for all of them to
// settle. No fetch is retried.
func (l *Loader) Overview(ctx context.Context) *Overview {
	var o Overview
	var g errgroup.Group

	g.Go(func() error {
		o.Stats, o.StatsErr = l.analytics.Overview(ctx)
		return nil
	})
	g.Go(func() error {
		list, err := l.bookings.List(ctx, model.BookingListParams{
			ListParams: model.ListParams{Limit: RecentLimit, SortBy: "createdAt", Order: model.SortDesc},
		})
		if err != nil {
			o.RecentBookingsErr = err
			return nil
		}
		o.RecentBookings = list.Items
		return nil
	})
	g.Go(func() error {
		list, err := l.salons.List(ctx, model.SalonListParams{
			ListParams: model.ListParams{Limit: RecentLimit},
			Status:     model.SalonStatusPending,
		})
		if err != nil {
			o.PendingSalonsErr = err
			return nil
		}
		o.PendingSalons = list.Items
		return nil
	})
	g.Go(func() error {
		o.Badges, o.BadgesErr = l.analytics.Badges(ctx)
		return nil
	})

	_ = g.Wait()

	if err := o.Err(); err != nil {
		l.log.Warn().Err(err).Msg("Dashboard loaded with errors")
	}
	return &o
}
