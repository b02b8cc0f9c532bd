package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/dashboard"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/session"
	"github.com/glowbook/admin-console/internal/validator"
	"github.com/stretchr/testify/require"
)

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "api error with fields",
			err: &apiclient.Error{
				Status:  422,
				Message: "Validation failed",
				Errors:  []apiclient.FieldError{{Field: "name", Message: "is required"}, {Message: "general"}},
			},
			want: []string{"Error (422): Validation failed", "  name: is required", "  general"},
		},
		{
			name: "network error",
			err:  &apiclient.Error{Message: apiclient.NetworkErrorMessage},
			want: []string{"Error: " + apiclient.NetworkErrorMessage},
		},
		{
			name: "non-json details",
			err:  &apiclient.Error{Status: 502, Message: "Bad gateway", Details: "<html>upstream</html>"},
			want: []string{"Error (502): Bad gateway", "details: <html>upstream</html>"},
		},
		{
			name: "validation",
			err:  &validator.Error{Fields: map[string]string{"phone": "phone is required", "city": "city is required"}},
			want: []string{"city: city is required\n  phone: phone is required"},
		},
		{
			name: "access denied",
			err:  session.ErrAccessDenied,
			want: []string{session.AccessDeniedMessage},
		},
		{
			name: "not signed in",
			err:  fmt.Errorf("wrap: %w", session.ErrNotAuthenticated),
			want: []string{"admin login"},
		},
		{
			name: "usage",
			err:  fmt.Errorf("%w: offers toggle <id>", errUsage),
			want: []string{"Usage error: offers toggle <id>"},
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderError(&buf, tt.err)
			for _, w := range tt.want {
				require.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, []string{"ID", "NAME"}, nil, nil)
	require.Equal(t, "No results.\n", buf.String())

	buf.Reset()
	renderTable(&buf, []string{"ID", "NAME"}, [][]string{{"1", "Luxe"}, {"22", "Fade"}}, &model.Pagination{Page: 2, TotalPages: 3, Total: 42})
	require.Equal(t, "ID  NAME\n1   Luxe\n22  Fade\npage 2/3, 42 total\n", buf.String())
}

func TestRenderBadgesWatchLine(t *testing.T) {
	var buf bytes.Buffer
	renderBadges(&buf, &model.BadgeCounts{PendingSalons: 1, LowStockProducts: 4}, true)
	require.Equal(t, "salons=1 bookings=0 orders=0 disputes=0 low stock=4 notifications=0\n", buf.String())

	buf.Reset()
	renderBadges(&buf, nil, false)
	require.Empty(t, buf.String())
}

func TestRenderOverviewKeepsSlicesIndependent(t *testing.T) {
	var buf bytes.Buffer
	renderOverview(&buf, &dashboard.Overview{
		StatsErr:         &apiclient.Error{Status: 500, Message: "stats offline"},
		RecentBookings:   []model.Booking{{ID: "b1", Date: "2026-10-18", StartTime: "10:00", Status: model.BookingStatusPending, TotalAmount: 40}},
		PendingSalonsErr: errors.New("timeout"),
		Badges:           &model.BadgeCounts{PendingBookings: 3},
	})

	out := buf.String()
	require.Contains(t, out, "unavailable: stats offline")
	require.Contains(t, out, "2026-10-18 10:00")
	require.Contains(t, out, "40.00")
	require.Contains(t, out, "unavailable: timeout")
	require.Contains(t, out, "── Badges ──")
}

func TestDiscount(t *testing.T) {
	require.Equal(t, "15%", discount(model.Offer{DiscountType: model.DiscountPercentage, DiscountValue: 15}))
	require.Equal(t, "5.00", discount(model.Offer{DiscountType: model.DiscountFlat, DiscountValue: 5}))
}
