package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/dashboard"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/session"
	"github.com/glowbook/admin-console/internal/validator"
)

// renderError prints err the way the console would surface it to an admin.
func renderError(w io.Writer, err error) {
	var apiErr *apiclient.Error
	var valErr *validator.Error

	switch {
	case errors.As(err, &apiErr):
		if apiErr.Status == 0 {
			fmt.Fprintf(w, "Error: %s\n", apiErr.Message)
			return
		}
		fmt.Fprintf(w, "Error (%d): %s\n", apiErr.Status, apiErr.Message)
		for _, fe := range apiErr.Errors {
			if fe.Field != "" {
				fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
			} else {
				fmt.Fprintf(w, "  %s\n", fe.Message)
			}
		}
		if apiErr.Details != "" && apiErr.Details != apiErr.Message {
			fmt.Fprintf(w, "  details: %s\n", apiErr.Details)
		}
	case errors.As(err, &valErr):
		fmt.Fprintln(w, "Error: please fix the following fields")
		for _, field := range sortedKeys(valErr.Fields) {
			fmt.Fprintf(w, "  %s: %s\n", field, valErr.Fields[field])
		}
	case errors.Is(err, session.ErrAccessDenied):
		fmt.Fprintf(w, "Error: %s\n", session.AccessDeniedMessage)
	case errors.Is(err, session.ErrNotAuthenticated):
		fmt.Fprintln(w, "Error: not signed in. Run `admin login` first.")
	case errors.Is(err, errUsage):
		fmt.Fprintf(w, "Usage error: %s\n", strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// renderTable writes rows under headers, followed by a page footer when p is set.
func renderTable(w io.Writer, headers []string, rows [][]string, p *model.Pagination) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	if p != nil {
		fmt.Fprintf(w, "page %d/%d, %d total\n", p.Page, p.TotalPages, p.Total)
	}
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderOverview(w io.Writer, o *dashboard.Overview) {
	fmt.Fprintln(w, "── Overview ──")
	if o.StatsErr != nil {
		renderSliceError(w, o.StatsErr)
	} else if s := o.Stats; s != nil {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Users\t%d\tSalons\t%d\n", s.TotalUsers, s.TotalSalons)
		fmt.Fprintf(tw, "Bookings\t%d\tOrders\t%d\n", s.TotalBookings, s.TotalOrders)
		fmt.Fprintf(tw, "Revenue\t%s\tToday\t%s\n", money(s.TotalRevenue), money(s.RevenueToday))
		fmt.Fprintf(tw, "Bookings today\t%d\tActive offers\t%d\n", s.BookingsToday, s.ActiveOffers)
		tw.Flush()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "── Recent bookings ──")
	if o.RecentBookingsErr != nil {
		renderSliceError(w, o.RecentBookingsErr)
	} else {
		rows := make([][]string, 0, len(o.RecentBookings))
		for _, b := range o.RecentBookings {
			rows = append(rows, []string{b.ID, b.Date + " " + b.StartTime, string(b.Status), money(b.TotalAmount)})
		}
		renderTable(w, []string{"ID", "WHEN", "STATUS", "TOTAL"}, rows, nil)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "── Pending salons ──")
	if o.PendingSalonsErr != nil {
		renderSliceError(w, o.PendingSalonsErr)
	} else {
		rows := make([][]string, 0, len(o.PendingSalons))
		for _, s := range o.PendingSalons {
			rows = append(rows, []string{s.ID, s.Name, s.City})
		}
		renderTable(w, []string{"ID", "NAME", "CITY"}, rows, nil)
	}

	fmt.Fprintln(w)
	if o.BadgesErr != nil {
		fmt.Fprintln(w, "── Badges ──")
		renderSliceError(w, o.BadgesErr)
		return
	}
	renderBadges(w, o.Badges, false)
}

func renderSliceError(w io.Writer, err error) {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintf(w, "unavailable: %s\n", apiErr.Message)
		return
	}
	fmt.Fprintf(w, "unavailable: %v\n", err)
}

// renderBadges prints the counters. In watch mode each refresh is one line.
func renderBadges(w io.Writer, b *model.BadgeCounts, watch bool) {
	if b == nil {
		return
	}
	counts := []struct {
		label string
		n     int
	}{
		{"salons", b.PendingSalons},
		{"bookings", b.PendingBookings},
		{"orders", b.PendingOrders},
		{"disputes", b.OpenDisputes},
		{"low stock", b.LowStockProducts},
		{"notifications", b.UnreadNotifications},
	}

	if watch {
		parts := make([]string, 0, len(counts))
		for _, c := range counts {
			parts = append(parts, c.label+"="+strconv.Itoa(c.n))
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return
	}

	fmt.Fprintln(w, "── Badges ──")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.label, c.n)
	}
	tw.Flush()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func discount(o model.Offer) string {
	if o.DiscountType == model.DiscountPercentage {
		return strconv.FormatFloat(o.DiscountValue, 'f', -1, 64) + "%"
	}
	return money(o.DiscountValue)
}

