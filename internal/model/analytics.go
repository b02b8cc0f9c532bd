package model

import "net/url"

// AnalyticsOverview is the dashboard's headline numbers.
type AnalyticsOverview struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalSalons   int     `json:"totalSalons"`
	TotalBookings int     `json:"totalBookings"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	BookingsToday int     `json:"bookingsToday"`
	RevenueToday  float64 `json:"revenueToday"`
	PendingSalons int     `json:"pendingSalons"`
	ActiveOffers  int     `json:"activeOffers"`
}

// RevenuePeriod selects the bucket size of the revenue series.
type RevenuePeriod string

const (
	RevenueDaily   RevenuePeriod = "daily"
	RevenueWeekly  RevenuePeriod = "weekly"
	RevenueMonthly RevenuePeriod = "monthly"
	RevenueYearly  RevenuePeriod = "yearly"
)

// RevenuePoint is one bucket of the revenue chart.
type RevenuePoint struct {
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
	Orders   int     `json:"orders"`
}

// RevenueParams selects the revenue series.
type RevenueParams struct {
	Period RevenuePeriod `json:"period" binding:"omitempty,oneof=daily weekly monthly yearly"`
	From   string        `json:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string        `json:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Values encodes the selection as a query string.
func (p RevenueParams) Values() url.Values {
	v := url.Values{}
	setIf(v, "period", string(p.Period))
	setIf(v, "from", p.From)
	setIf(v, "to", p.To)
	return v
}

// TopSalon ranks a salon by booking volume.
type TopSalon struct {
	SalonID  string  `json:"salonId"`
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Rating   float64 `json:"rating"`
}

// BadgeCounts feeds the navigation badges polled by the console.
type BadgeCounts struct {
	PendingSalons       int `json:"pendingSalons"`
	PendingBookings     int `json:"pendingBookings"`
	PendingOrders       int `json:"pendingOrders"`
	OpenDisputes        int `json:"openDisputes"`
	LowStockProducts    int `json:"lowStockProducts"`
	UnreadNotifications int `json:"unreadNotifications"`
}
