package model

import (
	"net/url"
	"time"
)

// BookingStatus enumerates the lifecycle of an appointment.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// PaymentStatus enumerates payment states shared by bookings and orders.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking represents a customer appointment at a salon.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	User          *User         `json:"user,omitempty"`
	SalonID       string        `json:"salonId"`
	Salon         *Salon        `json:"salon,omitempty"`
	StaffID       string        `json:"staffId,omitempty"`
	ServiceIDs    []string      `json:"serviceIds,omitempty"`
	Date          string        `json:"date"`
	StartTime     string        `json:"startTime"`
	EndTime       string        `json:"endTime,omitempty"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	TotalAmount   float64       `json:"totalAmount"`
	Notes         string        `json:"notes,omitempty"`
	CancelReason  string        `json:"cancelReason,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// BookingListParams filters the booking list.
type BookingListParams struct {
	ListParams
	Status   BookingStatus `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled no_show"`
	SalonID  string        `json:"salonId"`
	UserID   string        `json:"userId"`
	DateFrom string        `json:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string        `json:"dateTo" binding:"omitempty,datetime=2006-01-02"`
}

// Values encodes the filter as a query string.
func (p BookingListParams) Values() url.Values {
	v := p.ListParams.Values()
	setIf(v, "status", string(p.Status))
	setIf(v, "salonId", p.SalonID)
	setIf(v, "userId", p.UserID)
	setIf(v, "dateFrom", p.DateFrom)
	setIf(v, "dateTo", p.DateTo)
	return v
}

// UpdateBookingStatusRequest changes an appointment's status.
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed completed cancelled no_show"`
}

// CancelBookingRequest cancels an appointment on behalf of the customer.
type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
