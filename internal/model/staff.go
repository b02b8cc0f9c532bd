package model

import (
	"net/url"
	"time"
)

// Staff represents a stylist or therapist employed by a salon.
type Staff struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Photo          string    `json:"photo,omitempty"`
	SalonID        string    `json:"salonId"`
	ServiceIDs     []string  `json:"serviceIds,omitempty"`
	Rating         float64   `json:"rating"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// StaffListParams filters the staff list.
type StaffListParams struct {
	ListParams
	SalonID string `json:"salonId"`
}

// Values encodes the filter as a query string.
func (p StaffListParams) Values() url.Values {
	v := p.ListParams.Values()
	setIf(v, "salonId", p.SalonID)
	return v
}

// CreateStaffRequest holds the text fields of a new staff member. The photo
// travels as a multipart file alongside it.
type CreateStaffRequest struct {
	Name           string   `json:"name" binding:"required,min=2,max=100"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Phone          string   `json:"phone" binding:"required,min=7,max=20"`
	Specialization string   `json:"specialization" binding:"omitempty,max=100"`
	SalonID        string   `json:"salonId" binding:"required"`
	ServiceIDs     []string `json:"serviceIds"`
}

// UpdateStaffRequest is a partial staff edit.
type UpdateStaffRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email          *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string  `json:"phone,omitempty" binding:"omitempty,min=7,max=20"`
	Specialization *string  `json:"specialization,omitempty" binding:"omitempty,max=100"`
	ServiceIDs     []string `json:"serviceIds,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}
