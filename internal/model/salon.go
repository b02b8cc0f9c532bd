package model

import (
	"net/url"
	"time"
)

// SalonStatus enumerates the moderation states of a salon listing.
type SalonStatus string

const (
	SalonStatusPending   SalonStatus = "pending"
	SalonStatusApproved  SalonStatus = "approved"
	SalonStatusRejected  SalonStatus = "rejected"
	SalonStatusSuspended SalonStatus = "suspended"
)

// OpeningHours is one weekday's schedule.
type OpeningHours struct {
	Day    string `json:"day"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// Salon represents a marketplace salon listing.
type Salon struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	OwnerID      string         `json:"ownerId,omitempty"`
	Owner        *User          `json:"owner,omitempty"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Address      string         `json:"address,omitempty"`
	City         string         `json:"city,omitempty"`
	Images       []string       `json:"images,omitempty"`
	OpeningHours []OpeningHours `json:"openingHours,omitempty"`
	Rating       float64        `json:"rating"`
	ReviewCount  int            `json:"reviewCount"`
	Status       SalonStatus    `json:"status"`
	IsActive     bool           `json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// SalonListParams filters the salon list.
type SalonListParams struct {
	ListParams
	Status SalonStatus `json:"status" binding:"omitempty,oneof=pending approved rejected suspended"`
	City   string      `json:"city" binding:"omitempty,max=100"`
}

// Values encodes the filter as a query string.
func (p SalonListParams) Values() url.Values {
	v := p.ListParams.Values()
	setIf(v, "status", string(p.Status))
	setIf(v, "city", p.City)
	return v
}

// CreateSalonRequest holds the text fields of a new salon. Images travel as
// multipart files alongside it.
type CreateSalonRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	OwnerID     string `json:"ownerId" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"required,min=7,max=20"`
	Address     string `json:"address" binding:"required,max=255"`
	City        string `json:"city" binding:"required,max=100"`
}

// UpdateSalonRequest is a partial salon edit.
type UpdateSalonRequest struct {
	Name         *string        `json:"name,omitempty" binding:"omitempty,min=2,max=150"`
	Description  *string        `json:"description,omitempty" binding:"omitempty,max=2000"`
	Email        *string        `json:"email,omitempty" binding:"omitempty,email"`
	Phone        *string        `json:"phone,omitempty" binding:"omitempty,min=7,max=20"`
	Address      *string        `json:"address,omitempty" binding:"omitempty,max=255"`
	City         *string        `json:"city,omitempty" binding:"omitempty,max=100"`
	OpeningHours []OpeningHours `json:"openingHours,omitempty" binding:"omitempty,dive"`
	IsActive     *bool          `json:"isActive,omitempty"`
}

// UpdateSalonStatusRequest moves a salon through moderation.
type UpdateSalonStatusRequest struct {
	Status SalonStatus `json:"status" binding:"required,oneof=pending approved rejected suspended"`
	Reason string      `json:"reason,omitempty" binding:"required_if=Status rejected,required_if=Status suspended,max=500"`
}
