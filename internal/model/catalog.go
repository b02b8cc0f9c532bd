package model

import (
	"net/url"
	"time"
)

// Service represents a bookable treatment offered by a salon.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Image       string    `json:"image,omitempty"`
	SalonID     string    `json:"salonId"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceListParams filters the service catalog.
type ServiceListParams struct {
	ListParams
	Category string `json:"category" binding:"omitempty,max=100"`
	SalonID  string `json:"salonId"`
}

// Values encodes the filter as a query string.
func (p ServiceListParams) Values() url.Values {
	v := p.ListParams.Values()
	setIf(v, "category", p.Category)
	setIf(v, "salonId", p.SalonID)
	return v
}

// CreateServiceRequest adds a treatment to a salon's catalog.
type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=150"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	Category    string  `json:"category" binding:"required,max=100"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,min=5,max=600"`
	SalonID     string  `json:"salonId" binding:"required"`
}

// UpdateServiceRequest is a partial catalog edit.
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=2,max=150"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Duration    *int     `json:"duration,omitempty" binding:"omitempty,min=5,max=600"`
	IsActive    *bool    `json:"isActive,omitempty"`
}
