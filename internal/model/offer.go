package model

import (
	"net/url"
	"time"
)

// DiscountType enumerates how an offer reduces the price.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// Offer represents a promotional discount code.
type Offer struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Code           string       `json:"code"`
	DiscountType   DiscountType `json:"discountType"`
	DiscountValue  float64      `json:"discountValue"`
	MinOrderAmount float64      `json:"minOrderAmount,omitempty"`
	MaxDiscount    float64      `json:"maxDiscount,omitempty"`
	ValidFrom      time.Time    `json:"validFrom"`
	ValidUntil     time.Time    `json:"validUntil"`
	UsageLimit     int          `json:"usageLimit,omitempty"`
	UsedCount      int          `json:"usedCount"`
	SalonID        string       `json:"salonId,omitempty"`
	IsActive       bool         `json:"isActive"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// OfferListParams filters the offer list.
type OfferListParams struct {
	ListParams
	IsActive *bool  `json:"isActive"`
	SalonID  string `json:"salonId"`
}

// Values encodes the filter as a query string.
func (p OfferListParams) Values() url.Values {
	v := p.ListParams.Values()
	setBool(v, "isActive", p.IsActive)
	setIf(v, "salonId", p.SalonID)
	return v
}

// CreateOfferRequest creates a promotional code.
type CreateOfferRequest struct {
	Title          string       `json:"title" binding:"required,min=3,max=150"`
	Description    string       `json:"description,omitempty" binding:"omitempty,max=1000"`
	Code           string       `json:"code" binding:"required,alphanum,min=3,max=30"`
	DiscountType   DiscountType `json:"discountType" binding:"required,oneof=percentage flat"`
	DiscountValue  float64      `json:"discountValue" binding:"required,gt=0"`
	MinOrderAmount float64      `json:"minOrderAmount,omitempty" binding:"omitempty,gte=0"`
	MaxDiscount    float64      `json:"maxDiscount,omitempty" binding:"omitempty,gt=0"`
	ValidFrom      time.Time    `json:"validFrom" binding:"required"`
	ValidUntil     time.Time    `json:"validUntil" binding:"required,gtfield=ValidFrom"`
	UsageLimit     int          `json:"usageLimit,omitempty" binding:"omitempty,min=1"`
	SalonID        string       `json:"salonId,omitempty"`
}

// UpdateOfferRequest is a partial offer edit.
type UpdateOfferRequest struct {
	Title          *string    `json:"title,omitempty" binding:"omitempty,min=3,max=150"`
	Description    *string    `json:"description,omitempty" binding:"omitempty,max=1000"`
	DiscountValue  *float64   `json:"discountValue,omitempty" binding:"omitempty,gt=0"`
	MinOrderAmount *float64   `json:"minOrderAmount,omitempty" binding:"omitempty,gte=0"`
	MaxDiscount    *float64   `json:"maxDiscount,omitempty" binding:"omitempty,gt=0"`
	ValidUntil     *time.Time `json:"validUntil,omitempty"`
	UsageLimit     *int       `json:"usageLimit,omitempty" binding:"omitempty,min=1"`
}
