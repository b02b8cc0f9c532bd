package model

import (
	"net/url"
	"time"
)

// Product represents a retail item sold through the marketplace.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Price         float64   `json:"price"`
	DiscountPrice float64   `json:"discountPrice,omitempty"`
	Stock         int       `json:"stock"`
	Images        []string  `json:"images,omitempty"`
	SalonID       string    `json:"salonId,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductListParams filters the product list.
type ProductListParams struct {
	ListParams
	Category string `json:"category" binding:"omitempty,max=100"`
	SalonID  string `json:"salonId"`
	LowStock bool   `json:"lowStock"`
}

// Values encodes the filter as a query string.
func (p ProductListParams) Values() url.Values {
	v := p.ListParams.Values()
	setIf(v, "category", p.Category)
	setIf(v, "salonId", p.SalonID)
	if p.LowStock {
		v.Set("lowStock", "true")
	}
	return v
}

// CreateProductRequest holds the text fields of a new product. Images travel
// as multipart files alongside it.
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=150"`
	Description   string  `json:"description" binding:"omitempty,max=2000"`
	Category      string  `json:"category" binding:"required,max=100"`
	Brand         string  `json:"brand" binding:"omitempty,max=100"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	DiscountPrice float64 `json:"discountPrice" binding:"omitempty,gt=0,ltfield=Price"`
	Stock         int     `json:"stock" binding:"min=0"`
	SalonID       string  `json:"salonId"`
}

// UpdateProductRequest is a partial product edit.
type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=2,max=150"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	Category      *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Brand         *string  `json:"brand,omitempty" binding:"omitempty,max=100"`
	Price         *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	DiscountPrice *float64 `json:"discountPrice,omitempty" binding:"omitempty,gte=0"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

// UpdateStockRequest sets the absolute stock level of a product.
type UpdateStockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}
