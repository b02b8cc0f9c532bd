package model

// Address represents a customer's saved address.
type Address struct {
	ID         string `json:"id,omitempty"`
	UserID     string `json:"userId,omitempty"`
	Label      string `json:"label,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country,omitempty"`
	IsDefault  bool   `json:"isDefault"`
}

// CreateAddressRequest adds an address to a customer account.
type CreateAddressRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Label      string `json:"label,omitempty" binding:"omitempty,max=50"`
	Line1      string `json:"line1" binding:"required,max=255"`
	Line2      string `json:"line2,omitempty" binding:"omitempty,max=255"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state,omitempty" binding:"omitempty,max=100"`
	PostalCode string `json:"postalCode" binding:"required,max=20"`
	Country    string `json:"country,omitempty" binding:"omitempty,max=100"`
	IsDefault  bool   `json:"isDefault"`
}

// UpdateAddressRequest is a partial address edit.
type UpdateAddressRequest struct {
	Label      *string `json:"label,omitempty" binding:"omitempty,max=50"`
	Line1      *string `json:"line1,omitempty" binding:"omitempty,max=255"`
	Line2      *string `json:"line2,omitempty" binding:"omitempty,max=255"`
	City       *string `json:"city,omitempty" binding:"omitempty,max=100"`
	State      *string `json:"state,omitempty" binding:"omitempty,max=100"`
	PostalCode *string `json:"postalCode,omitempty" binding:"omitempty,max=20"`
	Country    *string `json:"country,omitempty" binding:"omitempty,max=100"`
	IsDefault  *bool   `json:"isDefault,omitempty"`
}
