package model

import (
	"net/url"
	"time"
)

// Role enumerates the account roles issued by the backend.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCustomer   Role = "customer"
	RoleSalonOwner Role = "salon_owner"
	RoleStaff      Role = "staff"
)

// User represents a marketplace account.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Role       Role      `json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	IsVerified bool      `json:"isVerified"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the account may use the console.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserListParams filters the customer list.
type UserListParams struct {
	ListParams
	Role     Role  `json:"role" binding:"omitempty,oneof=admin customer salon_owner staff"`
	IsActive *bool `json:"isActive"`
}

// Values encodes the filter as a query string.
func (p UserListParams) Values() url.Values {
	v := p.ListParams.Values()
	setIf(v, "role", string(p.Role))
	setBool(v, "isActive", p.IsActive)
	return v
}

// UpdateUserRequest is the admin-side user edit payload.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,min=7,max=20"`
	Role     *Role   `json:"role,omitempty" binding:"omitempty,oneof=admin customer salon_owner staff"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateProfileRequest edits the signed-in admin's own profile.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=100"`
	Phone string `json:"phone" binding:"omitempty,min=7,max=20"`
}
