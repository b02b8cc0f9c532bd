package model

import (
	"net/url"
	"strconv"
)

// Envelope is the backend's standard response wrapper.
type Envelope[T any] struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes one page of a list endpoint.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// List is a page of records plus its pagination block.
type List[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// MessageResponse is returned by endpoints that only acknowledge an action.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SortOrder is the direction of a sorted list query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListParams holds the query parameters shared by every list endpoint.
type ListParams struct {
	Page   int       `json:"page" binding:"omitempty,min=1"`
	Limit  int       `json:"limit" binding:"omitempty,min=1,max=100"`
	Search string    `json:"search" binding:"omitempty,max=100"`
	SortBy string    `json:"sortBy" binding:"omitempty,max=50"`
	Order  SortOrder `json:"order" binding:"omitempty,oneof=asc desc"`
}

// Values encodes the non-zero parameters as a query string.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	setIf(v, "search", p.Search)
	setIf(v, "sortBy", p.SortBy)
	setIf(v, "order", string(p.Order))
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setBool(v url.Values, key string, value *bool) {
	if value != nil {
		v.Set(key, strconv.FormatBool(*value))
	}
}
