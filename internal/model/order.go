package model

import (
	"net/url"
	"time"
)

// OrderStatus enumerates the fulfilment states of a product order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a customer's product purchase.
type Order struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	User            *User         `json:"user,omitempty"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus,omitempty"`
	ShippingAddress *Address      `json:"shippingAddress,omitempty"`
	TrackingNumber  string        `json:"trackingNumber,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// OrderListParams filters the order list.
type OrderListParams struct {
	ListParams
	Status        OrderStatus   `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	PaymentStatus PaymentStatus `json:"paymentStatus" binding:"omitempty,oneof=pending paid failed refunded"`
	UserID        string        `json:"userId"`
}

// Values encodes the filter as a query string.
func (p OrderListParams) Values() url.Values {
	v := p.ListParams.Values()
	setIf(v, "status", string(p.Status))
	setIf(v, "paymentStatus", string(p.PaymentStatus))
	setIf(v, "userId", p.UserID)
	return v
}

// UpdateOrderStatusRequest advances an order through fulfilment.
type UpdateOrderStatusRequest struct {
	Status         OrderStatus `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
	TrackingNumber string      `json:"trackingNumber,omitempty" binding:"omitempty,max=100"`
}
