package models

import "time"

// Order status values accepted by the COD order endpoints.
const (
	OrderPending        = "Pending"
	OrderPreparing      = "Preparing"
	OrderOutForDelivery = "Out for Delivery"
	OrderDelivered      = "Delivered"
	OrderCancelled      = "Cancelled"
)

const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

type OrderItem struct {
	MenuItem Ref     `json:"menuItem_id"`
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderCustomer struct {
	ID       string `json:"_id"`
	FullName string `json:"full_name,omitempty"`
}

type ShippingAddress struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type Order struct {
	ID              string          `json:"_id"`
	OrderID         string          `json:"orderId,omitempty"`
	Customer        OrderCustomer   `json:"user_id"`
	Items           []OrderItem     `json:"items,omitempty"`
	TotalPrice      float64         `json:"totalPrice"`
	TaxAmount       float64         `json:"taxAmount"`
	TotalAmount     float64         `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	OrderStatus     string          `json:"orderStatus"`
	PaymentStatus   string          `json:"paymentStatus"`
	ShippingAddress ShippingAddress `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
}

func (o Order) Identity() string { return o.ID }
