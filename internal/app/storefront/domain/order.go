package domain

import (
	"strings"
	"time"
)

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

// OrderStatusPending is the only status checkout assigns.
const OrderStatusPending OrderStatus = "pending"

// DefaultCountry is used when the shipping form leaves country blank.
const DefaultCountry = "United States"

// ShippingAddress is stored with the order as entered at checkout.
type ShippingAddress struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// Normalize trims every field and fills in the default country.
func (a ShippingAddress) Normalize() ShippingAddress {
	a.FullName = strings.TrimSpace(a.FullName)
	a.AddressLine1 = strings.TrimSpace(a.AddressLine1)
	a.AddressLine2 = strings.TrimSpace(a.AddressLine2)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.TrimSpace(a.Country)
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return a
}

// Validate requires every field except the second address line.
func (a ShippingAddress) Validate() error {
	if a.FullName == "" || a.AddressLine1 == "" || a.City == "" ||
		a.State == "" || a.PostalCode == "" || a.Country == "" {
		return ErrInvalidShippingAddress
	}
	return nil
}

// PaymentDetails are checked for presence and then discarded. No payment is processed.
type PaymentDetails struct {
	NameOnCard string
	CardNumber string
	Expiry     string
	CVV        string
}

// Validate requires all card fields.
func (p PaymentDetails) Validate() error {
	if strings.TrimSpace(p.NameOnCard) == "" || strings.TrimSpace(p.CardNumber) == "" ||
		strings.TrimSpace(p.Expiry) == "" || strings.TrimSpace(p.CVV) == "" {
		return ErrInvalidPayment
	}
	return nil
}

// Order is a placed checkout.
type Order struct {
	ID              string
	UserID          string
	TotalAmount     *Money
	Status          OrderStatus
	ShippingAddress ShippingAddress
	CreatedAt       time.Time
}

// OrderItem snapshots the unit price of a cart line at checkout time.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	Price     *Money
}
