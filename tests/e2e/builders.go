//go:build integration

package e2e

import (
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// ProductBuilder helps create catalog products for tests with a fluent interface
type ProductBuilder struct {
	name        string
	description string
	category    string
	price       string
	stock       int64
	createdAt   time.Time
}

// NewProductBuilder creates a new builder with default values
func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		name:        "Test Product",
		description: "Default Description",
		category:    "Kitchen",
		price:       "10.00",
		stock:       10,
		createdAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

func (b *ProductBuilder) WithDescription(description string) *ProductBuilder {
	b.description = description
	return b
}

func (b *ProductBuilder) WithCategory(category string) *ProductBuilder {
	b.category = category
	return b
}

// WithPrice sets the price as a decimal string, e.g. "9.99"
func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.price = price
	return b
}

func (b *ProductBuilder) WithStock(stock int64) *ProductBuilder {
	b.stock = stock
	return b
}

func (b *ProductBuilder) CreatedAt(t time.Time) *ProductBuilder {
	b.createdAt = t
	return b
}

// Build creates the domain product with a fresh id
func (b *ProductBuilder) Build() *domain.Product {
	return &domain.Product{
		ID:            uuid.New().String(),
		Name:          b.name,
		Description:   b.description,
		Category:      b.category,
		Price:         domain.MustParseMoney(b.price),
		StockQuantity: b.stock,
		CreatedAt:     b.createdAt,
	}
}

// validAddress is a complete checkout form with country left blank.
func validAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName:     "Grace Hopper",
		AddressLine1: "1 Compiler Street",
		City:         "Arlington",
		State:        "VA",
		PostalCode:   "22201",
	}
}

func validPayment() domain.PaymentDetails {
	return domain.PaymentDetails{
		NameOnCard: "Grace Hopper",
		CardNumber: "4242424242424242",
		Expiry:     "12/30",
		CVV:        "123",
	}
}
