package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("product price must be non-negative whole cents")
	ErrInvalidCategory = errors.New("product category cannot be empty")
	ErrInvalidStock    = errors.New("product stock quantity cannot be negative")
	ErrOutOfStock      = errors.New("product is out of stock")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartItemExists   = errors.New("cart item already exists")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrEmptyCart        = errors.New("cart is empty")

	// Checkout errors
	ErrInvalidShippingAddress = errors.New("shipping address is incomplete")
	ErrInvalidPayment         = errors.New("payment details are incomplete")

	// Identity errors
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid or expired access token")
)
