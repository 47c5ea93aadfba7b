package http

import (
	"errors"
	"net/http"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// mapDomainErrorToHTTP converts domain errors to HTTP status codes and a client message.
func mapDomainErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"

	case errors.Is(err, domain.ErrCartItemNotFound):
		return http.StatusNotFound, "cart item not found"

	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"

	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token"

	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "quantity must be at least 1"

	case errors.Is(err, domain.ErrInvalidShippingAddress):
		return http.StatusBadRequest, "shipping address is incomplete"

	case errors.Is(err, domain.ErrInvalidPayment):
		return http.StatusBadRequest, "payment details are incomplete"

	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidStock):
		return http.StatusBadRequest, "invalid request"

	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusConflict, "product is out of stock"

	case errors.Is(err, domain.ErrCartItemExists):
		return http.StatusConflict, "product is already in the cart"

	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusConflict, "cart is empty"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
