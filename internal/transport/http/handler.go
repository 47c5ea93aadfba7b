package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/browse_catalog"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/add_to_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/clear_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/remove_from_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/update_cart_quantity"
)

// Handler is a thin coordinator that delegates to use cases and queries.
type Handler struct {
	// Commands
	addToCart      *add_to_cart.Interactor
	updateQuantity *update_cart_quantity.Interactor
	removeFromCart *remove_from_cart.Interactor
	clearCart      *clear_cart.Interactor
	placeOrder     *place_order.Interactor

	// Queries
	browseCatalog *browse_catalog.Query
	getProduct    *get_product.Query
	getCart       *get_cart.Query
}

// NewHandler creates a new HTTP storefront handler.
func NewHandler(
	addToCart *add_to_cart.Interactor,
	updateQuantity *update_cart_quantity.Interactor,
	removeFromCart *remove_from_cart.Interactor,
	clearCart *clear_cart.Interactor,
	placeOrder *place_order.Interactor,
	browseCatalog *browse_catalog.Query,
	getProduct *get_product.Query,
	getCart *get_cart.Query,
) *Handler {
	return &Handler{
		addToCart:      addToCart,
		updateQuantity: updateQuantity,
		removeFromCart: removeFromCart,
		clearCart:      clearCart,
		placeOrder:     placeOrder,
		browseCatalog:  browseCatalog,
		getProduct:     getProduct,
		getCart:        getCart,
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	respondOK(c, http.StatusOK, "ok", gin.H{"status": "ok"})
}

// ListProducts serves GET /products?q=&category=&min_price=&max_price=&sort=.
// Absent price bounds are open.
func (h *Handler) ListProducts(c *gin.Context) {
	params, err := parseQueryParams(c)
	if err != nil {
		respondBadRequest(c, "invalid query parameters", err)
		return
	}

	resp, err := h.browseCatalog.Execute(c.Request.Context(), &browse_catalog.Request{Params: params})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "products retrieved", toCatalogDTO(resp))
}

// ListCategories serves GET /categories.
func (h *Handler) ListCategories(c *gin.Context) {
	resp, err := h.browseCatalog.Execute(c.Request.Context(), &browse_catalog.Request{})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "categories retrieved", resp.Categories)
}

// GetProduct serves GET /products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{ProductID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "product retrieved", toProductDTO(p))
}

// GetCart serves GET /cart.
func (h *Handler) GetCart(c *gin.Context) {
	resp, err := h.getCart.Execute(c.Request.Context(), &get_cart.Request{UserID: userID(c)})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "cart retrieved", toCartDTO(resp))
}

// AddToCart serves POST /cart/items.
func (h *Handler) AddToCart(c *gin.Context) {
	var body AddToCartRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	resp, err := h.addToCart.Execute(c.Request.Context(), &add_to_cart.Request{
		UserID:    userID(c),
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if resp.Merged {
		status = http.StatusOK
	}
	respondOK(c, status, "added to cart", gin.H{
		"cart_item_id": resp.CartItemID,
		"product_id":   body.ProductID,
		"quantity":     resp.Quantity,
	})
}

// UpdateCartItem serves PATCH /cart/items/:product_id.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var body UpdateQuantityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	err := h.updateQuantity.Execute(c.Request.Context(), &update_cart_quantity.Request{
		UserID:    userID(c),
		ProductID: c.Param("product_id"),
		Quantity:  body.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "cart item updated", gin.H{
		"product_id": c.Param("product_id"),
		"quantity":   body.Quantity,
	})
}

// RemoveCartItem serves DELETE /cart/items/:product_id.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	err := h.removeFromCart.Execute(c.Request.Context(), &remove_from_cart.Request{
		UserID:    userID(c),
		ProductID: c.Param("product_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "cart item removed", nil)
}

// ClearCart serves DELETE /cart.
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.clearCart.Execute(c.Request.Context(), &clear_cart.Request{UserID: userID(c)}); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "cart cleared", nil)
}

// PlaceOrder serves POST /orders.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var body PlaceOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	resp, err := h.placeOrder.Execute(c.Request.Context(), &place_order.Request{
		UserID:          userID(c),
		ShippingAddress: body.ShippingAddress,
		Payment:         body.Payment.toDomain(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "order placed", OrderDTO{
		OrderID:   resp.OrderID,
		Status:    string(domain.OrderStatusPending),
		Total:     resp.Total,
		ItemCount: resp.ItemCount,
	})
}

func userID(c *gin.Context) string {
	if user := userFrom(c); user != nil {
		return user.ID
	}
	return ""
}

func parseQueryParams(c *gin.Context) (domain.QueryParams, error) {
	params := domain.QueryParams{
		Term:     c.Query("q"),
		Category: c.Query("category"),
		SortKey:  domain.ParseSortKey(c.Query("sort")),
	}

	if s := strings.TrimSpace(c.Query("min_price")); s != "" {
		m, err := domain.ParseMoney(s)
		if err != nil {
			return params, err
		}
		params.PriceMin = m
	}
	if s := strings.TrimSpace(c.Query("max_price")); s != "" {
		m, err := domain.ParseMoney(s)
		if err != nil {
			return params, err
		}
		params.PriceMax = m
	}
	return params, nil
}
