package http

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/engine"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/browse_catalog"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart"
)

// ProductDTO is the wire form of a product. Prices are JSON numbers.
type ProductDTO struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	Price         *domain.Money `json:"price"`
	StockQuantity int64         `json:"stock_quantity"`
	ImageURL      string        `json:"image_url,omitempty"`
	InStock       bool          `json:"in_stock"`
	CreatedAt     time.Time     `json:"created_at"`
}

// CatalogDTO is the product listing page.
type CatalogDTO struct {
	Products   []ProductDTO `json:"products"`
	Categories []string     `json:"categories"`
	Count      int          `json:"count"`
}

// CartItemDTO is one cart line. Product is null when it no longer exists.
type CartItemDTO struct {
	ID        string        `json:"id"`
	ProductID string        `json:"product_id"`
	Quantity  int64         `json:"quantity"`
	LineTotal *domain.Money `json:"line_total"`
	Product   *ProductDTO   `json:"product"`
	CreatedAt time.Time     `json:"created_at"`
}

// CartDTO is the cart with its totals.
type CartDTO struct {
	Items []CartItemDTO `json:"items"`
	Total *domain.Money `json:"total"`
	Count int64         `json:"count"`
}

// AddToCartRequest is the body of POST /cart/items.
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

// UpdateQuantityRequest is the body of PATCH /cart/items/:product_id.
type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// PaymentDTO carries the demo card form.
type PaymentDTO struct {
	NameOnCard string `json:"name_on_card"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	Payment         PaymentDTO             `json:"payment"`
}

// OrderDTO confirms a placed order.
type OrderDTO struct {
	OrderID   string        `json:"order_id"`
	Status    string        `json:"status"`
	Total     *domain.Money `json:"total"`
	ItemCount int64         `json:"item_count"`
}

func toProductDTO(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.PriceOrZero(),
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		InStock:       p.InStock(),
		CreatedAt:     p.CreatedAt,
	}
}

func toCatalogDTO(resp *browse_catalog.Response) CatalogDTO {
	products := make([]ProductDTO, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, toProductDTO(p))
	}
	return CatalogDTO{
		Products:   products,
		Categories: resp.Categories,
		Count:      resp.Count,
	}
}

func toCartDTO(resp *get_cart.Response) CartDTO {
	items := make([]CartItemDTO, 0, len(resp.Items))
	for _, item := range resp.Items {
		dto := CartItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			LineTotal: engine.LineTotal(item),
			CreatedAt: item.CreatedAt,
		}
		if item.Product != nil {
			p := toProductDTO(item.Product)
			dto.Product = &p
		}
		items = append(items, dto)
	}
	return CartDTO{
		Items: items,
		Total: resp.Summary.Total,
		Count: resp.Summary.Count,
	}
}

func (p PaymentDTO) toDomain() domain.PaymentDetails {
	return domain.PaymentDetails{
		NameOnCard: p.NameOnCard,
		CardNumber: p.CardNumber,
		Expiry:     p.Expiry,
		CVV:        p.CVV,
	}
}
