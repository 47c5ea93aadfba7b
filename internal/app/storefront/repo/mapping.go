package repo

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_cart_item"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/models/m_order_item"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
)

// moneyParts splits a price into the numerator/denominator column pair.
func moneyParts(m *domain.Money) (int64, int64, error) {
	if m == nil {
		return 0, 1, nil
	}
	num, okNum := m.Numerator()
	den, okDen := m.Denominator()
	if !okNum || !okDen {
		return 0, 0, fmt.Errorf("%w: %s does not fit in storage columns", domain.ErrInvalidPrice, m.String())
	}
	return num, den, nil
}

func moneyFromParts(num, den int64) (*domain.Money, error) {
	m, err := domain.NewMoney(num, den)
	if err != nil {
		return nil, fmt.Errorf("corrupt money columns %d/%d: %w", num, den, err)
	}
	return m, nil
}

func productToData(p *domain.Product) (*m_product.Data, error) {
	num, den, err := moneyParts(p.Price)
	if err != nil {
		return nil, err
	}
	return &m_product.Data{
		ProductID:        p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Category:         p.Category,
		PriceNumerator:   num,
		PriceDenominator: den,
		StockQuantity:    p.StockQuantity,
		ImageURL:         spanner.NullString{StringVal: p.ImageURL, Valid: p.ImageURL != ""},
		CreatedAt:        p.CreatedAt,
	}, nil
}

func dataToProduct(d *m_product.Data) (*domain.Product, error) {
	price, err := moneyFromParts(d.PriceNumerator, d.PriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", d.ProductID, err)
	}
	return &domain.Product{
		ID:            d.ProductID,
		Name:          d.Name,
		Description:   d.Description,
		Category:      d.Category,
		Price:         price,
		StockQuantity: d.StockQuantity,
		ImageURL:      d.ImageURL.StringVal,
		CreatedAt:     d.CreatedAt,
	}, nil
}

func dataToCartLine(d *m_cart_item.Data) *domain.CartLineItem {
	return &domain.CartLineItem{
		ID:        d.CartItemID,
		UserID:    d.UserID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		CreatedAt: d.CreatedAt,
	}
}

func orderToData(o *domain.Order) (*m_order.Data, error) {
	num, den, err := moneyParts(o.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("order %s total: %w", o.ID, err)
	}
	return &m_order.Data{
		OrderID:          o.ID,
		UserID:           o.UserID,
		TotalNumerator:   num,
		TotalDenominator: den,
		Status:           string(o.Status),
		ShippingAddress:  spanner.NullJSON{Value: o.ShippingAddress, Valid: true},
		CreatedAt:        o.CreatedAt,
	}, nil
}

func dataToOrder(d *m_order.Data) (*domain.Order, error) {
	total, err := moneyFromParts(d.TotalNumerator, d.TotalDenominator)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", d.OrderID, err)
	}

	var addr domain.ShippingAddress
	if d.ShippingAddress.Valid {
		raw, err := json.Marshal(d.ShippingAddress.Value)
		if err != nil {
			return nil, fmt.Errorf("order %s shipping address: %w", d.OrderID, err)
		}
		if err := json.Unmarshal(raw, &addr); err != nil {
			return nil, fmt.Errorf("order %s shipping address: %w", d.OrderID, err)
		}
	}

	return &domain.Order{
		ID:              d.OrderID,
		UserID:          d.UserID,
		TotalAmount:     total,
		Status:          domain.OrderStatus(d.Status),
		ShippingAddress: addr,
		CreatedAt:       d.CreatedAt,
	}, nil
}

func orderItemToData(item *domain.OrderItem) (*m_order_item.Data, error) {
	num, den, err := moneyParts(item.Price)
	if err != nil {
		return nil, fmt.Errorf("order item %s price: %w", item.ID, err)
	}
	return &m_order_item.Data{
		OrderID:          item.OrderID,
		OrderItemID:      item.ID,
		ProductID:        item.ProductID,
		Quantity:         item.Quantity,
		PriceNumerator:   num,
		PriceDenominator: den,
	}, nil
}
