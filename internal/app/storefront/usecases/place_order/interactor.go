package place_order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/engine"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Request contains the checkout form.
type Request struct {
	UserID          string
	ShippingAddress domain.ShippingAddress
	Payment         domain.PaymentDetails
}

// Response describes the placed order.
type Response struct {
	OrderID   string
	Total     *domain.Money
	ItemCount int64
}

// Interactor handles checkout.
type Interactor struct {
	carts  contracts.CartRepository
	orders contracts.OrderRepository
	clock  clock.Clock
}

// NewInteractor creates a new place order interactor.
func NewInteractor(
	carts contracts.CartRepository,
	orders contracts.OrderRepository,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		carts:  carts,
		orders: orders,
		clock:  clock,
	}
}

// Execute turns the user's cart into a pending order and removes the ordered lines.
// A line added while checkout runs stays in the cart for the next order.
// Payment details are validated and then dropped.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	address := req.ShippingAddress.Normalize()
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if err := req.Payment.Validate(); err != nil {
		return nil, err
	}

	items, err := i.carts.ListForUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	summary := engine.AggregateCart(items)
	order := &domain.Order{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		TotalAmount:     summary.Total,
		Status:          domain.OrderStatusPending,
		ShippingAddress: address,
		CreatedAt:       i.clock.Now(),
	}

	orderItems := make([]*domain.OrderItem, 0, len(items))
	for _, line := range items {
		orderItems = append(orderItems, &domain.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Product.PriceOrZero(),
		})
	}

	if err := i.persist(ctx, order, orderItems); err != nil {
		return nil, err
	}

	return &Response{
		OrderID:   order.ID,
		Total:     order.TotalAmount,
		ItemCount: summary.Count,
	}, nil
}

func (i *Interactor) persist(ctx context.Context, order *domain.Order, items []*domain.OrderItem) error {
	if oc, ok := i.orders.(contracts.OrderCommitter); ok {
		if err := oc.CommitOrder(ctx, order, items); err != nil {
			return fmt.Errorf("failed to place order: %w", err)
		}
		return nil
	}

	if err := i.orders.InsertOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	if err := i.orders.InsertOrderItems(ctx, items); err != nil {
		return fmt.Errorf("failed to insert order items for %s: %w", order.ID, err)
	}
	for _, item := range items {
		if err := i.carts.Delete(ctx, order.UserID, item.ProductID); err != nil {
			return fmt.Errorf("order %s placed but cart line %s not removed: %w", order.ID, item.ProductID, err)
		}
	}
	return nil
}
