package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// OrderRepository defines order persistence.
type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	InsertOrderItems(ctx context.Context, items []*domain.OrderItem) error
}

// OrderCommitter is implemented by stores that can write the order, its items,
// the order.placed outbox event and the removal of the ordered cart lines in
// one transaction. Cart lines not among the items must survive.
// Checkout prefers it over the step-by-step OrderRepository calls.
type OrderCommitter interface {
	CommitOrder(ctx context.Context, order *domain.Order, items []*domain.OrderItem) error
}
