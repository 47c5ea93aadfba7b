package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OrderPlacedEvent is emitted when checkout persists an order.
type OrderPlacedEvent struct {
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	TotalAmount string    `json:"total_amount"`
	ItemCount   int64     `json:"item_count"`
	Status      string    `json:"status"`
	PlacedAt    time.Time `json:"placed_at"`
}

func (e *OrderPlacedEvent) EventType() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) AggregateID() string {
	return e.OrderID
}

// NewOrderPlacedEvent builds the event for an order and its items.
func NewOrderPlacedEvent(order *Order, items []*OrderItem) *OrderPlacedEvent {
	var count int64
	for _, item := range items {
		count += item.Quantity
	}
	return &OrderPlacedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount.String(),
		ItemCount:   count,
		Status:      string(order.Status),
		PlacedAt:    order.CreatedAt,
	}
}
