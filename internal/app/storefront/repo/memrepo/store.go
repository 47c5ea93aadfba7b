// Package memrepo is an in-process storefront backend for local runs and tests.
package memrepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Store keeps products, carts and orders in maps guarded by one lock.
type Store struct {
	mu sync.RWMutex

	products     map[string]*domain.Product
	productOrder []string

	carts map[string][]*domain.CartLineItem // by user ID, insertion order

	orders     map[string]*domain.Order
	orderItems map[string][]*domain.OrderItem
	events     []domain.DomainEvent
}

var (
	_ contracts.Store             = (*Store)(nil)
	_ contracts.ProductRepository = (*Store)(nil)
	_ contracts.ProductWriter     = (*Store)(nil)
	_ contracts.CartRepository    = (*Store)(nil)
	_ contracts.OrderRepository   = (*Store)(nil)
	_ contracts.OrderCommitter    = (*Store)(nil)
)

// New creates an empty Store, optionally preloaded with products.
func New(products ...*domain.Product) *Store {
	s := &Store{
		products:   make(map[string]*domain.Product),
		carts:      make(map[string][]*domain.CartLineItem),
		orders:     make(map[string]*domain.Order),
		orderItems: make(map[string][]*domain.OrderItem),
	}
	s.upsertLocked(products)
	return s
}

func (s *Store) Products() contracts.ProductRepository { return s }
func (s *Store) Carts() contracts.CartRepository       { return s }
func (s *Store) Orders() contracts.OrderRepository     { return s }
func (s *Store) Close()                                {}

// Writer exposes catalog writes for seeding.
func (s *Store) Writer() contracts.ProductWriter { return s }

// ListProducts returns products in insertion order.
func (s *Store) ListProducts(ctx context.Context, filter *contracts.ListFilter) ([]*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		p := s.products[id]
		if filter != nil && filter.Category != "" && p.Category != filter.Category {
			continue
		}
		products = append(products, copyProduct(p))
		if filter != nil && filter.Limit > 0 && len(products) == filter.Limit {
			break
		}
	}
	return products, nil
}

// GetByID retrieves a product by ID.
func (s *Store) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return copyProduct(p), nil
}

// UpsertProducts inserts new products and replaces existing ones by ID.
func (s *Store) UpsertProducts(ctx context.Context, products []*domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertLocked(products)
	return nil
}

// DeleteProduct removes a product, leaving cart lines that reference it dangling.
func (s *Store) DeleteProduct(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, productID)
	for i, id := range s.productOrder {
		if id == productID {
			s.productOrder = append(s.productOrder[:i], s.productOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) upsertLocked(products []*domain.Product) {
	for _, p := range products {
		if _, exists := s.products[p.ID]; !exists {
			s.productOrder = append(s.productOrder, p.ID)
		}
		s.products[p.ID] = copyProduct(p)
	}
}

// ListForUser returns the user's cart lines with the product joined.
func (s *Store) ListForUser(ctx context.Context, userID string) ([]*domain.CartLineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	items := make([]*domain.CartLineItem, 0, len(lines))
	for _, line := range lines {
		item := *line
		if p, ok := s.products[line.ProductID]; ok {
			item.Product = copyProduct(p)
		} else {
			item.Product = nil
		}
		items = append(items, &item)
	}
	return items, nil
}

// Insert adds a line. A second line for the same (user, product) is rejected like a unique key.
func (s *Store) Insert(ctx context.Context, item *domain.CartLineItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.FindLine(s.carts[item.UserID], item.ProductID) != nil {
		return fmt.Errorf("%w: product %s", domain.ErrCartItemExists, item.ProductID)
	}
	line := *item
	line.Product = nil
	s.carts[item.UserID] = append(s.carts[item.UserID], &line)
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (s *Store) UpdateQuantity(ctx context.Context, userID, productID string, quantity int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := domain.FindLine(s.carts[userID], productID)
	if line == nil {
		return domain.ErrCartItemNotFound
	}
	line.Quantity = quantity
	return nil
}

// Delete removes one line.
func (s *Store) Delete(ctx context.Context, userID, productID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLineLocked(userID, productID)
	return nil
}

// DeleteAllForUser empties the user's cart.
func (s *Store) DeleteAllForUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}

func (s *Store) deleteLineLocked(userID, productID string) {
	lines := s.carts[userID]
	for i, line := range lines {
		if line.ProductID == productID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// InsertOrder stores an order header.
func (s *Store) InsertOrder(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertOrderLocked(order)
}

// InsertOrderItems stores order lines. The order must exist.
func (s *Store) InsertOrderItems(ctx context.Context, items []*domain.OrderItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertItemsLocked(items)
}

// CommitOrder writes the order, its items and the outbox event, then removes
// the ordered lines from the cart, under one lock. Lines added after the cart
// was read stay in the cart.
func (s *Store) CommitOrder(ctx context.Context, order *domain.Order, items []*domain.OrderItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	for _, item := range items {
		if item.OrderID != order.ID {
			return fmt.Errorf("order item %s belongs to order %s", item.ID, item.OrderID)
		}
	}

	if err := s.insertOrderLocked(order); err != nil {
		return err
	}
	if err := s.insertItemsLocked(items); err != nil {
		return err
	}
	s.events = append(s.events, domain.NewOrderPlacedEvent(order, items))
	for _, item := range items {
		s.deleteLineLocked(order.UserID, item.ProductID)
	}
	return nil
}

func (s *Store) insertOrderLocked(order *domain.Order) error {
	if _, exists := s.orders[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	o := *order
	o.TotalAmount = order.TotalAmount.Copy()
	s.orders[order.ID] = &o
	return nil
}

func (s *Store) insertItemsLocked(items []*domain.OrderItem) error {
	for _, item := range items {
		if _, ok := s.orders[item.OrderID]; !ok {
			return fmt.Errorf("order %s does not exist", item.OrderID)
		}
	}
	for _, item := range items {
		it := *item
		it.Price = item.Price.Copy()
		s.orderItems[item.OrderID] = append(s.orderItems[item.OrderID], &it)
	}
	return nil
}

// Order returns a stored order and its items, for inspection.
func (s *Store) Order(orderID string) (*domain.Order, []*domain.OrderItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, nil, false
	}
	return o, append([]*domain.OrderItem(nil), s.orderItems[orderID]...), true
}

// Events returns the recorded outbox events, for inspection.
func (s *Store) Events() []domain.DomainEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.DomainEvent(nil), s.events...)
}

func copyProduct(p *domain.Product) *domain.Product {
	cp := *p
	if p.Price != nil {
		cp.Price = p.Price.Copy()
	}
	return &cp
}
