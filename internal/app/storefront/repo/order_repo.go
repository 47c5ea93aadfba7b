package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_cart_item"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/models/m_order_item"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// OrderRepo implements OrderRepository and OrderCommitter for Spanner.
type OrderRepo struct {
	client     *spanner.Client
	committer  *committer.Committer
	orderModel *m_order.Model
	itemModel  *m_order_item.Model
	cartModel  *m_cart_item.Model
	outbox     *OutboxRepo
}

var (
	_ contracts.OrderRepository = (*OrderRepo)(nil)
	_ contracts.OrderCommitter  = (*OrderRepo)(nil)
)

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(client *spanner.Client, outbox *OutboxRepo) *OrderRepo {
	return &OrderRepo{
		client:     client,
		committer:  committer.NewCommitter(client),
		orderModel: m_order.NewModel(),
		itemModel:  m_order_item.NewModel(),
		cartModel:  m_cart_item.NewModel(),
		outbox:     outbox,
	}
}

// InsertOrder writes the order row on its own.
func (r *OrderRepo) InsertOrder(ctx context.Context, order *domain.Order) error {
	mut, err := r.insertOrderMut(order)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(mut)
	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// InsertOrderItems writes the items of an already inserted order.
func (r *OrderRepo) InsertOrderItems(ctx context.Context, items []*domain.OrderItem) error {
	muts, err := r.insertItemMuts(items)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.AddMultiple(muts)
	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

// CommitOrder writes the order, its items, the order.placed event and the
// deletion of the ordered cart lines in one commit. Lines added to the cart
// after it was read are left in place.
func (r *OrderRepo) CommitOrder(ctx context.Context, order *domain.Order, items []*domain.OrderItem) error {
	plan := committer.NewPlan()

	orderMut, err := r.insertOrderMut(order)
	if err != nil {
		return err
	}
	plan.Add(orderMut)

	itemMuts, err := r.insertItemMuts(items)
	if err != nil {
		return err
	}
	plan.AddMultiple(itemMuts)

	for _, item := range items {
		plan.Add(r.cartModel.DeleteMut(order.UserID, item.ProductID))
	}

	eventMut, err := r.outbox.InsertMut(domain.NewOrderPlacedEvent(order, items))
	if err != nil {
		return err
	}
	plan.Add(eventMut)

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit order %s: %w", order.ID, err)
	}
	return nil
}

// GetOrder reads an order back. Used by integration tests and ops tooling.
func (r *OrderRepo) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	row, err := r.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, fmt.Errorf("order %s not found", orderID)
		}
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var data m_order.Data
	if err := row.Columns(
		&data.OrderID,
		&data.UserID,
		&data.TotalNumerator,
		&data.TotalDenominator,
		&data.Status,
		&data.ShippingAddress,
		&data.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return dataToOrder(&data)
}

func (r *OrderRepo) insertOrderMut(order *domain.Order) (*spanner.Mutation, error) {
	data, err := orderToData(order)
	if err != nil {
		return nil, err
	}
	return r.orderModel.InsertMut(data), nil
}

func (r *OrderRepo) insertItemMuts(items []*domain.OrderItem) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, len(items))
	for _, item := range items {
		data, err := orderItemToData(item)
		if err != nil {
			return nil, err
		}
		muts = append(muts, r.itemModel.InsertMut(data))
	}
	return muts, nil
}
