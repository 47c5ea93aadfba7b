package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_cart_item"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// CartRepo implements CartRepository for Spanner.
type CartRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_cart_item.Model
}

var _ contracts.CartRepository = (*CartRepo)(nil)

// NewCartRepo creates a new CartRepo.
func NewCartRepo(client *spanner.Client) *CartRepo {
	return &CartRepo{
		client:    client,
		committer: committer.NewCommitter(client),
		model:     m_cart_item.NewModel(),
	}
}

// ListForUser reads the cart and its products from one snapshot.
func (r *CartRepo) ListForUser(ctx context.Context, userID string) ([]*domain.CartLineItem, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	stmt := query.From(m_cart_item.TableName).
		Select(m_cart_item.Columns...).
		Where(query.Eq(m_cart_item.UserID, userID)).
		OrderBy(m_cart_item.CreatedAt, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	var items []*domain.CartLineItem
	var productIDs []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list cart items: %w", err)
		}
		data, err := m_cart_item.Scan(row)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, dataToCartLine(data))
		productIDs = append(productIDs, data.ProductID)
	}

	products, err := readProducts(ctx, txn, productIDs)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Product = products[item.ProductID]
	}

	return items, nil
}

// Insert adds a new cart line. A line that already exists for the
// (user, product) key yields domain.ErrCartItemExists.
func (r *CartRepo) Insert(ctx context.Context, item *domain.CartLineItem) error {
	plan := committer.NewPlan()
	plan.Add(r.model.InsertMut(&m_cart_item.Data{
		UserID:     item.UserID,
		ProductID:  item.ProductID,
		CartItemID: item.ID,
		Quantity:   item.Quantity,
	}))

	if err := r.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return fmt.Errorf("%w: product %s", domain.ErrCartItemExists, item.ProductID)
		}
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (r *CartRepo) UpdateQuantity(ctx context.Context, userID, productID string, quantity int64) error {
	plan := committer.NewPlan()
	plan.Add(r.model.UpdateQuantityMut(userID, productID, quantity))

	if err := r.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return domain.ErrCartItemNotFound
		}
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

// Delete removes one line.
func (r *CartRepo) Delete(ctx context.Context, userID, productID string) error {
	plan := committer.NewPlan()
	plan.Add(r.model.DeleteMut(userID, productID))

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// DeleteAllForUser empties the user's cart.
func (r *CartRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	plan := committer.NewPlan()
	plan.Add(r.model.DeleteAllForUserMut(userID))

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
