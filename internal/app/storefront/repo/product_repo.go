package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository and ProductWriter for Spanner.
type ProductRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_product.Model
}

var (
	_ contracts.ProductRepository = (*ProductRepo)(nil)
	_ contracts.ProductWriter     = (*ProductRepo)(nil)
)

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client) *ProductRepo {
	return &ProductRepo{
		client:    client,
		committer: committer.NewCommitter(client),
		model:     m_product.NewModel(),
	}
}

// ListProducts returns products newest first.
func (r *ProductRepo) ListProducts(ctx context.Context, filter *contracts.ListFilter) ([]*domain.Product, error) {
	stmt := listProductsStatement(filter)

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var products []*domain.Product
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}

		data, err := m_product.Scan(row)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p, err := dataToProduct(data)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

func listProductsStatement(filter *contracts.ListFilter) spanner.Statement {
	b := query.From(m_product.TableName).
		Select(m_product.Columns...).
		OrderBy(m_product.CreatedAt, query.Desc)
	if filter != nil {
		if filter.Category != "" {
			b = b.Where(query.Eq(m_product.Category, filter.Category))
		}
		if filter.Limit > 0 {
			b = b.Limit(int64(filter.Limit))
		}
	}
	return b.Build()
}

// GetByID retrieves a product by ID.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	data, err := m_product.Scan(row)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return dataToProduct(data)
}

// UpsertProducts writes all products in a single commit.
func (r *ProductRepo) UpsertProducts(ctx context.Context, products []*domain.Product) error {
	plan := committer.NewPlan()
	for _, p := range products {
		data, err := productToData(p)
		if err != nil {
			return fmt.Errorf("product %s: %w", p.ID, err)
		}
		plan.Add(r.model.UpsertMut(data))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to upsert products: %w", err)
	}
	return nil
}

// readProducts loads the given products inside txn, keyed by ID. Missing IDs are absent from the map.
func readProducts(ctx context.Context, txn *spanner.ReadOnlyTransaction, ids []string) (map[string]*domain.Product, error) {
	products := make(map[string]*domain.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	keys := make([]spanner.Key, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, spanner.Key{id})
	}

	iter := txn.Read(ctx, m_product.TableName, spanner.KeySetFromKeys(keys...), m_product.Columns)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read products: %w", err)
		}
		data, err := m_product.Scan(row)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p, err := dataToProduct(data)
		if err != nil {
			return nil, err
		}
		products[p.ID] = p
	}
	return products, nil
}
