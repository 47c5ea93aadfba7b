// Package repo is the Cloud Spanner storefront backend.
//
// Writes follow the mutation pattern: table models in internal/models build
// *spanner.Mutation values and a committer.CommitPlan applies them atomically.
// Reads use query.Builder statements or key reads.
package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
)

// Store bundles the Spanner repositories behind one client.
type Store struct {
	client   *spanner.Client
	products *ProductRepo
	carts    *CartRepo
	orders   *OrderRepo
	outbox   *OutboxRepo
}

var _ contracts.Store = (*Store)(nil)

// NewStore dials database (projects/P/instances/I/databases/D).
func NewStore(ctx context.Context, database string) (*Store, error) {
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}
	return NewStoreFromClient(client), nil
}

// NewStoreFromClient wraps an existing client. Close closes it.
func NewStoreFromClient(client *spanner.Client) *Store {
	outbox := NewOutboxRepo(client)
	return &Store{
		client:   client,
		products: NewProductRepo(client),
		carts:    NewCartRepo(client),
		orders:   NewOrderRepo(client, outbox),
		outbox:   outbox,
	}
}

func (s *Store) Products() contracts.ProductRepository { return s.products }
func (s *Store) Carts() contracts.CartRepository       { return s.carts }
func (s *Store) Orders() contracts.OrderRepository     { return s.orders }

// Writer exposes catalog writes for seeding.
func (s *Store) Writer() contracts.ProductWriter { return s.products }

// Outbox exposes the outbox for ops tooling.
func (s *Store) Outbox() *OutboxRepo { return s.outbox }

// OrderRepo returns the concrete order repository.
func (s *Store) OrderRepo() *OrderRepo { return s.orders }

func (s *Store) Close() { s.client.Close() }
