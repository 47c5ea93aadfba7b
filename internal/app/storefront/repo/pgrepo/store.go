// Package pgrepo is the PostgreSQL storefront backend built on pgxpool.
//
// Prices are NUMERIC(12,2) columns exchanged as decimal text so no value
// passes through float64.
package pgrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Store implements every storefront repository against one pool.
type Store struct {
	pool *pgxpool.Pool
}

var (
	_ contracts.Store             = (*Store)(nil)
	_ contracts.ProductRepository = (*Store)(nil)
	_ contracts.ProductWriter     = (*Store)(nil)
	_ contracts.CartRepository    = (*Store)(nil)
	_ contracts.OrderRepository   = (*Store)(nil)
	_ contracts.OrderCommitter    = (*Store)(nil)
)

// Open connects to dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Products() contracts.ProductRepository { return s }
func (s *Store) Carts() contracts.CartRepository       { return s }
func (s *Store) Orders() contracts.OrderRepository     { return s }
func (s *Store) Writer() contracts.ProductWriter       { return s }

// Pool exposes the pool for migrations.
func (s *Store) Pool() *pgxpool.Pool { return s.pool }

func (s *Store) Close() { s.pool.Close() }

const productColumns = `p.id, p.name, p.description, p.category, p.price::text, p.stock_quantity, p.image_url, p.created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p        domain.Product
		price    string
		imageURL *string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &price, &p.StockQuantity, &imageURL, &p.CreatedAt); err != nil {
		return nil, err
	}
	m, err := domain.ParseMoney(price)
	if err != nil {
		return nil, fmt.Errorf("product %s price %q: %w", p.ID, price, err)
	}
	p.Price = m
	if imageURL != nil {
		p.ImageURL = *imageURL
	}
	return &p, nil
}

func numeric(m *domain.Money) string {
	if m == nil {
		return "0"
	}
	return m.String()
}

// ListProducts returns products newest first.
func (s *Store) ListProducts(ctx context.Context, filter *contracts.ListFilter) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p`
	var args []any
	if filter != nil && filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" WHERE p.category = $%d", len(args))
	}
	query += " ORDER BY p.created_at DESC"
	if filter != nil && filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a product by ID.
func (s *Store) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, productID)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}
	return p, nil
}

// UpsertProducts writes all products in one transaction.
func (s *Store) UpsertProducts(ctx context.Context, products []*domain.Product) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const upsert = `
		INSERT INTO products (id, name, description, category, price, stock_quantity, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, NULLIF($7, ''), COALESCE($8, now()))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			stock_quantity = EXCLUDED.stock_quantity,
			image_url = EXCLUDED.image_url`

	batch := &pgx.Batch{}
	for _, p := range products {
		var createdAt any
		if !p.CreatedAt.IsZero() {
			createdAt = p.CreatedAt
		}
		batch.Queue(upsert, p.ID, p.Name, p.Description, p.Category, numeric(p.Price), p.StockQuantity, p.ImageURL, createdAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert products: %w", err)
	}

	return tx.Commit(ctx)
}

// ListForUser joins each line with its product; a deleted product yields a nil Product.
func (s *Store) ListForUser(ctx context.Context, userID string) ([]*domain.CartLineItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.user_id, c.product_id, c.quantity, c.created_at, p.id IS NOT NULL,
		       COALESCE(p.id, ''), COALESCE(p.name, ''), COALESCE(p.description, ''), COALESCE(p.category, ''),
		       COALESCE(p.price, 0)::text, COALESCE(p.stock_quantity, 0), p.image_url, COALESCE(p.created_at, c.created_at)
		FROM cart_items c
		LEFT JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []*domain.CartLineItem{}
	for rows.Next() {
		var (
			item       domain.CartLineItem
			hasProduct bool
			p          domain.Product
			price      string
			imageURL   *string
		)
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &hasProduct,
			&p.ID, &p.Name, &p.Description, &p.Category, &price, &p.StockQuantity, &imageURL, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		if hasProduct {
			m, err := domain.ParseMoney(price)
			if err != nil {
				return nil, fmt.Errorf("product %s price %q: %w", p.ID, price, err)
			}
			p.Price = m
			if imageURL != nil {
				p.ImageURL = *imageURL
			}
			item.Product = &p
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

// uniqueViolation is the SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// Insert adds a new cart line. A line that already exists for the
// (user, product) pair yields domain.ErrCartItemExists.
func (s *Store) Insert(ctx context.Context, item *domain.CartLineItem) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO cart_items (id, user_id, product_id, quantity) VALUES ($1, $2, $3, $4)`,
		item.ID, item.UserID, item.ProductID, item.Quantity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: product %s", domain.ErrCartItemExists, item.ProductID)
		}
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (s *Store) UpdateQuantity(ctx context.Context, userID, productID string, quantity int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE cart_items SET quantity = $3 WHERE user_id = $1 AND product_id = $2`,
		userID, productID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

// Delete removes one line.
func (s *Store) Delete(ctx context.Context, userID, productID string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// DeleteAllForUser empties the user's cart.
func (s *Store) DeleteAllForUser(ctx context.Context, userID string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertOrder(ctx context.Context, db execer, order *domain.Order) error {
	addr, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}
	_, err = db.Exec(ctx, `
		INSERT INTO orders (id, user_id, total_amount, status, shipping_address, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)`,
		order.ID, order.UserID, numeric(order.TotalAmount), string(order.Status), addr, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func insertOrderItems(ctx context.Context, db execer, items []*domain.OrderItem) error {
	for _, item := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5::numeric)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, numeric(item.Price))
		if err != nil {
			return fmt.Errorf("failed to insert order item %s: %w", item.ID, err)
		}
	}
	return nil
}

// InsertOrder writes the order row.
func (s *Store) InsertOrder(ctx context.Context, order *domain.Order) error {
	return insertOrder(ctx, s.pool, order)
}

// InsertOrderItems writes the items of an already inserted order.
func (s *Store) InsertOrderItems(ctx context.Context, items []*domain.OrderItem) error {
	return insertOrderItems(ctx, s.pool, items)
}

// CommitOrder writes the order, its items and the order.placed event, and
// removes the ordered lines from the cart, in one transaction.
func (s *Store) CommitOrder(ctx context.Context, order *domain.Order, items []*domain.OrderItem) error {
	event := domain.NewOrderPlacedEvent(order, items)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.EventType(), err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertOrder(ctx, tx, order); err != nil {
		return err
	}
	if err := insertOrderItems(ctx, tx, items); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = ANY($2)`,
		order.UserID, orderedProductIDs(items)); err != nil {
		return fmt.Errorf("failed to remove ordered cart lines: %w", err)
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO outbox_events (event_id, event_type, aggregate_id, payload, status)
		VALUES ($1, $2, $3, $4, 'pending')`,
		uuid.New().String(), event.EventType(), event.AggregateID(), payload); err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order %s: %w", order.ID, err)
	}
	return nil
}

func orderedProductIDs(items []*domain.OrderItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
