package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// DefaultEventLimit caps ListEvents when no limit is given.
const DefaultEventLimit = 50

// EventFilter narrows ListEvents. Empty fields match everything.
type EventFilter struct {
	EventType   string
	AggregateID string
	Status      string
	Limit       int64
}

// OutboxRepo writes domain events to the outbox_events table and serves the ops tooling.
type OutboxRepo struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(client *spanner.Client) *OutboxRepo {
	return &OutboxRepo{
		client: client,
		model:  m_outbox.NewModel(),
	}
}

// InsertMut serializes the event into a pending outbox row mutation.
func (r *OutboxRepo) InsertMut(event domain.DomainEvent) (*spanner.Mutation, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event: %w", event.EventType(), err)
	}

	return r.model.InsertMut(&m_outbox.Data{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     spanner.NullJSON{Value: json.RawMessage(payload), Valid: true},
	}), nil
}

// ListEvents returns events newest first.
func (r *OutboxRepo) ListEvents(ctx context.Context, filter EventFilter) ([]*m_outbox.Data, error) {
	stmt := listEventsStatement(filter)

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		event, err := m_outbox.Scan(row)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func listEventsStatement(filter EventFilter) spanner.Statement {
	b := query.From(m_outbox.TableName).Select(m_outbox.Columns...)
	if filter.EventType != "" {
		b = b.Where(query.Eq(m_outbox.EventType, filter.EventType))
	}
	if filter.AggregateID != "" {
		b = b.Where(query.Eq(m_outbox.AggregateID, filter.AggregateID))
	}
	if filter.Status != "" {
		b = b.Where(query.Eq(m_outbox.Status, filter.Status))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	return b.OrderBy(m_outbox.CreatedAt, query.Desc).Limit(limit).Build()
}

// Purge deletes events in the given status processed before cutoff and
// returns how many rows matched. With dryRun it only counts.
func (r *OutboxRepo) Purge(ctx context.Context, status string, cutoff time.Time, dryRun bool) (int64, error) {
	b := query.From(m_outbox.TableName).
		Where(query.Eq(m_outbox.Status, status)).
		Where(query.Lt(m_outbox.ProcessedAt, cutoff))

	if dryRun {
		iter := r.client.Single().Query(ctx, b.Count().Build())
		defer iter.Stop()

		row, err := iter.Next()
		if err != nil {
			return 0, fmt.Errorf("failed to count %s events: %w", status, err)
		}
		var count int64
		if err := row.Columns(&count); err != nil {
			return 0, fmt.Errorf("failed to parse count: %w", err)
		}
		return count, nil
	}

	var deleted int64
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, b.Delete().Build())
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s events: %w", status, err)
	}
	return deleted, nil
}
