package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a pending outbox event stamped with the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.EventID,
			data.EventType,
			data.AggregateID,
			data.Payload,
			StatusPending,
			spanner.CommitTimestamp,
			spanner.NullTime{},
			int64(0),
			spanner.NullString{},
		},
	)
}

// MarkProcessedMut records the outcome of delivering an event.
// An empty errMsg marks it completed, anything else marks it failed.
func (m *Model) MarkProcessedMut(eventID string, at time.Time, errMsg string) *spanner.Mutation {
	status := StatusCompleted
	errCol := spanner.NullString{}
	if errMsg != "" {
		status = StatusFailed
		errCol = spanner.NullString{StringVal: errMsg, Valid: true}
	}
	return spanner.Update(
		TableName,
		[]string{EventID, Status, ProcessedAt, ErrorMessage},
		[]interface{}{eventID, status, at, errCol},
	)
}

// Scan decodes a row read with Columns.
func Scan(row *spanner.Row) (*Data, error) {
	var d Data
	if err := row.Columns(
		&d.EventID,
		&d.EventType,
		&d.AggregateID,
		&d.Payload,
		&d.Status,
		&d.CreatedAt,
		&d.ProcessedAt,
		&d.RetryCount,
		&d.ErrorMessage,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
