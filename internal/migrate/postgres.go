package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres applies each file under Dir in its own transaction and records it
// in schema_migrations. Files already recorded are skipped.
type Postgres struct {
	Pool *pgxpool.Pool
	FS   fs.FS
	Dir  string
	Log  *zap.Logger
}

func (m *Postgres) Run(ctx context.Context) error {
	files, err := LoadFiles(m.FS, m.Dir)
	if err != nil {
		return err
	}
	if _, err := m.Pool.Exec(ctx, createVersionsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, f := range files {
		applied, err := m.applyFile(ctx, f)
		if err != nil {
			return fmt.Errorf("failed to apply %s: %w", f.Name, err)
		}
		if applied {
			m.Log.Info("migration applied", zap.String("file", f.Name), zap.Int("statements", len(f.Statements)))
		} else {
			m.Log.Info("migration already applied", zap.String("file", f.Name))
		}
	}
	return nil
}

func (m *Postgres) applyFile(ctx context.Context, f File) (bool, error) {
	tx, err := m.Pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var version string
	err = tx.QueryRow(ctx, `SELECT version FROM schema_migrations WHERE version = $1`, f.Name).Scan(&version)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	for _, stmt := range f.Statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return false, fmt.Errorf("%q: %w", firstLine(stmt), err)
		}
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, f.Name); err != nil {
		return false, err
	}
	return true, tx.Commit(ctx)
}

func firstLine(stmt string) string {
	for i, r := range stmt {
		if r == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}
