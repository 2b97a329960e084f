package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresBackend stores every collection as one JSONB row of the
// collections table.
type PostgresBackend struct {
	DB *sql.DB
}

func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{DB: db}
}

func (b *PostgresBackend) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			body JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := b.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (b *PostgresBackend) Ensure(ctx context.Context, name string) error {
	_, err := b.DB.ExecContext(ctx, `
		INSERT INTO collections (name, body)
		VALUES ($1, '[]'::jsonb)
		ON CONFLICT (name) DO NOTHING
	`, name)
	return err
}

func (b *PostgresBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := b.DB.QueryRowContext(ctx, `
		SELECT body FROM collections
		WHERE name = $1
	`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingCollection)
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (b *PostgresBackend) Write(ctx context.Context, name string, doc []byte) error {
	_, err := b.DB.ExecContext(ctx, `
		INSERT INTO collections (name, body, updated_at)
		VALUES ($1, $2::jsonb, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`, name, string(doc))
	return err
}
