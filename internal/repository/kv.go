// Package repository provides a PostgreSQL-backed key-value store used to
// persist the visitor session.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresKVRepository stores string values by key in the kv_store table.
type PostgresKVRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresKVRepository creates a new PostgresKVRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresKVRepository(db *sql.DB) *PostgresKVRepository {
	return &PostgresKVRepository{DB: db}
}

// Get returns the value stored under key.
// It returns false without an error when the key is absent.
func (r *PostgresKVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT value FROM kv_store WHERE key = $1`,
		key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put inserts value under key, replacing any previous value.
func (r *PostgresKVRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}
