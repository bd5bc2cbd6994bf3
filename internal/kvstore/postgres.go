package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-client/internal/db"
	"github.com/nikolayk812/storefront-client/internal/port"
)

// Postgres stores entries in the kv_entries table.
type Postgres struct {
	q *db.Queries
}

var _ port.KeyValueStore = (*Postgres)(nil)

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{q: db.New(pool)}
}

func NewPostgresWithTx(tx pgx.Tx) *Postgres {
	return &Postgres{q: db.New(tx)}
}

// OpenPostgres connects a pool and verifies it. The caller closes the pool.
func OpenPostgres(ctx context.Context, connStr string) (*Postgres, *pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return NewPostgres(pool), pool, nil
}

func (s *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	entry, err := s.q.GetEntry(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("q.GetEntry: %w", err)
	}

	return entry.Value, true, nil
}

func (s *Postgres) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.q.UpsertEntry(ctx, db.UpsertEntryParams{Key: key, Value: value}); err != nil {
		return fmt.Errorf("q.UpsertEntry: %w", err)
	}

	return nil
}

func (s *Postgres) Remove(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if _, err := s.q.DeleteEntry(ctx, key); err != nil {
		return fmt.Errorf("q.DeleteEntry: %w", err)
	}

	return nil
}

// RemoveMany deletes all keys in a single statement.
func (s *Postgres) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	if _, err := s.q.DeleteEntries(ctx, keys); err != nil {
		return fmt.Errorf("q.DeleteEntries: %w", err)
	}

	return nil
}
