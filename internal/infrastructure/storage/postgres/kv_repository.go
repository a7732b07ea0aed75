package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"
)

// querier - общая часть pgxpool.Pool и pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// KVRepository хранит значения в таблице kv
type KVRepository struct {
	db  querier
	log *slog.Logger
}

func NewKVRepository(storage *Storage, log *slog.Logger) *KVRepository {
	return newKVRepository(storage.Pool(), log)
}

func newKVRepository(db querier, log *slog.Logger) *KVRepository {
	return &KVRepository{
		db:  db,
		log: log.With("component", "kv_repository"),
	}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.log.Error("failed to get value", "key", key, "error", err)
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}

	return value, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		r.log.Error("failed to set value", "key", key, "error", err)
		return fmt.Errorf("set %q: %w", key, err)
	}

	return nil
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv WHERE key = $1`

	if _, err := r.db.Exec(ctx, query, key); err != nil {
		r.log.Error("failed to delete value", "key", key, "error", err)
		return fmt.Errorf("delete %q: %w", key, err)
	}

	return nil
}
