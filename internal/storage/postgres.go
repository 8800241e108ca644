package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopswift-be/internal/logger"

	"go.uber.org/zap"
)

// PostgresStore keeps values in the kv_store table created by cmd/migrate.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}

	var value []byte
	err := p.db.QueryRowContext(ctx, `
		SELECT value
		FROM kv_store
		WHERE namespace = $1 AND key = $2
	`, namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("kv get failed",
			zap.String("layer", "storage"),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, err
	}
	return value, nil
}

func (p *PostgresStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	start := time.Now()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv_store (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, namespace, key, value)
	if err != nil {
		logger.FromCtx(ctx).Error("kv set failed",
			zap.String("layer", "storage"),
			zap.String("key", key),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, namespace, key string) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	_, err := p.db.ExecContext(ctx, `
		DELETE FROM kv_store
		WHERE namespace = $1 AND key = $2
	`, namespace, key)
	return err
}
