package snapshot

import (
	"context"
	"database/sql"
	"errors"

	"grocery-storefront/internal/domain"
)

type sqliteRepo struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db}
}

func (r *sqliteRepo) Load(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT data FROM cart_snapshots WHERE key = ?`
	var data []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (r *sqliteRepo) Save(ctx context.Context, key string, data []byte) error {
	const q = `
INSERT INTO cart_snapshots (key, data, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
`
	_, err := r.db.ExecContext(ctx, q, key, data)
	return err
}

func (r *sqliteRepo) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM cart_snapshots WHERE key = ?`
	_, err := r.db.ExecContext(ctx, q, key)
	return err
}
