package repository

import (
	"context"

	"github.com/Freeeeeet/mathtutor_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBlobStore хранит значения в таблице kv_blobs (см. migrations)
type PostgresBlobStore struct {
	*base.Repository
}

func NewPostgresBlobStore(pool *pgxpool.Pool) *PostgresBlobStore {
	return &PostgresBlobStore{Repository: base.NewRepository(pool)}
}

// Get получает значение по ключу
func (r *PostgresBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT data
		FROM kv_blobs
		WHERE key = $1
	`

	var data []byte
	if err := r.ScanOne(ctx, "get blob", ErrBlobNotFound, query, []any{key}, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// Put вставляет или заменяет значение одним запросом
func (r *PostgresBlobStore) Put(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO kv_blobs (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()
	`

	_, err := r.Exec(ctx, "put blob", query, key, string(data))
	return err
}

// Delete удаляет значение; отсутствующий ключ не ошибка
func (r *PostgresBlobStore) Delete(ctx context.Context, key string) error {
	_, err := r.Exec(ctx, "delete blob", `DELETE FROM kv_blobs WHERE key = $1`, key)
	return err
}
