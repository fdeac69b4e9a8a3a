package base

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository общие методы репозиториев поверх пула pgx.
// Ошибки оборачиваются именем операции.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}

// ScanOne читает одну строку в dest. Если строки нет, возвращает notFound как есть.
func (r *Repository) ScanOne(ctx context.Context, op string, notFound error, query string, args []any, dest ...any) error {
	err := r.pool.QueryRow(ctx, query, args...).Scan(dest...)
	switch {
	case err == nil:
		return nil
	case IsNotFound(err):
		return notFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// Exec выполняет команду и возвращает число затронутых строк
func (r *Repository) Exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return tag.RowsAffected(), nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
