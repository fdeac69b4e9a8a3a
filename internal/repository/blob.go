package repository

import (
	"context"
	"errors"
)

// ErrBlobNotFound ключ отсутствует в хранилище
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore хранит сериализованные значения под фиксированными ключами.
// Запись значения целиком: частичная запись не должна быть видна читателю.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
