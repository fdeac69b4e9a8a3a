package app

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mathtutor_bot/internal/config"
	"github.com/Freeeeeet/mathtutor_bot/internal/repository"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Storage открытое хранилище и функция его закрытия
type Storage struct {
	Store repository.BlobStore
	close func()
}

func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage подключает хранилище, выбранное STORAGE_BACKEND.
// Для postgres сразу применяются миграции.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		return openPostgres(ctx, cfg, logger)
	case config.StorageRedis:
		return openRedis(ctx, cfg, logger)
	default:
		store, err := repository.NewFileBlobStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open file storage: %w", err)
		}
		logger.Info("Using file storage", zap.String("dir", cfg.DataDir))
		return &Storage{Store: store}, nil
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	migrator, err := NewMigrator(pool, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("Using postgres storage")
	return &Storage{Store: repository.NewPostgresBlobStore(pool), close: pool.Close}, nil
}

func openRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("Using redis storage", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	return &Storage{
		Store: repository.NewRedisBlobStore(client),
		close: func() {
			if err := client.Close(); err != nil {
				logger.Warn("Failed to close redis client", zap.Error(err))
			}
		},
	}, nil
}
