package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/domain/repository"
)

// resultStore - результаты запросов в Redis, ключи уже содержат префикс
type resultStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository создаёт хранилище результатов поверх подключения
func NewCacheRepository(conn *Redis) repository.CacheRepository {
	return &resultStore{client: conn.Client(), logger: conn.logger}
}

func (s *resultStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		s.logger.Warn("Query cache read failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("query cache get: %w", err)
	}
	return data, nil
}

func (s *resultStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("query cache set: %w", err)
	}
	s.logger.Debug("Query result cached", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

// Delete убирает запись; отсутствие ключа не ошибка
func (s *resultStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("query cache delete: %w", err)
	}
	return nil
}
