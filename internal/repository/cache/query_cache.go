package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/domain/repository"
	"github.com/argo-float-service/internal/pkg/metrics"
)

const keyPrefix = "argo:query:"

// QueryCache - WarehouseExecutor, который кеширует результаты в Redis.
// Ошибки кеша не ломают запрос: он уходит в хранилище напрямую.
type QueryCache struct {
	next    repository.WarehouseExecutor
	cache   repository.CacheRepository
	ttl     time.Duration
	logger  *zap.Logger
	metrics *metrics.Provider
}

// NewQueryCache оборачивает исполнитель кешем
func NewQueryCache(next repository.WarehouseExecutor, cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger, m *metrics.Provider) *QueryCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryCache{next: next, cache: cache, ttl: ttl, logger: logger, metrics: m}
}

// Execute возвращает закешированные строки или выполняет запрос и кладёт результат в кеш
func (c *QueryCache) Execute(ctx context.Context, query string, params []any) ([]domain.Row, error) {
	key, err := Key(query, params)
	if err != nil {
		c.logger.Warn("Query cache key failed, bypassing cache", zap.Error(err))
		return c.next.Execute(ctx, query, params)
	}

	if data, err := c.cache.Get(ctx, key); err != nil {
		c.metrics.CacheResult("error")
	} else if data != nil {
		var rows []domain.Row
		if err := json.Unmarshal(data, &rows); err == nil {
			c.metrics.CacheResult("hit")
			return rows, nil
		}
		c.logger.Warn("Corrupted query cache entry, evicting", zap.String("key", key))
		c.metrics.CacheResult("error")
		if err := c.cache.Delete(ctx, key); err != nil {
			c.logger.Warn("Query cache eviction failed", zap.String("key", key), zap.Error(err))
		}
	} else {
		c.metrics.CacheResult("miss")
	}

	rows, err := c.next.Execute(ctx, query, params)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Warn("Query cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return rows, nil
}

// Key строит ключ кеша по тексту запроса и параметрам
func Key(query string, params []any) (string, error) {
	encoded, err := json.Marshal(params)
	if err != nil {
		return "", err
	}

	h := xxhash.New()
	_, _ = h.WriteString(query)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(encoded)
	return keyPrefix + strconv.FormatUint(h.Sum64(), 16), nil
}
