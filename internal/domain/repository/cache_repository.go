package repository

import (
	"context"
	"time"
)

// CacheRepository - байтовое хранилище закешированных результатов запросов
type CacheRepository interface {
	// Get возвращает nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete вызывается для записей, которые не удалось декодировать
	Delete(ctx context.Context, key string) error
}
