package repository

import (
	"context"

	"github.com/argo-float-service/internal/domain"
)

// WarehouseExecutor выполняет параметризованный запрос к хранилищу.
// Плейсхолдеры позиционные ("?"), params идут в порядке их появления в тексте.
// Исполнитель сам применяет лимит строк и таймаут.
type WarehouseExecutor interface {
	Execute(ctx context.Context, query string, params []any) ([]domain.Row, error)
}

// HealthChecker - зависимость, которую можно проверить из /health
type HealthChecker interface {
	Health(ctx context.Context) error
}
