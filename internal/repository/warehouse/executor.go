// Package warehouse contains the query executors that run compiled statements
// against the ARGO profile warehouse.
package warehouse

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/argo-float-service/internal/config"
	"github.com/argo-float-service/internal/domain/repository"
	"github.com/argo-float-service/internal/pkg/metrics"
	"github.com/argo-float-service/internal/query"
)

// logQueryLen - сколько символов запроса попадает в debug лог
const logQueryLen = 200

// Executor - исполнитель с управлением жизненным циклом
type Executor interface {
	repository.WarehouseExecutor
	repository.HealthChecker
	Close() error
}

// Options - ограничения, которые применяет любой исполнитель
type Options struct {
	MaxResults int
	Timeout    time.Duration
}

// OptionsFrom берёт ограничения из конфигурации
func OptionsFrom(cfg config.WarehouseConfig) Options {
	return Options{MaxResults: cfg.MaxResults, Timeout: cfg.Timeout}
}

// Open создаёт исполнитель для драйвера из конфигурации
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Provider) (Executor, error) {
	opts := OptionsFrom(cfg.Warehouse)

	switch cfg.Warehouse.Driver {
	case config.DriverBigQuery:
		exec, err := NewBigQuery(ctx, cfg.BigQuery, opts, logger, m)
		if err != nil {
			return nil, err
		}
		return exec, nil
	case config.DriverPostgres:
		db, err := NewPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return NewSQLExecutor(db, config.DriverPostgres, opts, logger, m), nil
	case config.DriverDuckDB:
		db, err := NewDuckDB(ctx, cfg.DuckDB.Path, logger)
		if err != nil {
			return nil, err
		}
		return NewSQLExecutor(db, config.DriverDuckDB, opts, logger, m), nil
	default:
		return nil, fmt.Errorf("unsupported warehouse driver %q", cfg.Warehouse.Driver)
	}
}

// withTimeout навешивает таймаут, если у контекста нет более раннего дедлайна
func (o Options) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.Timeout)
}

// limit возвращает допустимое число строк; 0 в конфиге - без ограничения
func (o Options) limit() int {
	if o.MaxResults <= 0 {
		return int(^uint(0) >> 1)
	}
	return o.MaxResults
}

// truncateQuery сжимает пробелы и обрезает запрос для логов
func truncateQuery(q string) string {
	return query.Summarize(q, logQueryLen)
}

// normalizeValue приводит значения драйверов к простым Go типам
func normalizeValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
