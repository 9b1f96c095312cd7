package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/pkg/metrics"
)

// SQLExecutor выполняет запросы через database/sql драйвер (PostgreSQL, DuckDB).
// Текст с "?" переписывается в синтаксис плейсхолдеров драйвера.
type SQLExecutor struct {
	db      *sqlx.DB
	driver  string
	opts    Options
	logger  *zap.Logger
	metrics *metrics.Provider
}

// NewSQLExecutor оборачивает открытое подключение
func NewSQLExecutor(db *sqlx.DB, driver string, opts Options, logger *zap.Logger, m *metrics.Provider) *SQLExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLExecutor{
		db:      db,
		driver:  driver,
		opts:    opts,
		logger:  logger.With(zap.String("driver", driver)),
		metrics: m,
	}
}

// Execute выполняет запрос и читает не больше MaxResults строк
func (e *SQLExecutor) Execute(ctx context.Context, query string, params []any) (rows []domain.Row, err error) {
	started := time.Now()
	defer func() { e.metrics.ObserveQuery(e.driver, started, len(rows), err) }()

	ctx, cancel := e.opts.withTimeout(ctx)
	defer cancel()

	bound := e.db.Rebind(query)
	e.logger.Debug("Executing warehouse query",
		zap.String("query", truncateQuery(bound)),
		zap.Int("params", len(params)),
	)

	// int и float32 биндятся не всеми драйверами одинаково
	args := lo.Map(params, func(p any, _ int) any { return normalizeValue(p) })

	result, err := e.db.QueryxContext(ctx, bound, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer result.Close()

	limit := e.opts.limit()
	rows = make([]domain.Row, 0)
	for len(rows) < limit && result.Next() {
		values := make(map[string]any)
		if err := result.MapScan(values); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(domain.Row, len(values))
		for k, v := range values {
			row[k] = normalizeValue(v)
		}
		rows = append(rows, row)
	}

	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	e.logger.Debug("Warehouse query finished",
		zap.Int("rows", len(rows)),
		zap.Duration("took", time.Since(started)),
	)
	return rows, nil
}

// Health проверяет соединение
func (e *SQLExecutor) Health(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

// Close закрывает пул соединений
func (e *SQLExecutor) Close() error {
	e.logger.Info("Closing warehouse connection")
	return e.db.Close()
}
