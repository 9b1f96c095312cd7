package warehouse

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/argo-float-service/internal/config"
	"github.com/argo-float-service/internal/domain"
	"github.com/argo-float-service/internal/pkg/metrics"
)

// BigQueryExecutor выполняет запросы стандартного SQL BigQuery с позиционными параметрами
type BigQueryExecutor struct {
	client  *bigquery.Client
	opts    Options
	logger  *zap.Logger
	metrics *metrics.Provider
}

// NewBigQuery создаёт клиента. Ключ сервисного аккаунта передаётся в base64;
// без него используются Application Default Credentials.
func NewBigQuery(ctx context.Context, cfg config.BigQueryConfig, opts Options, logger *zap.Logger, m *metrics.Provider) (*BigQueryExecutor, error) {
	var clientOpts []option.ClientOption
	if cfg.CredentialsBase64 != "" {
		creds, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("decode GOOGLE_CLOUD_CREDENTIALS_BASE64: %w", err)
		}
		clientOpts = append(clientOpts, option.WithCredentialsJSON(creds))
	}

	client, err := bigquery.NewClient(ctx, cfg.ProjectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}
	client.Location = cfg.Location

	logger.Info("BigQuery warehouse client created",
		zap.String("project", cfg.ProjectID),
		zap.String("location", cfg.Location),
	)

	return &BigQueryExecutor{
		client:  client,
		opts:    opts,
		logger:  logger.With(zap.String("driver", config.DriverBigQuery)),
		metrics: m,
	}, nil
}

// Execute выполняет запрос и читает не больше MaxResults строк
func (e *BigQueryExecutor) Execute(ctx context.Context, query string, params []any) (rows []domain.Row, err error) {
	started := time.Now()
	defer func() { e.metrics.ObserveQuery(config.DriverBigQuery, started, len(rows), err) }()

	ctx, cancel := e.opts.withTimeout(ctx)
	defer cancel()

	e.logger.Debug("Executing warehouse query",
		zap.String("query", truncateQuery(query)),
		zap.Int("params", len(params)),
	)

	q := e.client.Query(query)
	q.Parameters = queryParameters(params)

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	limit := e.opts.limit()
	rows = make([]domain.Row, 0)
	for len(rows) < limit {
		var values map[string]bigquery.Value
		err := it.Next(&values)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, convertRow(values))
	}

	e.logger.Debug("Warehouse query finished",
		zap.Int("rows", len(rows)),
		zap.Duration("took", time.Since(started)),
	)
	return rows, nil
}

// Health выполняет тривиальный запрос
func (e *BigQueryExecutor) Health(ctx context.Context) error {
	_, err := e.Execute(ctx, "SELECT 1 AS ok", nil)
	return err
}

// Close закрывает клиента
func (e *BigQueryExecutor) Close() error {
	e.logger.Info("Closing BigQuery client")
	return e.client.Close()
}

// queryParameters превращает params в позиционные параметры BigQuery
func queryParameters(params []any) []bigquery.QueryParameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]bigquery.QueryParameter, len(params))
	for i, p := range params {
		out[i] = bigquery.QueryParameter{Value: p}
	}
	return out
}

// convertRow приводит значения BigQuery к типам, которые понимает слой use case
func convertRow(values map[string]bigquery.Value) domain.Row {
	row := make(domain.Row, len(values))
	for k, v := range values {
		switch t := v.(type) {
		case civil.Date:
			row[k] = t.In(time.UTC)
		case civil.DateTime:
			row[k] = t.In(time.UTC)
		default:
			row[k] = normalizeValue(v)
		}
	}
	return row
}
