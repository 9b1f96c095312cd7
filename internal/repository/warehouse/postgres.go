package warehouse

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/config"
)

const pingTimeout = 5 * time.Second

// NewPostgres открывает пул к PostgreSQL копии хранилища через pgx
func NewPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := connect(ctx, "pgx", cfg.GetDatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("postgres warehouse: %w", err)
	}

	pool := cfg.Database
	db.SetMaxOpenConns(pool.MaxConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	logger.Info("PostgreSQL warehouse connected",
		zap.String("host", pool.Host),
		zap.String("database", pool.DBName),
		zap.Int("max_conns", pool.MaxConns),
	)
	return db, nil
}

// NewDuckDB открывает локальную DuckDB базу с выгрузкой ARGO (пустой path - in-memory)
func NewDuckDB(ctx context.Context, path string, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := connect(ctx, "duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("duckdb warehouse: %w", err)
	}

	logger.Info("DuckDB warehouse opened", zap.String("path", path))
	return db, nil
}

func connect(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}
