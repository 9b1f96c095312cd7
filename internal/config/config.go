package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Поддерживаемые драйверы хранилища
const (
	DriverBigQuery = "bigquery"
	DriverPostgres = "postgres"
	DriverDuckDB   = "duckdb"
)

type Config struct {
	Server    ServerConfig
	Warehouse WarehouseConfig
	BigQuery  BigQueryConfig
	DuckDB    DuckDBConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host             string
	Port             int
	Env              string
	CORSAllowOrigins string
}

// WarehouseConfig - общие настройки исполнителя запросов
type WarehouseConfig struct {
	Driver            string
	MaxResults        int
	Timeout           time.Duration
	ProfilesTable     string
	MeasurementsTable string
}

type BigQueryConfig struct {
	ProjectID         string
	Location          string
	CredentialsBase64 string
}

// DuckDBConfig - локальная база с выгрузкой ARGO, пустой Path - in-memory
type DuckDBConfig struct {
	Path string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type LogConfig struct {
	Level string
}

// tableName - dataset.table или просто table, без кавычек и пробелов
var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*){0,2}$`)

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("WAREHOUSE_DRIVER", DriverBigQuery)
	v.SetDefault("WAREHOUSE_MAX_RESULTS", 10000)
	v.SetDefault("WAREHOUSE_TIMEOUT_MS", 30000)
	v.SetDefault("WAREHOUSE_PROFILES_TABLE", "argo_data.profiles")
	v.SetDefault("WAREHOUSE_MEASUREMENTS_TABLE", "argo_data.measurements")

	v.SetDefault("BIGQUERY_LOCATION", "US")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("WAREHOUSE_CACHE_TTL", 300)
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает конфигурацию из указанного env-файла; отсутствие файла не ошибка
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:             v.GetString("API_HOST"),
			Port:             v.GetInt("API_PORT"),
			Env:              v.GetString("API_ENV"),
			CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Warehouse: WarehouseConfig{
			Driver:            strings.ToLower(strings.TrimSpace(v.GetString("WAREHOUSE_DRIVER"))),
			MaxResults:        v.GetInt("WAREHOUSE_MAX_RESULTS"),
			Timeout:           time.Duration(v.GetInt("WAREHOUSE_TIMEOUT_MS")) * time.Millisecond,
			ProfilesTable:     v.GetString("WAREHOUSE_PROFILES_TABLE"),
			MeasurementsTable: v.GetString("WAREHOUSE_MEASUREMENTS_TABLE"),
		},
		BigQuery: BigQueryConfig{
			ProjectID:         v.GetString("BIGQUERY_PROJECT_ID"),
			Location:          v.GetString("BIGQUERY_LOCATION"),
			CredentialsBase64: v.GetString("GOOGLE_CLOUD_CREDENTIALS_BASE64"),
		},
		DuckDB: DuckDBConfig{
			Path: v.GetString("DUCKDB_PATH"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled: v.GetBool("CACHE_ENABLED"),
			TTL:     time.Duration(v.GetInt("WAREHOUSE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить дефолтами
func (c *Config) Validate() error {
	switch c.Warehouse.Driver {
	case DriverBigQuery:
		if c.BigQuery.ProjectID == "" {
			return fmt.Errorf("BIGQUERY_PROJECT_ID is required for driver %q", DriverBigQuery)
		}
	case DriverPostgres, DriverDuckDB:
	default:
		return fmt.Errorf("unsupported WAREHOUSE_DRIVER %q", c.Warehouse.Driver)
	}

	for key, table := range map[string]string{
		"WAREHOUSE_PROFILES_TABLE":     c.Warehouse.ProfilesTable,
		"WAREHOUSE_MEASUREMENTS_TABLE": c.Warehouse.MeasurementsTable,
	} {
		if !tableName.MatchString(table) {
			return fmt.Errorf("%s %q is not a valid table identifier", key, table)
		}
	}

	if c.Warehouse.MaxResults <= 0 {
		return fmt.Errorf("WAREHOUSE_MAX_RESULTS must be positive, got %d", c.Warehouse.MaxResults)
	}
	if c.Warehouse.Timeout <= 0 {
		return fmt.Errorf("WAREHOUSE_TIMEOUT_MS must be positive")
	}

	return nil
}

// CORSOrigins возвращает список origin'ов через запятую без пустых значений
func (c *Config) CORSOrigins() string {
	parts := strings.Split(c.Server.CORSAllowOrigins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return strings.Join(result, ",")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
