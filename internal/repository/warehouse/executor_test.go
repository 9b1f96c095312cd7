package warehouse

import (
	"context"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/config"
)

func TestTruncateQuery(t *testing.T) {
	assert.Equal(t, "SELECT a FROM t WHERE x = ?", truncateQuery("SELECT a\n\t FROM t\n  WHERE x = ?"))

	long := "SELECT " + strings.Repeat("col, ", 100) + "x"
	got := truncateQuery(long)
	assert.Len(t, got, logQueryLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "abc", normalizeValue([]byte("abc")))
	assert.Equal(t, int64(7), normalizeValue(int32(7)))
	assert.Equal(t, int64(7), normalizeValue(7))
	assert.Equal(t, float64(1.5), normalizeValue(float32(1.5)))
	assert.Nil(t, normalizeValue(nil))
}

func TestOptions_Limit(t *testing.T) {
	assert.Equal(t, 10, Options{MaxResults: 10}.limit())
	assert.Greater(t, Options{}.limit(), 1<<30)
}

func TestQueryParameters_Positional(t *testing.T) {
	params := queryParameters([]any{15.0, "2902746", int64(3)})

	require.Len(t, params, 3)
	for _, p := range params {
		assert.Empty(t, p.Name, "positional parameters must be unnamed")
	}
	assert.Equal(t, "2902746", params[1].Value)
	assert.Nil(t, queryParameters(nil))
}

func TestConvertRow(t *testing.T) {
	row := convertRow(map[string]bigquery.Value{
		"platform_number": "2902746",
		"cycle_number":    int64(12),
		"juld":            27028.5,
		"day":             civil.Date{Year: 2024, Month: time.January, Day: 2},
		"missing":         nil,
	})

	assert.Equal(t, "2902746", row["platform_number"])
	assert.Equal(t, int64(12), row["cycle_number"])
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), row["day"])
	assert.Contains(t, row, "missing")
	assert.Nil(t, row["missing"])
}

func TestOpen_DuckDB(t *testing.T) {
	cfg := &config.Config{Warehouse: config.WarehouseConfig{
		Driver:     config.DriverDuckDB,
		MaxResults: 10,
		Timeout:    time.Second,
	}}

	exec, err := Open(context.Background(), cfg, zap.NewNop(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = exec.Close() })

	require.NoError(t, exec.Health(context.Background()))
	rows, err := exec.Execute(context.Background(), "SELECT CAST(? AS BIGINT) AS answer", []any{42})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(42), rows[0]["answer"])
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Warehouse: config.WarehouseConfig{Driver: "sqlite"}}

	exec, err := Open(context.Background(), cfg, zap.NewNop(), nil)
	assert.Error(t, err)
	assert.Nil(t, exec)
}
